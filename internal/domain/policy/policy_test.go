package policy

import (
	"testing"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTask() *entity.Task {
	return &entity.Task{
		ID:       uuid.New(),
		Title:    "write report",
		Status:   entity.TaskStatusWaiting,
		Priority: entity.TaskPriorityMedium,
		Author:   &entity.User{Email: "author@x.com", Role: entity.RoleUser},
		Executor: &entity.User{Email: "executor@x.com", Role: entity.RoleUser},
	}
}

func TestAuthorize(t *testing.T) {
	author := entity.Caller{Email: "author@x.com", Role: entity.RoleUser}
	executor := entity.Caller{Email: "executor@x.com", Role: entity.RoleUser}
	stranger := entity.Caller{Email: "stranger@x.com", Role: entity.RoleUser}
	admin := entity.Caller{Email: "admin", Role: entity.RoleAdmin}

	tests := []struct {
		name    string
		op      Operation
		caller  entity.Caller
		wantErr error
	}{
		{name: "author updates", op: OpUpdateTask, caller: author},
		{name: "author deletes", op: OpDeleteTask, caller: author},
		{name: "executor cannot update", op: OpUpdateTask, caller: executor, wantErr: domainerrors.ErrNotTaskAuthor},
		{name: "stranger cannot update", op: OpUpdateTask, caller: stranger, wantErr: domainerrors.ErrNotTaskAuthor},
		{name: "stranger cannot delete", op: OpDeleteTask, caller: stranger, wantErr: domainerrors.ErrNotTaskAuthor},
		{name: "executor changes status", op: OpChangeStatus, caller: executor},
		{name: "executor comments", op: OpAddComment, caller: executor},
		{name: "author cannot change status", op: OpChangeStatus, caller: author, wantErr: domainerrors.ErrNotTaskExecutor},
		{name: "stranger cannot change status", op: OpChangeStatus, caller: stranger, wantErr: domainerrors.ErrNotTaskExecutor},
		{name: "stranger cannot comment", op: OpAddComment, caller: stranger, wantErr: domainerrors.ErrNotTaskExecutor},
		{name: "admin without ownership is still bound on user routes", op: OpUpdateTask, caller: admin, wantErr: domainerrors.ErrNotTaskAuthor},
		{name: "admin access", op: OpAdminAccess, caller: admin},
		{name: "user denied admin access", op: OpAdminAccess, caller: author, wantErr: domainerrors.ErrAdminRequired},
		{name: "admin update bypasses ownership", op: OpAdminUpdateTask, caller: admin},
		{name: "admin delete bypasses ownership", op: OpAdminDeleteTask, caller: admin},
		{name: "admin status bypasses ownership", op: OpAdminChangeStatus, caller: admin},
		{name: "admin priority", op: OpAdminChangePriority, caller: admin},
		{name: "admin comment bypasses ownership", op: OpAdminAddComment, caller: admin},
		{name: "author denied admin update", op: OpAdminUpdateTask, caller: author, wantErr: domainerrors.ErrAdminRequired},
		{name: "executor denied admin priority", op: OpAdminChangePriority, caller: executor, wantErr: domainerrors.ErrAdminRequired},
		{name: "unknown operation denied", op: Operation(999), caller: admin, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.op, tt.caller, newTask())
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, 403, appErr.HTTPCode())
		})
	}
}

func TestAuthorize_NotFoundBeforeOwnership(t *testing.T) {
	stranger := entity.Caller{Email: "stranger@x.com", Role: entity.RoleUser}

	for _, op := range []Operation{OpUpdateTask, OpDeleteTask, OpChangeStatus, OpAddComment} {
		err := Authorize(op, stranger, nil)
		assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound, op.String())
	}
}

func TestAuthorize_RoleBeforeNotFound(t *testing.T) {
	user := entity.Caller{Email: "author@x.com", Role: entity.RoleUser}
	admin := entity.Caller{Email: "admin", Role: entity.RoleAdmin}

	assert.ErrorIs(t, Authorize(OpAdminDeleteTask, user, nil), domainerrors.ErrAdminRequired)
	assert.ErrorIs(t, Authorize(OpAdminDeleteTask, admin, nil), domainerrors.ErrTaskNotFound)
}

func TestAuthorize_ForbiddenCarriesReason(t *testing.T) {
	task := newTask()
	err := Authorize(OpDeleteTask, entity.Caller{Email: "stranger@x.com", Role: entity.RoleUser}, task)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "stranger@x.com is not the author")
	assert.Contains(t, appErr.Details(), task.ID.String())
}
