package usecase

import (
	"context"

	"taskman/internal/domain/entity"
	"taskman/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title         string
	Description   string
	Priority      entity.TaskPriority
	ExecutorEmail string
}

// UpdateTaskInput replaces the editable fields of a task. Empty fields are left unchanged.
type UpdateTaskInput struct {
	Title         string
	Description   *string
	Status        entity.TaskStatus
	Priority      entity.TaskPriority
	ExecutorEmail string
}

// TaskUsecase defines task and comment operations. Every mutation is checked
// against the authorization policy for the given caller.
type TaskUsecase interface {
	CreateTask(ctx context.Context, caller entity.Caller, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	ListTasks(ctx context.Context, page repository.PageRequest) (*entity.Page[*entity.Task], error)
	ListMyTasks(ctx context.Context, caller entity.Caller, page repository.PageRequest) (*entity.Page[*entity.Task], error)
	ListTasksByUser(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (*entity.Page[*entity.Task], error)

	UpdateTask(ctx context.Context, caller entity.Caller, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, caller entity.Caller, id uuid.UUID) error
	ChangeStatus(ctx context.Context, caller entity.Caller, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error)
	AddComment(ctx context.Context, caller entity.Caller, id uuid.UUID, content string) (*entity.Comment, error)

	AdminUpdateTask(ctx context.Context, caller entity.Caller, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	AdminDeleteTask(ctx context.Context, caller entity.Caller, id uuid.UUID) error
	AdminChangeStatus(ctx context.Context, caller entity.Caller, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error)
	AdminChangePriority(ctx context.Context, caller entity.Caller, id uuid.UUID, priority entity.TaskPriority) (*entity.Task, error)
	AdminAddComment(ctx context.Context, caller entity.Caller, id uuid.UUID, content string) (*entity.Comment, error)
}
