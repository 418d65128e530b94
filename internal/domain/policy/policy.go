// Package policy decides whether a caller may perform a task operation.
// All role and ownership rules live in one table evaluated by Authorize.
package policy

import (
	"fmt"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
)

// Operation identifies a guarded task operation.
type Operation int

const (
	OpAdminAccess Operation = iota + 1
	OpUpdateTask
	OpDeleteTask
	OpChangeStatus
	OpAddComment
	OpAdminUpdateTask
	OpAdminDeleteTask
	OpAdminChangeStatus
	OpAdminChangePriority
	OpAdminAddComment
)

var operationNames = map[Operation]string{
	OpAdminAccess:         "admin access",
	OpUpdateTask:          "update task",
	OpDeleteTask:          "delete task",
	OpChangeStatus:        "change task status",
	OpAddComment:          "add comment",
	OpAdminUpdateTask:     "admin update task",
	OpAdminDeleteTask:     "admin delete task",
	OpAdminChangeStatus:   "admin change task status",
	OpAdminChangePriority: "admin change task priority",
	OpAdminAddComment:     "admin add comment",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}

	return fmt.Sprintf("operation(%d)", int(op))
}

// relation is the ownership predicate a rule requires between caller and task.
type relation int

const (
	relationAny relation = iota
	relationAuthor
	relationExecutor
)

type rule struct {
	adminOnly bool
	needsTask bool
	relation  relation
}

var rules = map[Operation]rule{
	OpAdminAccess:         {adminOnly: true},
	OpUpdateTask:          {needsTask: true, relation: relationAuthor},
	OpDeleteTask:          {needsTask: true, relation: relationAuthor},
	OpChangeStatus:        {needsTask: true, relation: relationExecutor},
	OpAddComment:          {needsTask: true, relation: relationExecutor},
	OpAdminUpdateTask:     {adminOnly: true, needsTask: true},
	OpAdminDeleteTask:     {adminOnly: true, needsTask: true},
	OpAdminChangeStatus:   {adminOnly: true, needsTask: true},
	OpAdminChangePriority: {adminOnly: true, needsTask: true},
	OpAdminAddComment:     {adminOnly: true, needsTask: true},
}

// Authorize returns nil when caller may perform op on task.
// Role is checked first, then task existence, then ownership. A nil task means
// the task was not found. Operations missing from the table are denied.
func Authorize(op Operation, caller entity.Caller, task *entity.Task) error {
	r, ok := rules[op]
	if !ok {
		return domainerrors.ErrForbidden.WithDetails(fmt.Sprintf("%s is not permitted", op))
	}

	if r.adminOnly && !caller.IsAdmin() {
		return domainerrors.ErrAdminRequired.WithDetails(fmt.Sprintf("%s requires the %s role", op, entity.RoleAdmin))
	}

	if r.needsTask && task == nil {
		return domainerrors.ErrTaskNotFound
	}

	switch r.relation {
	case relationAuthor:
		if !task.AuthoredBy(caller.Email) {
			return domainerrors.ErrNotTaskAuthor.WithDetails(fmt.Sprintf("%s: %s is not the author of task %s", op, caller.Email, task.ID))
		}
	case relationExecutor:
		if !task.ExecutedBy(caller.Email) {
			return domainerrors.ErrNotTaskExecutor.WithDetails(fmt.Sprintf("%s: %s is not the executor of task %s", op, caller.Email, task.ID))
		}
	case relationAny:
	}

	return nil
}
