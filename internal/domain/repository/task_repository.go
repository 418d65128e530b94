package repository

import (
	"context"
	"errors"

	"taskman/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task matches the given ID.
var ErrTaskNotFound = errors.New("task not found")

// PageRequest selects a window of a listing. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// TaskRepository persists tasks. Loaded tasks always carry Author and Executor.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	List(ctx context.Context, page PageRequest) (*entity.Page[*entity.Task], error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page PageRequest) (*entity.Page[*entity.Task], error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentRepository persists task comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
}
