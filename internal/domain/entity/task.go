package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusWaiting    TaskStatus = "WAITING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid checks if the TaskStatus is a known value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusWaiting, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid checks if the TaskPriority is a known value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task is a unit of work created by an author and assigned to an executor.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	Author      *User
	Executor    *User
	Comments    []*Comment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthoredBy reports whether email is the task author.
func (t *Task) AuthoredBy(email string) bool {
	return t.Author != nil && t.Author.Email == email
}

// ExecutedBy reports whether email is the task executor.
func (t *Task) ExecutedBy(email string) bool {
	return t.Executor != nil && t.Executor.Email == email
}

// Comment is a note left on a task by its executor or an administrator.
type Comment struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	Author    *User
	Content   string
	CreatedAt time.Time
}

// Page is a slice of results plus the paging window that produced it.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int64
}
