package repository

import "context"

// TransactionManager runs a unit of work atomically. A non-nil error from fn
// rolls every repository write made through txRepoFactory back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	TaskRepo() TaskRepository
	CommentRepo() CommentRepository
}
