package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/policy"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minCommentLength = 10
	defaultPageSize  = 20
	maxPageSize      = 100
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	taskRepo  repository.TaskRepository
	clock     service.Clock
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	TaskRepo  repository.TaskRepository
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		taskRepo:  params.TaskRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizePage clamps a page request into the supported window.
func normalizePage(page repository.PageRequest) repository.PageRequest {
	if page.Page < 0 {
		page.Page = 0
	}
	switch {
	case page.Size <= 0:
		page.Size = defaultPageSize
	case page.Size > maxPageSize:
		page.Size = maxPageSize
	}

	return page
}

// CreateTask stores a WAITING task authored by caller and assigned to an existing executor.
func (srv *taskService) CreateTask(ctx context.Context, caller entity.Caller, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if !input.Priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown priority %q", input.Priority))
	}

	var created *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		author, err := userRepo.FindByEmail(ctx, caller.Email)
		if err != nil {
			return mapUserLookupError(err, domainerrors.ErrUserNotFound)
		}
		executor, err := userRepo.FindByEmail(ctx, input.ExecutorEmail)
		if err != nil {
			return mapUserLookupError(err, domainerrors.ErrExecutorNotFound)
		}

		now := srv.clock.Now()
		task := &entity.Task{
			Title:       input.Title,
			Description: input.Description,
			Status:      entity.TaskStatusWaiting,
			Priority:    input.Priority,
			Author:      author,
			Executor:    executor,
			Comments:    []*entity.Comment{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repoFactory.TaskRepo().Create(ctx, task); err != nil {
			return errors.WithStack(err)
		}
		created = task

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create task", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}
	srv.log(ctx).Info("Task created", slog.Any("task_id", created.ID))

	return created, nil
}

// GetTask returns a task with its comments.
func (srv *taskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTaskLookupError(err)
	}

	return task, nil
}

// ListTasks returns one page of all tasks.
func (srv *taskService) ListTasks(ctx context.Context, page repository.PageRequest) (*entity.Page[*entity.Task], error) {
	result, err := srv.taskRepo.List(ctx, normalizePage(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return result, nil
}

// ListMyTasks returns one page of the tasks authored by caller.
func (srv *taskService) ListMyTasks(ctx context.Context, caller entity.Caller, page repository.PageRequest) (*entity.Page[*entity.Task], error) {
	user, err := srv.userRepo.FindByEmail(ctx, caller.Email)
	if err != nil {
		return nil, mapUserLookupError(err, domainerrors.ErrUserNotFound)
	}

	return srv.ListTasksByUser(ctx, user.ID, page)
}

// ListTasksByUser returns one page of the tasks authored by userID.
func (srv *taskService) ListTasksByUser(ctx context.Context, userID uuid.UUID, page repository.PageRequest) (*entity.Page[*entity.Task], error) {
	result, err := srv.taskRepo.ListByAuthor(ctx, userID, normalizePage(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by author")
	}

	return result, nil
}

func (srv *taskService) UpdateTask(ctx context.Context, caller entity.Caller, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	return srv.update(ctx, policy.OpUpdateTask, caller, id, input)
}

func (srv *taskService) AdminUpdateTask(ctx context.Context, caller entity.Caller, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	return srv.update(ctx, policy.OpAdminUpdateTask, caller, id, input)
}

func (srv *taskService) DeleteTask(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	return srv.delete(ctx, policy.OpDeleteTask, caller, id)
}

func (srv *taskService) AdminDeleteTask(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	return srv.delete(ctx, policy.OpAdminDeleteTask, caller, id)
}

func (srv *taskService) ChangeStatus(ctx context.Context, caller entity.Caller, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error) {
	return srv.update(ctx, policy.OpChangeStatus, caller, id, &usecase.UpdateTaskInput{Status: status})
}

func (srv *taskService) AdminChangeStatus(ctx context.Context, caller entity.Caller, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error) {
	return srv.update(ctx, policy.OpAdminChangeStatus, caller, id, &usecase.UpdateTaskInput{Status: status})
}

func (srv *taskService) AdminChangePriority(ctx context.Context, caller entity.Caller, id uuid.UUID, priority entity.TaskPriority) (*entity.Task, error) {
	return srv.update(ctx, policy.OpAdminChangePriority, caller, id, &usecase.UpdateTaskInput{Priority: priority})
}

func (srv *taskService) AddComment(ctx context.Context, caller entity.Caller, id uuid.UUID, content string) (*entity.Comment, error) {
	return srv.comment(ctx, policy.OpAddComment, caller, id, content)
}

func (srv *taskService) AdminAddComment(ctx context.Context, caller entity.Caller, id uuid.UUID, content string) (*entity.Comment, error) {
	return srv.comment(ctx, policy.OpAdminAddComment, caller, id, content)
}

// guarded loads the task, authorizes op against it and runs fn in the same transaction.
func (srv *taskService) guarded(
	ctx context.Context,
	op policy.Operation,
	caller entity.Caller,
	id uuid.UUID,
	fn func(repoFactory repository.RepositoryFactory, task *entity.Task) error,
) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		task, err := repoFactory.TaskRepo().FindByID(ctx, id)
		if err != nil && !errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(err, "failed to load task")
		}

		if err := policy.Authorize(op, caller, task); err != nil {
			return err
		}

		return fn(repoFactory, task)
	})
	if err != nil {
		srv.log(ctx).Debug("Task operation rejected",
			slog.String("operation", op.String()),
			slog.Any("task_id", id),
			slog.Any("error", err),
		)

		return err
	}
	srv.log(ctx).Info("Task operation applied", slog.String("operation", op.String()), slog.Any("task_id", id))

	return nil
}

func (srv *taskService) update(ctx context.Context, op policy.Operation, caller entity.Caller, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	var updated *entity.Task
	err := srv.guarded(ctx, op, caller, id, func(repoFactory repository.RepositoryFactory, task *entity.Task) error {
		if input.Title != "" {
			task.Title = input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Status != "" {
			task.Status = input.Status
		}
		if input.Priority != "" {
			task.Priority = input.Priority
		}
		if input.ExecutorEmail != "" && !task.ExecutedBy(input.ExecutorEmail) {
			executor, err := repoFactory.UserRepo().FindByEmail(ctx, input.ExecutorEmail)
			if err != nil {
				return mapUserLookupError(err, domainerrors.ErrExecutorNotFound)
			}
			task.Executor = executor
		}
		task.UpdatedAt = srv.clock.Now()

		if err := repoFactory.TaskRepo().Update(ctx, task); err != nil {
			return mapTaskLookupError(err)
		}
		updated = task

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *taskService) delete(ctx context.Context, op policy.Operation, caller entity.Caller, id uuid.UUID) error {
	return srv.guarded(ctx, op, caller, id, func(repoFactory repository.RepositoryFactory, task *entity.Task) error {
		if err := repoFactory.TaskRepo().Delete(ctx, task.ID); err != nil {
			return mapTaskLookupError(err)
		}

		return nil
	})
}

func (srv *taskService) comment(ctx context.Context, op policy.Operation, caller entity.Caller, id uuid.UUID, content string) (*entity.Comment, error) {
	if utf8.RuneCountInString(content) < minCommentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("comment must be at least %d characters", minCommentLength))
	}

	var created *entity.Comment
	err := srv.guarded(ctx, op, caller, id, func(repoFactory repository.RepositoryFactory, task *entity.Task) error {
		author, err := repoFactory.UserRepo().FindByEmail(ctx, caller.Email)
		if err != nil {
			return mapUserLookupError(err, domainerrors.ErrUserNotFound)
		}

		comment := &entity.Comment{
			TaskID:    task.ID,
			Author:    author,
			Content:   content,
			CreatedAt: srv.clock.Now(),
		}
		if err := repoFactory.CommentRepo().Create(ctx, comment); err != nil {
			return errors.WithStack(err)
		}
		created = comment

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func validateUpdate(input *usecase.UpdateTaskInput) error {
	if input.Status != "" && !input.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", input.Status))
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown priority %q", input.Priority))
	}

	return nil
}

func mapTaskLookupError(err error) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound
	}

	return errors.Wrap(err, "failed to access task")
}
