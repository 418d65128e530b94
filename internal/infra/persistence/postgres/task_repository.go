package postgres

import (
	"context"
	"database/sql/driver"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/infra/persistence/model"
	"taskman/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface on the generated query builder.
type taskRepository struct {
	q *query.Query
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{q: query.Use(db)}
}

// FindByID loads a task with its participants and comments. Ownership is decided
// from this read, so every query goes to the primary.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	q := repo.q.WriteDB()
	t := q.TaskModel

	taskM, err := t.WithContext(ctx).Where(t.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	tasks, err := loadDetails(ctx, q, []*model.TaskModel{taskM})
	if err != nil {
		return nil, err
	}

	return tasks[0], nil
}

// List returns one page of all tasks, newest first.
func (repo *taskRepository) List(ctx context.Context, page repository.PageRequest) (*entity.Page[*entity.Task], error) {
	return repo.list(ctx, repo.q.TaskModel.WithContext(ctx), page)
}

// ListByAuthor returns one page of the tasks created by authorID, newest first.
func (repo *taskRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, page repository.PageRequest) (*entity.Page[*entity.Task], error) {
	t := repo.q.TaskModel

	return repo.list(ctx, t.WithContext(ctx).Where(t.AuthorID.Eq(authorID)), page)
}

func (repo *taskRepository) list(ctx context.Context, do query.ITaskModelDo, page repository.PageRequest) (*entity.Page[*entity.Task], error) {
	rows, total, err := do.Order(repo.q.TaskModel.CreatedAt.Desc()).FindByPage(page.Offset(), page.Size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	items, err := loadDetails(ctx, repo.q, rows)
	if err != nil {
		return nil, err
	}

	return &entity.Page[*entity.Task]{
		Items: items,
		Page:  page.Page,
		Size:  page.Size,
		Total: total,
	}, nil
}

// Create persists a new task. Author and Executor must already exist.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.q.TaskModel.WithContext(ctx).Create(taskM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrExecutorNotFound.WrapMessage("task references an unknown user")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("task violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update writes the mutable task columns in one statement.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)
	t := repo.q.TaskModel

	result, err := t.WithContext(ctx).
		Where(t.ID.Eq(task.ID)).
		UpdateSimple(
			t.Title.Value(taskM.Title),
			t.Description.Value(taskM.Description),
			t.Status.Value(taskM.Status),
			t.Priority.Value(taskM.Priority),
			t.ExecutorID.Value(taskM.ExecutorID),
			t.UpdatedAt.Value(taskM.UpdatedAt),
		)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrExecutorNotFound.WrapMessage("task references an unknown user")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("task violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task and, through the foreign key, its comments.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	t := repo.q.TaskModel

	result, err := t.WithContext(ctx).Where(t.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// loadDetails resolves the participants and the comment thread of rows with
// one query per table.
func loadDetails(ctx context.Context, q *query.Query, rows []*model.TaskModel) ([]*entity.Task, error) {
	if len(rows) == 0 {
		return []*entity.Task{}, nil
	}

	taskIDs := make([]driver.Valuer, 0, len(rows))
	for _, row := range rows {
		taskIDs = append(taskIDs, row.ID)
	}

	c := q.CommentModel
	comments, err := c.WithContext(ctx).
		Where(c.TaskID.In(taskIDs...)).
		Order(c.CreatedAt).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comments")
	}

	users, err := loadUsers(ctx, q, participantIDs(rows, comments))
	if err != nil {
		return nil, err
	}

	byTask := make(map[uuid.UUID][]*model.CommentModel, len(rows))
	for _, comment := range comments {
		byTask[comment.TaskID] = append(byTask[comment.TaskID], comment)
	}

	tasks := make([]*entity.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, toTaskDomain(row, byTask[row.ID], users))
	}

	return tasks, nil
}

// participantIDs collects every distinct user referenced by rows and comments.
func participantIDs(rows []*model.TaskModel, comments []*model.CommentModel) []driver.Valuer {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]driver.Valuer, 0, 2*len(rows))
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, row := range rows {
		add(row.AuthorID)
		add(row.ExecutorID)
	}
	for _, comment := range comments {
		add(comment.AuthorID)
	}

	return ids
}

func loadUsers(ctx context.Context, q *query.Query, ids []driver.Valuer) (map[uuid.UUID]*model.UserModel, error) {
	u := q.UserModel
	rows, err := u.WithContext(ctx).Where(u.ID.In(ids...)).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load task participants")
	}

	users := make(map[uuid.UUID]*model.UserModel, len(rows))
	for _, row := range rows {
		users[row.ID] = row
	}

	return users, nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel and its loaded thread to a domain Task entity.
func toTaskDomain(data *model.TaskModel, thread []*model.CommentModel, users map[uuid.UUID]*model.UserModel) *entity.Task {
	if data == nil {
		return nil
	}

	comments := make([]*entity.Comment, 0, len(thread))
	for _, c := range thread {
		comments = append(comments, toCommentDomain(c, users[c.AuthorID]))
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		Priority:    entity.TaskPriority(data.Priority),
		Author:      participant(users[data.AuthorID], data.AuthorID),
		Executor:    participant(users[data.ExecutorID], data.ExecutorID),
		Comments:    comments,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// participant maps a loaded user, or keeps at least the foreign key when it was not loaded.
func participant(user *model.UserModel, id uuid.UUID) *entity.User {
	if user != nil {
		return toUserDomain(user)
	}

	return &entity.User{ID: id}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	taskM := &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      string(data.Status),
		Priority:    string(data.Priority),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Author != nil {
		taskM.AuthorID = data.Author.ID
	}
	if data.Executor != nil {
		taskM.ExecutorID = data.Executor.ID
	}

	return taskM
}
