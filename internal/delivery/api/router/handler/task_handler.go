package handler

import (
	"context"
	"log/slog"
	"net/http"

	"taskman/internal/delivery/api/response"
	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler serves the user task namespace.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description"`
	Priority      string `json:"priority" validate:"required,taskpriority"`
	ExecutorEmail string `json:"executor_email" validate:"required,email"`
}

// UpdateTaskRequest represents the request body for editing a task. Omitted fields keep their value.
type UpdateTaskRequest struct {
	Title         string  `json:"title" validate:"omitempty,max=255"`
	Description   *string `json:"description"`
	Status        string  `json:"status" validate:"omitempty,taskstatus"`
	Priority      string  `json:"priority" validate:"omitempty,taskpriority"`
	ExecutorEmail string  `json:"executor_email" validate:"omitempty,email"`
}

// CommentRequest represents the request body for commenting on a task
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=10"`
}

func (r *UpdateTaskRequest) toInput() *usecase.UpdateTaskInput {
	return &usecase.UpdateTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		Status:        entity.TaskStatus(r.Status),
		Priority:      entity.TaskPriority(r.Priority),
		ExecutorEmail: r.ExecutorEmail,
	}
}

// callerFrom returns the caller stored by the auth middleware.
func callerFrom(c echo.Context) (entity.Caller, error) {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return entity.Caller{}, domainerrors.ErrUnauthenticated
	}

	return *caller, nil
}

// uuidParam parses the named path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a valid UUID")
	}

	return id, nil
}

// Create stores a new task authored by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.CreateTask(c.Request().Context(), caller, &usecase.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      entity.TaskPriority(req.Priority),
		ExecutorEmail: req.ExecutorEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTaskResponse(task))
}

// All lists every task.
func (h *TaskHandler) All(c echo.Context) error {
	page, err := h.taskUC.ListTasks(c.Request().Context(), pageRequest(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskPageResponse(page))
}

// Mine lists the tasks authored by the caller.
func (h *TaskHandler) Mine(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.taskUC.ListMyTasks(c.Request().Context(), caller, pageRequest(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskPageResponse(page))
}

// ByUser lists the tasks authored by the user in the path.
func (h *TaskHandler) ByUser(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.taskUC.ListTasksByUser(c.Request().Context(), userID, pageRequest(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskPageResponse(page))
}

// Get returns one task with its comments.
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.GetTask(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskResponse(task))
}

// Edit replaces the editable fields of a task the caller authored.
func (h *TaskHandler) Edit(c echo.Context) error {
	return editTask(c, h.taskUC.UpdateTask)
}

// Delete removes a task the caller authored.
func (h *TaskHandler) Delete(c echo.Context) error {
	return deleteTask(c, h.taskUC.DeleteTask)
}

// ChangeStatus moves a task the caller executes to the status query parameter.
func (h *TaskHandler) ChangeStatus(c echo.Context) error {
	return changeStatus(c, h.taskUC.ChangeStatus)
}

// AddComment comments on a task the caller executes.
func (h *TaskHandler) AddComment(c echo.Context) error {
	return addComment(c, h.taskUC.AddComment)
}

type (
	editFunc    func(ctx context.Context, caller entity.Caller, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error)
	deleteFunc  func(ctx context.Context, caller entity.Caller, id uuid.UUID) error
	statusFunc  func(ctx context.Context, caller entity.Caller, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error)
	commentFunc func(ctx context.Context, caller entity.Caller, id uuid.UUID, content string) (*entity.Comment, error)
)

func editTask(c echo.Context, fn editFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := fn(c.Request().Context(), caller, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskResponse(task))
}

func deleteTask(c echo.Context, fn deleteFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := fn(c.Request().Context(), caller, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Task deleted")
}

func changeStatus(c echo.Context, fn statusFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := uuidParam(c, "taskId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := entity.TaskStatus(c.QueryParam("status"))
	if !status.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("status: must be one of WAITING, IN_PROGRESS, COMPLETED"))
	}

	task, err := fn(c.Request().Context(), caller, id, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskResponse(task))
}

func addComment(c echo.Context, fn commentFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := uuidParam(c, "taskId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := fn(c.Request().Context(), caller, id, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCommentResponse(comment))
}
