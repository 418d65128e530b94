package handler

import (
	"log/slog"
	"net/http"

	"taskman/internal/delivery/api/response"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// AdminHandler serves the admin task namespace. Ownership is not checked.
type AdminHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// Edit replaces the editable fields of any task.
func (h *AdminHandler) Edit(c echo.Context) error {
	return editTask(c, h.taskUC.AdminUpdateTask)
}

// Delete removes any task.
func (h *AdminHandler) Delete(c echo.Context) error {
	return deleteTask(c, h.taskUC.AdminDeleteTask)
}

// ChangeStatus moves any task to the status query parameter.
func (h *AdminHandler) ChangeStatus(c echo.Context) error {
	return changeStatus(c, h.taskUC.AdminChangeStatus)
}

// ChangePriority sets the priority of any task from the priority query parameter.
func (h *AdminHandler) ChangePriority(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := uuidParam(c, "taskId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	priority := entity.TaskPriority(c.QueryParam("priority"))
	if !priority.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("priority: must be one of LOW, MEDIUM, HIGH"))
	}

	task, err := h.taskUC.AdminChangePriority(c.Request().Context(), caller, id, priority)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskResponse(task))
}

// AddComment comments on any task.
func (h *AdminHandler) AddComment(c echo.Context) error {
	return addComment(c, h.taskUC.AdminAddComment)
}
