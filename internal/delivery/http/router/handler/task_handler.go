package handler

import (
	"net/http"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task handlers.
type TaskHandler struct {
	uc usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// taskScope pulls the acting user and both path identifiers.
func taskScope(c echo.Context) (userID, listID, taskID uuid.UUID, err error) {
	userID, err = actingUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}

	listID, err = pathUUID(c, "list_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}

	taskID, err = pathUUID(c, "task_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}

	return userID, listID, taskID, nil
}

// CreateTask handles POST /lists/:list_id/tasks.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "list_id")
	if err != nil {
		return err
	}

	var input usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateTask(c.Request().Context(), userID, listID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// GetTasks handles GET /lists/:list_id/tasks.
func (h *TaskHandler) GetTasks(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "list_id")
	if err != nil {
		return err
	}

	outputs, err := h.uc.GetTasks(c.Request().Context(), userID, listID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, outputs)
}

// GetTask handles GET /lists/:list_id/tasks/:task_id.
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID, listID, taskID, err := taskScope(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetTask(c.Request().Context(), userID, listID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// UpdateTask handles PUT /lists/:list_id/tasks/:task_id.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID, listID, taskID, err := taskScope(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateTask(c.Request().Context(), userID, listID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// DeleteTask handles DELETE /lists/:list_id/tasks/:task_id.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, listID, taskID, err := taskScope(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), userID, listID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
