package handler

import (
	"net/http"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListHandler holds dependencies for todo list handlers.
type ListHandler struct {
	uc usecase.ListUsecase
}

// NewListHandler is the constructor for ListHandler, injected by Fx.
func NewListHandler(uc usecase.ListUsecase) *ListHandler {
	return &ListHandler{uc: uc}
}

// CreateList handles POST /lists.
func (h *ListHandler) CreateList(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateListInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateList(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// GetLists handles GET /lists.
func (h *ListHandler) GetLists(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	outputs, err := h.uc.GetLists(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, outputs)
}

// GetList handles GET /lists/:list_id.
func (h *ListHandler) GetList(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "list_id")
	if err != nil {
		return err
	}

	output, err := h.uc.GetList(c.Request().Context(), userID, listID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// UpdateList handles PUT /lists/:list_id.
func (h *ListHandler) UpdateList(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "list_id")
	if err != nil {
		return err
	}

	var input usecase.UpdateListInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateList(c.Request().Context(), userID, listID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// DeleteList handles DELETE /lists/:list_id.
func (h *ListHandler) DeleteList(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "list_id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteList(c.Request().Context(), userID, listID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
