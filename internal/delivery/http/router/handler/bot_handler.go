package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BotHandler serves the machine-to-machine bot surface.
type BotHandler struct{}

// NewBotHandler is the constructor for BotHandler, injected by Fx.
func NewBotHandler() *BotHandler {
	return &BotHandler{}
}

// ListBots handles GET /bots. Bot registration does not exist yet, so the
// collection is always empty; the route is live so callers can integrate
// against the service-token gate.
// TODO: back this with a bots table once bot registration lands.
func (h *BotHandler) ListBots(c echo.Context) error {
	return c.JSON(http.StatusOK, []any{})
}
