// Package response holds the wire shapes shared by handlers and middleware.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the single error shape the API ever returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes the uniform error body with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}
