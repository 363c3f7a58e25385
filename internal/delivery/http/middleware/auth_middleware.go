// Package middleware contains the echo middleware for authentication and error mapping.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// unauthorizedMessage is the single body every authentication failure gets.
// Clients cannot tell a missing header from a bad signature or an expired token.
const unauthorizedMessage = "invalid or missing credentials"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and records the asserted user ID
// on the context. The failure reason is logged at debug level only.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			m.logDebug(c, "missing or malformed authorization header")

			return response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
		}

		userID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			m.logDebug(c, "token validation failed")

			return response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

func (m *AuthMiddleware) logDebug(c echo.Context, reason string) {
	m.logger.Debug("Authentication rejected",
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The prefix match is exact; "bearer" or a bare token is rejected.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}

	return token, true
}
