package handler

import (
	deliverycontext "taskhub/internal/delivery/context"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actingUserID returns the authenticated user's ID set by the auth
// middleware. Its absence on a protected route is a programming error in the
// route table, reported as a credential failure rather than a panic.
func actingUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidCredentials
	}

	return userID, nil
}

// pathUUID parses a uuid path parameter. A malformed value is a validation
// failure, not a not-found.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidIdentifier
	}

	return id, nil
}
