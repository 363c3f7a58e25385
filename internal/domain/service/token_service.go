package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Validate for every kind of bad token:
// malformed, wrong signature, expired, or missing the subject claim.
// Callers must not leak which case occurred.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token asserting the given user's identity.
	Issue(userID uuid.UUID) (string, error)

	// Validate checks a token string and returns the user ID it asserts.
	// Any failure is reported as ErrInvalidToken.
	Validate(tokenString string) (uuid.UUID, error)
}
