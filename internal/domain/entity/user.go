// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It is created once at registration and
// never mutated afterwards; PasswordHash stores the self-describing argon2id
// encoding of the password, never the plaintext.
type User struct {
	ID           uuid.UUID // The unique identifier for this account.
	Email        string    // The login identifier. Unique, stored case-sensitively.
	PasswordHash string    // The argon2id hash of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
