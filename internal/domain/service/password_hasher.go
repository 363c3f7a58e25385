// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The returned
	// string is self-describing: it embeds the algorithm parameters and salt
	// so verification needs no external configuration.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded hash. It returns
	// an error only when the encoded hash cannot be parsed; a well-formed
	// hash that simply doesn't match yields (false, nil).
	Check(password, encoded string) (bool, error)
}
