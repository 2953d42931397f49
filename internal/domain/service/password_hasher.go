// Package service defines the contracts of the collaborators the use cases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes and verifies operator passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
