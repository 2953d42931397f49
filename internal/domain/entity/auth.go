package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication providers an operator can sign in with.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// Authentication is one way an operator can sign in, e.g. an email/password pair or a linked Google account.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // ProviderEmail or ProviderGoogle.
	ProviderUserID string // Email for ProviderEmail, the Google subject for ProviderGoogle.
	PasswordHash   string // Only set for ProviderEmail.
	CreatedAt      time.Time
}

// RefreshToken is a persisted session. Only a SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TokenPair is what a successful sign-in hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // Access token expiry.
}
