package repository

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAuthNotFound is returned when no sign-in method matches.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores the sign-in methods linked to operator accounts.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks a sign-in method up by provider and provider-specific id.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
