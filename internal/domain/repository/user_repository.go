package repository

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for operator accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists user and assigns its id when it is zero.
	Create(ctx context.Context, user *entity.User) error
}
