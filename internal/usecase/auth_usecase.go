package usecase

import (
	"context"

	"vitrine/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new operator.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an operator to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every successful sign-in.
type AuthOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// AuthUsecase defines operator account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, idToken string) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Logout revokes the refresh token and announces the signed-out event.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser resolves the operator bound to ctx, or fails with ErrUnauthenticated.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
