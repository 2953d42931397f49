package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the custom JWT claims of vitrine tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates JWTs.
type TokenService interface {
	// GenerateTokens creates an access and a refresh token for userID.
	GenerateTokens(userID uuid.UUID) (accessToken, refreshToken string, err error)

	// ValidateAccessToken parses an access token.
	ValidateAccessToken(token string) (*Claims, error)

	// ValidateRefreshToken parses a refresh token.
	ValidateRefreshToken(token string) (*Claims, error)

	// HashToken returns the digest stored in place of a raw refresh token.
	HashToken(token string) string

	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
