package auth

import (
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"
	"vitrine/internal/errors"
	"vitrine/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	tokenIssuer       = "vitrine"
)

// jwtService signs access and refresh tokens with separate HMAC secrets.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	clock         util.Clock
}

// NewJWTService builds the TokenService from the configured secrets and TTLs.
func NewJWTService(cfg *config.Config, clock util.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		clock:         clock,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

func (s *jwtService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	accessToken, err := s.sign(userID, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.sign(userID, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) ValidateAccessToken(token string) (*service.Claims, error) {
	return s.parse(token, service.TokenTypeAccess, s.accessSecret)
}

func (s *jwtService) ValidateRefreshToken(token string) (*service.Claims, error) {
	return s.parse(token, service.TokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) HashToken(token string) string {
	return util.ContentChecksum([]byte(token))
}

func (s *jwtService) AccessTokenDuration() time.Duration  { return s.accessTTL }
func (s *jwtService) RefreshTokenDuration() time.Duration { return s.refreshTTL }

func (s *jwtService) sign(userID uuid.UUID, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.clock.Now()
	claims := &service.Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *jwtService) parse(token, tokenType string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}
