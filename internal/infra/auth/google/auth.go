// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"
	"vitrine/internal/errors"

	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate so tests can stub Google's key fetch.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// IDTokenVerifier checks signature, audience and expiry through google.golang.org/api/idtoken.
type IDTokenVerifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewIDTokenVerifier builds the verifier for the configured OAuth client.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) service.IDTokenVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &IDTokenVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

func (v *IDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if v.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	return user, nil
}

func (v *IDTokenVerifier) Provider() string {
	return entity.ProviderGoogle
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
