package google

import (
	"context"
	"log/slog"
	"testing"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	"vitrine/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *IDTokenVerifier {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	v := NewIDTokenVerifier(cfg, slog.Default()).(*IDTokenVerifier)
	v.validate = validate

	return v
}

func TestIDTokenVerifier_VerifyIDToken(t *testing.T) {
	var gotAudience string
	v := newTestVerifier(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "ana@example.com",
				"name":           "Ana",
				"email_verified": true,
			},
		}, nil
	})

	user, err := v.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
}

func TestIDTokenVerifier_RejectsUnverifiedEmail(t *testing.T) {
	v := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "s", Claims: map[string]any{"email_verified": "false"}}, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestIDTokenVerifier_InvalidToken(t *testing.T) {
	v := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: invalid token")
	})

	_, err := v.VerifyIDToken(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestIDTokenVerifier_NotConfigured(t *testing.T) {
	v := NewIDTokenVerifier(&config.Config{}, slog.Default())

	_, err := v.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
	assert.Equal(t, entity.ProviderGoogle, v.Provider())
}
