package auth

import (
	"testing"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"
	"vitrine/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, clock util.Clock) service.TokenService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
	}

	svc, err := NewJWTService(cfg, clock)
	require.NoError(t, err)

	return svc
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(t, util.RealClock{})
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsSwappedTokens(t *testing.T) {
	svc := newTestJWTService(t, util.RealClock{})

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	_, err = svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_Expiry(t *testing.T) {
	clock := util.NewFakeClock(time.Now())
	svc := newTestJWTService(t, clock)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{}, util.RealClock{})

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_DurationsAndHash(t *testing.T) {
	svc := newTestJWTService(t, util.RealClock{})

	assert.Equal(t, time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, time.Hour, svc.RefreshTokenDuration())
	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
	assert.Len(t, svc.HashToken("abc"), 64)
}
