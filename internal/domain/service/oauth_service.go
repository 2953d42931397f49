package service

import "context"

// OAuthUser is the identity asserted by an external provider.
type OAuthUser struct {
	ID            string // Provider subject.
	Email         string
	Name          string
	EmailVerified bool
}

// IDTokenVerifier verifies ID tokens sent by clients that signed in with a provider.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// Provider names the provider, e.g. entity.ProviderGoogle.
	Provider() string
}
