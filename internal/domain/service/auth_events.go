package service

import (
	"context"

	"vitrine/internal/domain/entity"
)

// AuthEventBus is the auth-state-changed stream.
type AuthEventBus interface {
	Publish(event entity.AuthEvent)

	// Subscribe delivers events until ctx is done, then closes the channel.
	Subscribe(ctx context.Context) <-chan entity.AuthEvent
}

// CurrentUserProvider resolves the operator behind a request.
type CurrentUserProvider interface {
	// CurrentUser returns errors.ErrUnauthenticated when nobody is signed in.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
