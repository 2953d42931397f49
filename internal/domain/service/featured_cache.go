package service

import (
	"context"

	"vitrine/internal/domain/entity"
)

// FeaturedCache keeps the result of the featured query between mutations.
type FeaturedCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context) (listings []*entity.Listing, ok bool, err error)

	// Version returns the current cache generation. Read it before querying the store.
	Version(ctx context.Context) (int64, error)

	// Set stores listings only if no Invalidate happened since version was read.
	Set(ctx context.Context, version int64, listings []*entity.Listing) error

	// Invalidate drops the cached set and starts a new generation.
	Invalidate(ctx context.Context) error
}
