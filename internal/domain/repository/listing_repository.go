// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when no listing has the requested id.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository is the relational store of listings.
// Every read maps rows through the same record transform.
type ListingRepository interface {
	// CountListings returns the number of rows in the whole, unfiltered table.
	CountListings(ctx context.Context) (int64, error)

	// FindListingsPage returns at most limit listings starting at offset, newest first.
	FindListingsPage(ctx context.Context, offset, limit int) ([]*entity.Listing, error)

	// FindFeaturedListings returns every featured, active listing, newest first.
	FindFeaturedListings(ctx context.Context) ([]*entity.Listing, error)

	// FindListingByID returns ErrListingNotFound when the id is unknown.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// CreateListing inserts listing owned by ownerID and fills in the
	// store-assigned id and timestamps.
	CreateListing(ctx context.Context, ownerID uuid.UUID, listing *entity.Listing) error

	// UpdateListing writes only the fields present in patch plus updatedAt.
	// It returns ErrListingNotFound when no row matched.
	UpdateListing(ctx context.Context, id uuid.UUID, patch *entity.ListingPatch, updatedAt time.Time) error

	// DeleteListing removes the row. Deleting an unknown id is not an error.
	DeleteListing(ctx context.Context, id uuid.UUID) error
}
