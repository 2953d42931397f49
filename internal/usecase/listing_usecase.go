// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListingUsecase defines the stateless listing operations.
// The delivery layer and the listing board depend on this contract.
type ListingUsecase interface {
	// LoadPage returns one page of the whole table, newest first. Pages below 1 are clamped to 1.
	LoadPage(ctx context.Context, page int) (*entity.ListingPage, error)

	// LoadFeatured returns active featured listings. It never fails: store errors are
	// logged and yield an empty slice. A non-nil near orders the result by distance.
	LoadFeatured(ctx context.Context, near *orb.Point) []*entity.Listing

	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// CreateListing validates the form, resolves the signed-in operator and inserts the listing.
	CreateListing(ctx context.Context, form *entity.ListingFormData) (*entity.Listing, error)

	// UpdateListing writes the present patch fields and returns the updated_at it stamped.
	UpdateListing(ctx context.Context, id uuid.UUID, patch *entity.ListingPatch) (time.Time, error)

	// DeleteListing removes the listing. A missing id is not an error.
	DeleteListing(ctx context.Context, id uuid.UUID) error

	PageSize() int
}
