// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"vitrine/config"
	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"
	"vitrine/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	listingRepo repository.ListingRepository
	users       service.CurrentUserProvider
	publisher   service.EventPublisher
	cache       service.FeaturedCache
	clock       util.Clock
	pageSize    int
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Users       service.CurrentUserProvider
	Publisher   service.EventPublisher
	Cache       service.FeaturedCache
	Clock       util.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	pageSize := entity.DefaultPageSize
	if params.Config != nil && params.Config.Listings != nil && params.Config.Listings.PageSize > 0 {
		pageSize = params.Config.Listings.PageSize
	}

	return &listingService{
		listingRepo: params.ListingRepo,
		users:       params.Users,
		publisher:   params.Publisher,
		cache:       params.Cache,
		clock:       params.Clock,
		pageSize:    pageSize,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *listingService) PageSize() int {
	return srv.pageSize
}

// LoadPage counts the whole table and fetches the requested range.
func (srv *listingService) LoadPage(ctx context.Context, page int) (*entity.ListingPage, error) {
	page = entity.ClampPage(page)

	totalCount, err := srv.listingRepo.CountListings(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count listings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count listings")
	}

	listings, err := srv.listingRepo.FindListingsPage(ctx, entity.PageOffset(page, srv.pageSize), srv.pageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to load listings page", slog.Int("page", page), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to load listings page %d", page)
	}

	return &entity.ListingPage{
		Listings:   listings,
		Page:       page,
		PageSize:   srv.pageSize,
		TotalCount: totalCount,
		TotalPages: entity.TotalPages(totalCount, srv.pageSize),
	}, nil
}

func (srv *listingService) LoadFeatured(ctx context.Context, near *orb.Point) []*entity.Listing {
	listings, ok, err := srv.cache.Get(ctx)
	if err != nil {
		srv.log(ctx).Warn("Featured cache read failed", slog.Any("error", err))
	}

	if ok {
		// A cached entry may predate a status change on another instance.
		listings = slices.DeleteFunc(slices.Clone(listings), func(l *entity.Listing) bool {
			return !l.IsFeaturedVisible()
		})
	} else {
		listings = srv.loadFeaturedFromStore(ctx)
	}

	if listings == nil {
		listings = []*entity.Listing{}
	}

	if near != nil {
		listings = sortByDistance(listings, *near)
	}

	return listings
}

// loadFeaturedFromStore queries the store and refills the cache unless a
// mutation invalidated it while the query ran.
func (srv *listingService) loadFeaturedFromStore(ctx context.Context) []*entity.Listing {
	version, versionErr := srv.cache.Version(ctx)
	if versionErr != nil {
		srv.log(ctx).Warn("Featured cache version read failed", slog.Any("error", versionErr))
	}

	listings, err := srv.listingRepo.FindFeaturedListings(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load featured listings", slog.Any("error", err))

		return []*entity.Listing{}
	}

	if versionErr != nil {
		return listings
	}

	if err := srv.cache.Set(ctx, version, listings); err != nil {
		srv.log(ctx).Warn("Featured cache write failed", slog.Any("error", err))
	}

	return listings
}

// sortByDistance returns a copy ordered by distance from origin.
// Listings without coordinates keep their relative order after the located ones.
func sortByDistance(listings []*entity.Listing, origin orb.Point) []*entity.Listing {
	sorted := slices.Clone(listings)
	slices.SortStableFunc(sorted, func(a, b *entity.Listing) int {
		pa, okA := a.Location.Point()
		pb, okB := b.Location.Point()

		switch {
		case okA && okB:
			da, db := geo.Distance(origin, pa), geo.Distance(origin, pb)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			default:
				return 0
			}
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})

	return sorted
}

func (srv *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindListingByID(ctx, id)
	if errors.Is(err, repository.ErrListingNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrListingNotFound, "listing %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// CreateListing writes nothing unless the form is valid and an operator is signed in.
func (srv *listingService) CreateListing(ctx context.Context, form *entity.ListingFormData) (*entity.Listing, error) {
	if err := form.Validate(); err != nil {
		srv.log(ctx).Warn("Listing form rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	user, err := srv.users.CurrentUser(ctx)
	if err != nil {
		srv.log(ctx).Warn("Listing creation without a signed-in operator", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve current user")
	}

	listing := form.NewListing(srv.clock.Now())
	if err := srv.listingRepo.CreateListing(ctx, user.ID, listing); err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.String("name", listing.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.Any("listingID", listing.ID), slog.Any("ownerID", user.ID))
	srv.afterMutation(ctx, entity.ListingEventCreated, listing.ID)

	return listing, nil
}

func (srv *listingService) UpdateListing(ctx context.Context, id uuid.UUID, patch *entity.ListingPatch) (time.Time, error) {
	if err := patch.Validate(); err != nil {
		srv.log(ctx).Warn("Listing patch rejected", slog.Any("listingID", id), slog.Any("error", err))

		return time.Time{}, errors.WithStack(err)
	}

	updatedAt := srv.clock.Now()
	if err := srv.listingRepo.UpdateListing(ctx, id, patch, updatedAt); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return time.Time{}, errors.Wrapf(domainerrors.ErrListingNotFound, "listing %s", id)
		}
		srv.log(ctx).Error("Failed to update listing", slog.Any("listingID", id), slog.Any("error", err))

		return time.Time{}, errors.Wrap(err, "failed to update listing")
	}

	srv.afterMutation(ctx, entity.ListingEventUpdated, id)

	return updatedAt, nil
}

func (srv *listingService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := srv.listingRepo.DeleteListing(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete listing", slog.Any("listingID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.afterMutation(ctx, entity.ListingEventDeleted, id)

	return nil
}

// afterMutation drops the featured cache and announces the change.
// Both steps are best-effort: the mutation is already committed.
func (srv *listingService) afterMutation(ctx context.Context, eventType entity.ListingEventType, listingID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Featured cache invalidation failed", slog.Any("error", err))
	}

	actorID, _ := deliverycontext.GetUserID(ctx)
	event := entity.NewListingEvent(eventType, listingID, actorID, srv.clock.Now())
	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("type", string(eventType)),
			slog.Any("listingID", listingID),
			slog.Any("error", err))
	}
}
