// Package board holds the session-scoped listing state an operator works on:
// the current page, page-local filters, the featured set and pending notifications.
package board

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Snapshot is a consistent read of a board.
type Snapshot struct {
	Listings    []*entity.Listing // Current page after the filters.
	Featured    []*entity.Listing
	Filters     entity.ListingFilters
	Page        int
	PageSize    int
	TotalPages  int
	TotalCount  int64
	PageWindow  []int
	HasPrevious bool
	HasNext     bool
	Loading     bool
}

// Board is safe for concurrent use. The lock is never held across I/O.
type Board struct {
	listings usecase.ListingUsecase
	logger   *slog.Logger

	mu            sync.Mutex
	page          []*entity.Listing
	featured      []*entity.Listing
	filters       entity.ListingFilters
	currentPage   int
	totalPages    int
	totalCount    int64
	seq           uint64
	inFlight      int
	notifications []Notification
}

// New returns an empty board positioned on page 1.
func New(listings usecase.ListingUsecase, logger *slog.Logger) *Board {
	return &Board{
		listings:    listings,
		logger:      logger,
		page:        []*entity.Listing{},
		featured:    []*entity.Listing{},
		currentPage: 1,
	}
}

func (b *Board) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, b.logger)
}

// Load fetches page and replaces the listing set with exactly that page.
// Only the most recently issued load may change state; an older response is dropped.
// On failure the previous set is kept and an error notification is queued.
func (b *Board) Load(ctx context.Context, page int) error {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.inFlight++
	b.mu.Unlock()

	result, err := b.listings.LoadPage(ctx, page)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.inFlight--

	if seq != b.seq {
		b.log(ctx).Debug("Discarding stale listing page", slog.Int("page", page), slog.Uint64("seq", seq), slog.Uint64("latest", b.seq))

		return err
	}

	if err != nil {
		b.log(ctx).Warn("Listing page load failed", slog.Int("page", page), slog.Any("error", err))
		b.notifications = append(b.notifications, notifyLoadFailed)

		return err
	}

	b.page = result.Listings
	if b.page == nil {
		b.page = []*entity.Listing{}
	}
	b.currentPage = result.Page
	b.totalPages = result.TotalPages
	b.totalCount = result.TotalCount

	return nil
}

// Reload loads the current page again.
func (b *Board) Reload(ctx context.Context) error {
	b.mu.Lock()
	page := b.currentPage
	b.mu.Unlock()

	return b.Load(ctx, page)
}

// SetPage moves to page and loads it.
func (b *Board) SetPage(ctx context.Context, page int) error {
	page = entity.ClampPage(page)

	b.mu.Lock()
	b.currentPage = page
	b.mu.Unlock()

	return b.Load(ctx, page)
}

// SetFilters replaces the filters and resets to page 1 without reloading.
// Filters only narrow the page already held.
func (b *Board) SetFilters(filters entity.ListingFilters) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.filters = filters
	b.currentPage = 1
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	visible := slices.Clone(b.page)
	if !b.filters.IsEmpty() {
		visible = entity.FilterListings(b.page, b.filters)
	}

	return Snapshot{
		Listings:    visible,
		Featured:    slices.Clone(b.featured),
		Filters:     b.filters,
		Page:        b.currentPage,
		PageSize:    b.listings.PageSize(),
		TotalPages:  b.totalPages,
		TotalCount:  b.totalCount,
		PageWindow:  entity.PageWindow(b.currentPage, b.totalPages, entity.DefaultPageWindow),
		HasPrevious: entity.HasPrevious(b.currentPage),
		HasNext:     entity.HasNext(b.currentPage, b.totalPages),
		Loading:     b.inFlight > 0,
	}
}

// Create inserts the listing and reloads page 1 so it shows up first.
// A failed reload is notified but does not fail the creation.
func (b *Board) Create(ctx context.Context, form *entity.ListingFormData) (*entity.Listing, error) {
	listing, err := b.listings.CreateListing(ctx, form)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidListing) {
			b.notify(notifyInvalidForm)
		} else {
			b.notify(notifySaveFailed)
		}
		b.log(ctx).Warn("Board create failed", slog.Any("error", err))

		return nil, err
	}

	b.notify(notifyCreated)

	b.mu.Lock()
	b.currentPage = 1
	b.mu.Unlock()

	if err := b.Load(ctx, 1); err != nil {
		b.log(ctx).Warn("Reload after create failed", slog.Any("listingID", listing.ID), slog.Any("error", err))
	}

	return listing, nil
}

// Update writes the patch and merges it into the held copy without refetching.
func (b *Board) Update(ctx context.Context, id uuid.UUID, patch *entity.ListingPatch) error {
	if err := b.update(ctx, id, patch); err != nil {
		if errors.Is(err, entity.ErrInvalidListing) {
			b.notify(notifyInvalidForm)
		} else {
			b.notify(notifySaveFailed)
		}

		return err
	}

	b.notify(notifyUpdated)

	return nil
}

func (b *Board) update(ctx context.Context, id uuid.UUID, patch *entity.ListingPatch) error {
	updatedAt, err := b.listings.UpdateListing(ctx, id, patch)
	if err != nil {
		b.log(ctx).Warn("Board update failed", slog.Any("listingID", id), slog.Any("error", err))

		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Replace the element instead of mutating it: snapshots handed out earlier share pointers.
	if i := b.indexOf(id); i >= 0 {
		merged := b.page[i].Clone()
		patch.Apply(merged, updatedAt)
		page := slices.Clone(b.page)
		page[i] = merged
		b.page = page
	}

	return nil
}

// Delete removes the listing and reloads the current page.
func (b *Board) Delete(ctx context.Context, id uuid.UUID) error {
	if err := b.listings.DeleteListing(ctx, id); err != nil {
		b.log(ctx).Warn("Board delete failed", slog.Any("listingID", id), slog.Any("error", err))
		b.notify(notifyDeleteFailed)

		return err
	}

	b.notify(notifyDeleted)

	if err := b.Reload(ctx); err != nil {
		b.log(ctx).Warn("Reload after delete failed", slog.Any("listingID", id), slog.Any("error", err))
	}

	return nil
}

// ToggleStatus pauses an active listing and reactivates any other.
// An id that is not on the board is ignored.
func (b *Board) ToggleStatus(ctx context.Context, id uuid.UUID) error {
	b.mu.Lock()
	i := b.indexOf(id)
	var current entity.ListingStatus
	if i >= 0 {
		current = b.page[i].Status
	}
	b.mu.Unlock()

	if i < 0 {
		b.log(ctx).Debug("Toggle ignored, listing not on board", slog.Any("listingID", id))

		return nil
	}

	next := current.Toggled()
	if err := b.update(ctx, id, entity.StatusPatch(next)); err != nil {
		b.notify(notifyToggleFailed)

		return err
	}

	if next == entity.ListingStatusPaused {
		b.notify(notifyToggled("pausado"))
	} else {
		b.notify(notifyToggled("ativado"))
	}

	return nil
}

// LoadFeatured refreshes the featured set, which is kept apart from the page.
func (b *Board) LoadFeatured(ctx context.Context, near *orb.Point) []*entity.Listing {
	featured := b.listings.LoadFeatured(ctx, near)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.featured = featured

	return slices.Clone(featured)
}

// TakeNotifications returns the queued notifications and clears the queue.
func (b *Board) TakeNotifications() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	taken := b.notifications
	b.notifications = nil
	if taken == nil {
		return []Notification{}
	}

	return taken
}

func (b *Board) notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notifications = append(b.notifications, n)
}

// indexOf must be called with mu held.
func (b *Board) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(b.page, func(l *entity.Listing) bool { return l.ID == id })
}
