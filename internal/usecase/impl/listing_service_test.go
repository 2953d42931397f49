package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	mockRepo "vitrine/internal/mocks/repository"
	mockService "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"
	"vitrine/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	listingRepo *mockRepo.MockListingRepository
	users       *mockService.MockCurrentUserProvider
	publisher   *mockService.MockEventPublisher
	cache       *mockService.MockFeaturedCache
	clock       *util.FakeClock
}

func createTestListingService(t *testing.T, pageSize int) listingServiceFixtures {
	fx := listingServiceFixtures{
		listingRepo: mockRepo.NewMockListingRepository(t),
		users:       mockService.NewMockCurrentUserProvider(t),
		publisher:   mockService.NewMockEventPublisher(t),
		cache:       mockService.NewMockFeaturedCache(t),
		clock:       util.NewFakeClock(testNow),
	}

	fx.service = NewListingService(ListingServiceParams{
		ListingRepo: fx.listingRepo,
		Users:       fx.users,
		Publisher:   fx.publisher,
		Cache:       fx.cache,
		Clock:       fx.clock,
		Config:      newTestConfig(pageSize),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestListingService_PageSize(t *testing.T) {
	assert.Equal(t, entity.DefaultPageSize, createTestListingService(t, 0).service.PageSize())
	assert.Equal(t, 10, createTestListingService(t, 10).service.PageSize())
}

func TestListingService_LoadPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		count      int64
		wantPage   int
		wantOffset int
		wantTotal  int
	}{
		{name: "first page", page: 1, count: 13, wantPage: 1, wantOffset: 0, wantTotal: 3},
		{name: "last partial page", page: 3, count: 13, wantPage: 3, wantOffset: 12, wantTotal: 3},
		{name: "page below one is clamped", page: 0, count: 6, wantPage: 1, wantOffset: 0, wantTotal: 1},
		{name: "empty table", page: 1, count: 0, wantPage: 1, wantOffset: 0, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t, 6)
			ctx := context.Background()
			rows := []*entity.Listing{newTestListing("Pousada Serra Verde")}

			fx.listingRepo.EXPECT().CountListings(ctx).Return(tt.count, nil)
			fx.listingRepo.EXPECT().FindListingsPage(ctx, tt.wantOffset, 6).Return(rows, nil)

			page, err := fx.service.LoadPage(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, 6, page.PageSize)
			assert.Equal(t, tt.count, page.TotalCount)
			assert.Equal(t, tt.wantTotal, page.TotalPages)
			assert.Equal(t, rows, page.Listings)
		})
	}
}

func TestListingService_LoadPage_CountError(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to count listings")

	fx.listingRepo.EXPECT().CountListings(ctx).Return(int64(0), storeErr)

	page, err := fx.service.LoadPage(ctx, 1)
	require.Error(t, err)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, storeErr)
}

func TestListingService_LoadPage_RangeError(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()

	fx.listingRepo.EXPECT().CountListings(ctx).Return(int64(20), nil)
	fx.listingRepo.EXPECT().FindListingsPage(ctx, 6, 6).Return(nil, errors.New("timeout"))

	page, err := fx.service.LoadPage(ctx, 2)
	require.Error(t, err)
	assert.Nil(t, page)
	assert.Contains(t, err.Error(), "failed to load listings page 2")
}

func newFeaturedListing(name string) *entity.Listing {
	listing := newTestListing(name)
	listing.Featured = true

	return listing
}

func TestListingService_LoadFeatured_CacheHit(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	cached := []*entity.Listing{newFeaturedListing("Cachoeira do Sol")}

	fx.cache.EXPECT().Get(ctx).Return(cached, true, nil)

	assert.Equal(t, cached, fx.service.LoadFeatured(ctx, nil))
}

func TestListingService_LoadFeatured_CacheHitDropsInvisible(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	visible := newFeaturedListing("Cachoeira do Sol")
	paused := newFeaturedListing("Pousada Pausada")
	paused.Status = entity.ListingStatusPaused
	unfeatured := newTestListing("Sabor da Roça")
	cached := []*entity.Listing{paused, visible, unfeatured}

	fx.cache.EXPECT().Get(ctx).Return(cached, true, nil)

	assert.Equal(t, []*entity.Listing{visible}, fx.service.LoadFeatured(ctx, nil))
	assert.Len(t, cached, 3, "cached slice must not be modified")
}

func TestListingService_LoadFeatured_CacheMiss(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	rows := []*entity.Listing{newFeaturedListing("Pousada Serra Verde")}

	fx.cache.EXPECT().Get(ctx).Return(nil, false, nil)
	fx.cache.EXPECT().Version(ctx).Return(int64(7), nil)
	fx.listingRepo.EXPECT().FindFeaturedListings(ctx).Return(rows, nil)
	fx.cache.EXPECT().Set(ctx, int64(7), rows).Return(nil)

	assert.Equal(t, rows, fx.service.LoadFeatured(ctx, nil))
}

func TestListingService_LoadFeatured_VersionReadBeforeStore(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	rows := []*entity.Listing{newFeaturedListing("Pousada Serra Verde")}

	var calls []string
	fx.cache.EXPECT().Get(ctx).Return(nil, false, nil)
	fx.cache.EXPECT().Version(ctx).
		Run(func(context.Context) { calls = append(calls, "version") }).
		Return(int64(3), nil)
	fx.listingRepo.EXPECT().FindFeaturedListings(ctx).
		Run(func(context.Context) { calls = append(calls, "store") }).
		Return(rows, nil)
	fx.cache.EXPECT().Set(ctx, int64(3), rows).
		Run(func(context.Context, int64, []*entity.Listing) { calls = append(calls, "set") }).
		Return(nil)

	fx.service.LoadFeatured(ctx, nil)

	assert.Equal(t, []string{"version", "store", "set"}, calls)
}

func TestListingService_LoadFeatured_VersionErrorSkipsWrite(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	rows := []*entity.Listing{newFeaturedListing("Pousada Serra Verde")}

	fx.cache.EXPECT().Get(ctx).Return(nil, false, errors.New("redis down"))
	fx.cache.EXPECT().Version(ctx).Return(int64(0), errors.New("redis down"))
	fx.listingRepo.EXPECT().FindFeaturedListings(ctx).Return(rows, nil)

	assert.Equal(t, rows, fx.service.LoadFeatured(ctx, nil))
	fx.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingService_LoadFeatured_CacheErrorsAreIgnored(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	rows := []*entity.Listing{newFeaturedListing("Pousada Serra Verde")}

	fx.cache.EXPECT().Get(ctx).Return(nil, false, errors.New("redis down"))
	fx.cache.EXPECT().Version(ctx).Return(int64(0), nil)
	fx.listingRepo.EXPECT().FindFeaturedListings(ctx).Return(rows, nil)
	fx.cache.EXPECT().Set(ctx, int64(0), rows).Return(errors.New("redis down"))

	assert.Equal(t, rows, fx.service.LoadFeatured(ctx, nil))
}

func TestListingService_LoadFeatured_StoreErrorYieldsEmpty(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx).Return(nil, false, nil)
	fx.cache.EXPECT().Version(ctx).Return(int64(0), nil)
	fx.listingRepo.EXPECT().FindFeaturedListings(ctx).Return(nil, errors.New("boom"))

	got := fx.service.LoadFeatured(ctx, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListingService_LoadFeatured_SortedByDistance(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()

	far := newFeaturedListing("Far")
	far.Location.Latitude, far.Location.Longitude = float64Ptr(-22.9068), float64Ptr(-43.1729)
	unlocated := newFeaturedListing("Unlocated")
	near := newFeaturedListing("Near")
	near.Location.Latitude, near.Location.Longitude = float64Ptr(-23.3847), float64Ptr(-45.6625)

	rows := []*entity.Listing{far, unlocated, near}
	fx.cache.EXPECT().Get(ctx).Return(rows, true, nil)

	origin := orb.Point{-45.66, -23.38}
	got := fx.service.LoadFeatured(ctx, &origin)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Near", "Far", "Unlocated"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, "Far", rows[0].Name, "input order must be preserved")
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().FindListingByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	listing, err := fx.service.GetListing(ctx, id)
	require.Error(t, err)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func validForm() *entity.ListingFormData {
	return &entity.ListingFormData{
		Name:        "  Restaurante Sabor da Roça ",
		Description: "Culinária típica da região",
		Phone:       "(12) 9876-5432",
		WhatsApp:    "5512987654321",
		Address:     "Rua Principal, 456 - Centro, Paraibuna, SP",
		Category:    "Gastronomia",
		Featured:    true,
		Photos:      []string{"https://cdn.example.com/a.jpg"},
	}
}

func TestListingService_CreateListing_Success(t *testing.T) {
	fx := createTestListingService(t, 6)
	operator := &entity.User{ID: uuid.New(), Email: "operator@example.com"}
	ctx := deliverycontext.WithUserID(context.Background(), operator.ID)
	listingID := uuid.New()

	fx.users.EXPECT().CurrentUser(ctx).Return(operator, nil)
	fx.listingRepo.EXPECT().
		CreateListing(ctx, operator.ID, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, _ uuid.UUID, listing *entity.Listing) {
			listing.ID = listingID
		}).
		Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.MatchedBy(func(event *entity.ListingEvent) bool {
			return event.Type == entity.ListingEventCreated && event.ListingID == listingID && event.ActorID == operator.ID
		})).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, listingID, listing.ID)
	assert.Equal(t, "Restaurante Sabor da Roça", listing.Name)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.True(t, listing.Featured)
	assert.Equal(t, entity.Location{Address: "Rua Principal, 456 - Centro, Paraibuna, SP"}, listing.Location)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, listing.Photos)
	assert.Equal(t, testNow, listing.CreatedAt)
}

func TestListingService_CreateListing_ValidationFailsWithoutIO(t *testing.T) {
	fx := createTestListingService(t, 6)
	form := validForm()
	form.Phone = "   "

	listing, err := fx.service.CreateListing(context.Background(), form)
	require.Error(t, err)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, entity.ErrInvalidListing)

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []entity.FieldError{{Field: "phone", Reason: "required"}}, verr.Fields)
}

func TestListingService_CreateListing_Unauthenticated(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()

	fx.users.EXPECT().CurrentUser(ctx).Return(nil, domainerrors.ErrUnauthenticated)

	listing, err := fx.service.CreateListing(ctx, validForm())
	require.Error(t, err)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestListingService_CreateListing_StoreError(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	operator := &entity.User{ID: uuid.New()}

	fx.users.EXPECT().CurrentUser(ctx).Return(operator, nil)
	fx.listingRepo.EXPECT().
		CreateListing(ctx, operator.ID, mock.AnythingOfType("*entity.Listing")).
		Return(errors.New("insert failed"))

	listing, err := fx.service.CreateListing(ctx, validForm())
	require.Error(t, err)
	assert.Nil(t, listing)
}

func TestListingService_UpdateListing_StampsClock(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	id := uuid.New()
	whatsapp := ""
	patch := &entity.ListingPatch{WhatsApp: &whatsapp}

	fx.clock.Advance(time.Hour)
	fx.listingRepo.EXPECT().UpdateListing(ctx, id, patch, testNow.Add(time.Hour)).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.MatchedBy(func(event *entity.ListingEvent) bool {
			return event.Type == entity.ListingEventUpdated && event.ListingID == id
		})).
		Return(errors.New("pubsub unavailable"))

	updatedAt, err := fx.service.UpdateListing(ctx, id, patch)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), updatedAt)
}

func TestListingService_UpdateListing_NotFound(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	id := uuid.New()
	patch := entity.StatusPatch(entity.ListingStatusPaused)

	fx.listingRepo.EXPECT().UpdateListing(ctx, id, patch, testNow).Return(repository.ErrListingNotFound)

	_, err := fx.service.UpdateListing(ctx, id, patch)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_UpdateListing_InvalidPatch(t *testing.T) {
	fx := createTestListingService(t, 6)
	name := " "

	_, err := fx.service.UpdateListing(context.Background(), uuid.New(), &entity.ListingPatch{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidListing)
}

func TestListingService_DeleteListing(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().DeleteListing(ctx, id).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))
	fx.publisher.EXPECT().PublishListingEvent(ctx, mock.AnythingOfType("*entity.ListingEvent")).Return(nil)

	require.NoError(t, fx.service.DeleteListing(ctx, id))
}

func TestListingService_DeleteListing_StoreError(t *testing.T) {
	fx := createTestListingService(t, 6)
	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().DeleteListing(ctx, id).Return(errors.New("delete failed"))

	err := fx.service.DeleteListing(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete listing")
}
