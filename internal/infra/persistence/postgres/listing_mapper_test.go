package postgres

import (
	"testing"
	"time"

	"vitrine/internal/domain/entity"
	"vitrine/internal/errors"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToListingDomain_DefaultsForMissingColumns(t *testing.T) {
	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	row := &model.ListingModel{
		ID:          uuid.New(),
		Name:        "Pousada Sol",
		Description: "Quartos com vista",
		Phone:       "1133334444",
		Status:      "paused",
		Category:    "Hospedagem",
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	listing, err := toListingDomain(row)
	require.NoError(t, err)

	assert.Equal(t, []string{}, listing.Photos)
	assert.Equal(t, entity.Location{}, listing.Location)
	assert.False(t, listing.Featured)
	assert.Equal(t, entity.ListingStatusPaused, listing.Status)
	assert.Equal(t, created, listing.CreatedAt)
}

func TestToListingDomain_CopiesPresentColumns(t *testing.T) {
	lat, lng := -22.9, -43.2
	featured := true
	row := &model.ListingModel{
		ID:       uuid.New(),
		Photos:   pq.StringArray{"https://cdn/a.jpg", "https://cdn/b.jpg"},
		Location: model.NewNullLocation(model.LocationColumn{Address: "Centro", Latitude: &lat, Longitude: &lng}),
		Status:   "active",
		Featured: &featured,
	}

	listing, err := toListingDomain(row)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, listing.Photos)
	assert.Equal(t, "Centro", listing.Location.Address)
	require.NotNil(t, listing.Location.Latitude)
	assert.InDelta(t, lat, *listing.Location.Latitude, 1e-9)
	assert.True(t, listing.Featured)
}

func TestToListingDomain_RejectsUnknownStatus(t *testing.T) {
	_, err := toListingDomain(&model.ListingModel{ID: uuid.New(), Status: "archived"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrUnknownListingStatus))
}

func TestToListingsDomain_StopsAtFirstBadRow(t *testing.T) {
	rows := []*model.ListingModel{
		{ID: uuid.New(), Status: "active"},
		{ID: uuid.New(), Status: ""},
	}

	_, err := toListingsDomain(rows)
	assert.Error(t, err)
}

func TestPatchColumns_OnlyPresentFields(t *testing.T) {
	empty := ""
	off := false
	paused := entity.ListingStatusPaused

	columns := patchColumns(&entity.ListingPatch{
		Instagram: &empty,
		Featured:  &off,
		Status:    &paused,
		Photos:    []string{},
	})

	assert.Equal(t, map[string]any{
		"instagram": "",
		"featured":  false,
		"status":    "paused",
		"photos":    pq.StringArray{},
	}, columns)
	assert.Empty(t, patchColumns(&entity.ListingPatch{}))
}

func TestFromListingDomain(t *testing.T) {
	owner := uuid.New()
	listing := &entity.Listing{
		Name:     "Cachoeira",
		Status:   entity.ListingStatusActive,
		Location: entity.Location{Address: "Estrada km 4"},
		Featured: true,
	}

	row := fromListingDomain(owner, listing)

	assert.Equal(t, owner, row.OwnerID)
	assert.Equal(t, "active", row.Status)
	assert.True(t, row.Location.Valid)
	assert.Equal(t, "Estrada km 4", row.Location.Data().Address)
	require.NotNil(t, row.Featured)
	assert.True(t, *row.Featured)
}
