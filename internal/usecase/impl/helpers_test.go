package impl

import (
	"io"
	"log/slog"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(pageSize int) *config.Config {
	return &config.Config{
		Listings: &config.ListingsConfig{PageSize: pageSize},
		Storage:  &config.StorageConfig{MaxPhotoSize: 1 << 10},
	}
}

func newTestListing(name string) *entity.Listing {
	return &entity.Listing{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Photos:      []string{},
		Phone:       "(12) 3456-7890",
		Location:    entity.Location{Address: "Rua Principal, 456 - Paraibuna, SP"},
		Status:      entity.ListingStatusActive,
		Category:    "Gastronomia",
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
