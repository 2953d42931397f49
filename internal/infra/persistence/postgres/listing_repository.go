package postgres

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/errors"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listingRepository implements repository.ListingRepository with plain GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) CountListings(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ListingModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count listings")
	}

	return count, nil
}

func (repo *listingRepository) FindListingsPage(ctx context.Context, offset, limit int) ([]*entity.Listing, error) {
	var rows []*model.ListingModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listings page")
	}

	return toListingsDomain(rows)
}

func (repo *listingRepository) FindFeaturedListings(ctx context.Context) ([]*entity.Listing, error) {
	var rows []*model.ListingModel
	err := repo.db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, string(entity.ListingStatusActive)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find featured listings")
	}

	return toListingsDomain(rows)
}

func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var row model.ListingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listing by id")
	}

	return toListingDomain(&row)
}

func (repo *listingRepository) CreateListing(ctx context.Context, ownerID uuid.UUID, listing *entity.Listing) error {
	if listing.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate listing id")
		}
		listing.ID = id
	}

	row := fromListingDomain(ownerID, listing)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("listing violates a table constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthenticated.WithDetails("unknown owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.CreatedAt = row.CreatedAt
	listing.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *listingRepository) UpdateListing(ctx context.Context, id uuid.UUID, patch *entity.ListingPatch, updatedAt time.Time) error {
	columns := patchColumns(patch)
	columns["updated_at"] = updatedAt

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("listing violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ListingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete listing")
	}

	return nil
}
