package postgres

import (
	"context"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/errors"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}

	authM := &model.CredentialModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}
	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("authentication method already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}
	auth.CreatedAt = authM.CreatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	var authM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find authentication")
	}

	return &entity.Authentication{
		ID:             authM.ID,
		UserID:         authM.UserID,
		Provider:       authM.Provider,
		ProviderUserID: authM.ProviderUserID,
		PasswordHash:   authM.PasswordHash,
		CreatedAt:      authM.CreatedAt,
	}, nil
}
