package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel is one way an operator can sign in: an email password hash
// or a linked identity provider subject.
type CredentialModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_operator_credentials_subject"`
	ProviderUserID string    `gorm:"column:provider_user_id;type:varchar(255);not null;uniqueIndex:uq_operator_credentials_subject"`
	PasswordHash   string    `gorm:"type:varchar(72)"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (CredentialModel) TableName() string {
	return "operator_credentials"
}

// SessionModel stores the digest of an issued refresh token, never the token.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SessionModel) TableName() string {
	return "operator_sessions"
}
