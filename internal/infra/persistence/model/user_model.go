package model

import (
	"time"

	"github.com/google/uuid"
)

// OperatorModel is an account allowed into the back office.
// Deleting it drops its credentials and sessions.
type OperatorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(120);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Credentials []CredentialModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions    []SessionModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (OperatorModel) TableName() string {
	return "operators"
}
