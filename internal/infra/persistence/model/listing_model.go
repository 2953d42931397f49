package model

import (
	"context"
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocationColumn is the JSON document stored in listings.location.
type LocationColumn struct {
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GoogleMapsURL string   `json:"googleMapsUrl,omitempty"`
}

// NullLocation is a nullable jsonb location. datatypes.JSONType rejects SQL NULL on scan.
type NullLocation struct {
	datatypes.JSONType[LocationColumn]
	Valid bool
}

// NewNullLocation wraps a present location.
func NewNullLocation(loc LocationColumn) NullLocation {
	return NullLocation{JSONType: datatypes.NewJSONType(loc), Valid: true}
}

func (n *NullLocation) Scan(value any) error {
	if value == nil {
		n.JSONType, n.Valid = datatypes.JSONType[LocationColumn]{}, false

		return nil
	}
	n.Valid = true

	return n.JSONType.Scan(value)
}

func (n NullLocation) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.JSONType.Value()
}

// GormValue shadows the embedded JSONType one so an absent location is written as NULL.
func (n NullLocation) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	if !n.Valid {
		return gorm.Expr("NULL")
	}

	return n.JSONType.GormValue(ctx, db)
}

// ListingModel mirrors the 'listings' table.
type ListingModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text;not null"`
	Photos      pq.StringArray `gorm:"type:text[]"`
	Phone       string         `gorm:"type:varchar(50);not null"`
	WhatsApp    string         `gorm:"column:whatsapp;type:varchar(50)"`
	Instagram   string         `gorm:"type:varchar(255)"`
	Location    NullLocation   `gorm:"type:jsonb"`
	Status      string         `gorm:"type:varchar(20);not null;default:active;check:chk_listings_status,status IN ('active','paused','inactive')"`
	Category    string         `gorm:"type:varchar(50);not null;index"`
	Featured    *bool          `gorm:"default:false"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
