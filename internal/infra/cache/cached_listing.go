package cache

import (
	"time"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// cachedListing is the JSON shape of a listing inside the cache.
type cachedListing struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Photos        []string  `json:"photos"`
	Phone         string    `json:"phone"`
	WhatsApp      string    `json:"whatsapp,omitempty"`
	Instagram     string    `json:"instagram,omitempty"`
	Address       string    `json:"address"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	GoogleMapsURL string    `json:"googleMapsUrl,omitempty"`
	Status        string    `json:"status"`
	Category      string    `json:"category"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func fromEntity(l *entity.Listing) cachedListing {
	return cachedListing{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		Photos:        l.Photos,
		Phone:         l.Phone,
		WhatsApp:      l.WhatsApp,
		Instagram:     l.Instagram,
		Address:       l.Location.Address,
		Latitude:      l.Location.Latitude,
		Longitude:     l.Location.Longitude,
		GoogleMapsURL: l.Location.GoogleMapsURL,
		Status:        string(l.Status),
		Category:      l.Category,
		Featured:      l.Featured,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func (c cachedListing) toEntity() *entity.Listing {
	photos := c.Photos
	if photos == nil {
		photos = []string{}
	}

	return &entity.Listing{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Photos:      photos,
		Phone:       c.Phone,
		WhatsApp:    c.WhatsApp,
		Instagram:   c.Instagram,
		Location: entity.Location{
			Address:       c.Address,
			Latitude:      c.Latitude,
			Longitude:     c.Longitude,
			GoogleMapsURL: c.GoogleMapsURL,
		},
		Status:    entity.ListingStatus(c.Status),
		Category:  c.Category,
		Featured:  c.Featured,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
