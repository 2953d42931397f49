// Package entity contains the core business objects of vitrine.
package entity

import (
	"fmt"
	"slices"
	"time"

	"vitrine/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListingStatus is the publication state of a listing.
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusPaused   ListingStatus = "paused"
	ListingStatusInactive ListingStatus = "inactive"
)

// ErrUnknownListingStatus is returned when a stored or submitted status is not one of the known values.
var ErrUnknownListingStatus = errors.New("unknown listing status")

// ParseListingStatus validates a raw status value.
func ParseListingStatus(raw string) (ListingStatus, error) {
	switch status := ListingStatus(raw); status {
	case ListingStatusActive, ListingStatusPaused, ListingStatusInactive:
		return status, nil
	default:
		return "", errors.Wrapf(ErrUnknownListingStatus, "%q", raw)
	}
}

// Toggled returns the status an operator switches to from s:
// active pauses, every other status reactivates.
func (s ListingStatus) Toggled() ListingStatus {
	if s == ListingStatusActive {
		return ListingStatusPaused
	}

	return ListingStatusActive
}

// Categories is the fixed catalogue every listing is filed under, in display order.
var Categories = []string{
	"Hospedagem",
	"Gastronomia",
	"Atração Natural",
	"Turismo Rural",
	"Aventura",
	"Cultura",
}

// IsKnownCategory reports whether category belongs to Categories (case-sensitive).
func IsKnownCategory(category string) bool {
	return slices.Contains(Categories, category)
}

// Location is where a listing can be found.
type Location struct {
	Address       string   // Human-readable address, always present.
	Latitude      *float64 // Optional geographic latitude.
	Longitude     *float64 // Optional geographic longitude.
	GoogleMapsURL string   // Optional explicit map link chosen by the operator.
}

// Point returns the coordinates as an orb point (longitude, latitude).
// ok is false unless both coordinates are set and non-zero.
func (l Location) Point() (orb.Point, bool) {
	if l.Latitude == nil || l.Longitude == nil || *l.Latitude == 0 || *l.Longitude == 0 {
		return orb.Point{}, false
	}

	return orb.Point{*l.Longitude, *l.Latitude}, true
}

// Listing is an advertised local business or tourist attraction.
type Listing struct {
	ID          uuid.UUID     // Assigned by the store on creation, never reused.
	Name        string        // Display name.
	Description string        // Free-text description.
	Photos      []string      // Public photo URLs in display order.
	Phone       string        // Free-form phone number.
	WhatsApp    string        // Optional WhatsApp number, falls back to Phone for deep links.
	Instagram   string        // Optional Instagram handle or profile URL.
	Location    Location      // Where the listing is.
	Status      ListingStatus // Publication state.
	Category    string        // One of Categories.
	Featured    bool          // Selected for the highlight read path.
	CreatedAt   time.Time     // Set once on creation.
	UpdatedAt   time.Time     // Refreshed on every mutation.
}

// String identifies the listing in logs.
func (l *Listing) String() string {
	return fmt.Sprintf("listing %s (%s)", l.ID, l.Name)
}

// Clone returns a deep copy so callers can merge patches without aliasing shared state.
func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}

	cloned := *l
	cloned.Photos = slices.Clone(l.Photos)
	if l.Location.Latitude != nil {
		lat := *l.Location.Latitude
		cloned.Location.Latitude = &lat
	}
	if l.Location.Longitude != nil {
		lng := *l.Location.Longitude
		cloned.Location.Longitude = &lng
	}

	return &cloned
}

// IsFeaturedVisible reports whether the listing qualifies for the featured read path.
func (l *Listing) IsFeaturedVisible() bool {
	return l.Featured && l.Status == ListingStatusActive
}
