package entity

import (
	"slices"
	"strings"
	"time"

	"vitrine/internal/errors"
)

// ErrInvalidListing is the root of every listing validation failure.
var ErrInvalidListing = errors.New("invalid listing")

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every field rejected in one submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}

	return "invalid listing: " + strings.Join(parts, "; ")
}

// Is makes every ValidationError match ErrInvalidListing.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidListing
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

// ListingFormData is what an operator submits to create a listing.
// Photos holds public URLs of files uploaded beforehand.
type ListingFormData struct {
	Name        string
	Description string
	Phone       string
	WhatsApp    string
	Instagram   string
	Address     string
	Category    string
	Featured    bool
	Photos      []string
}

// Normalize trims surrounding whitespace from every text field.
func (f *ListingFormData) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Phone = strings.TrimSpace(f.Phone)
	f.WhatsApp = strings.TrimSpace(f.WhatsApp)
	f.Instagram = strings.TrimSpace(f.Instagram)
	f.Address = strings.TrimSpace(f.Address)
	f.Category = strings.TrimSpace(f.Category)
}

// Validate normalizes the form and checks required fields.
// A *ValidationError is returned when anything is rejected.
func (f *ListingFormData) Validate() error {
	f.Normalize()

	verr := &ValidationError{}
	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"description", f.Description},
		{"phone", f.Phone},
		{"address", f.Address},
		{"category", f.Category},
	}
	for _, r := range required {
		if r.value == "" {
			verr.add(r.field, "required")
		}
	}

	if f.Category != "" && !IsKnownCategory(f.Category) {
		verr.add("category", "unknown category")
	}

	return verr.orNil()
}

// NewListing builds the record that gets inserted for a validated form.
func (f *ListingFormData) NewListing(now time.Time) *Listing {
	photos := slices.Clone(f.Photos)
	if photos == nil {
		photos = []string{}
	}

	return &Listing{
		Name:        f.Name,
		Description: f.Description,
		Photos:      photos,
		Phone:       f.Phone,
		WhatsApp:    f.WhatsApp,
		Instagram:   f.Instagram,
		Location:    Location{Address: f.Address},
		Status:      ListingStatusActive,
		Category:    f.Category,
		Featured:    f.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ListingPatch is a partial update. A nil field is left untouched;
// a non-nil field is written even when it holds the zero value.
type ListingPatch struct {
	Name        *string
	Description *string
	Photos      []string // nil leaves photos unchanged, an empty slice clears them.
	Phone       *string
	WhatsApp    *string
	Instagram   *string
	Location    *Location
	Status      *ListingStatus
	Category    *string
	Featured    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *ListingPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Photos == nil &&
		p.Phone == nil && p.WhatsApp == nil && p.Instagram == nil &&
		p.Location == nil && p.Status == nil && p.Category == nil && p.Featured == nil
}

// Normalize trims surrounding whitespace from every present text field.
// Trimmed values are stored in fresh pointers so caller strings stay intact.
func (p *ListingPatch) Normalize() {
	for _, field := range []**string{
		&p.Name, &p.Description, &p.Phone, &p.WhatsApp, &p.Instagram, &p.Category,
	} {
		if *field != nil {
			trimmed := strings.TrimSpace(**field)
			*field = &trimmed
		}
	}
	if p.Location != nil {
		loc := *p.Location
		loc.Address = strings.TrimSpace(loc.Address)
		p.Location = &loc
	}
}

// Validate normalizes the patch and rejects present fields that would
// break the listing invariants.
func (p *ListingPatch) Validate() error {
	p.Normalize()

	verr := &ValidationError{}

	checkRequired := func(field string, value *string) {
		if value != nil && *value == "" {
			verr.add(field, "required")
		}
	}
	checkRequired("name", p.Name)
	checkRequired("description", p.Description)
	checkRequired("phone", p.Phone)
	checkRequired("category", p.Category)

	if p.Category != nil && *p.Category != "" && !IsKnownCategory(*p.Category) {
		verr.add("category", "unknown category")
	}
	if p.Location != nil && p.Location.Address == "" {
		verr.add("location.address", "required")
	}
	if p.Status != nil {
		if _, err := ParseListingStatus(string(*p.Status)); err != nil {
			verr.add("status", "unknown status")
		}
	}

	return verr.orNil()
}

// Apply merges the present fields into listing and stamps updatedAt.
func (p *ListingPatch) Apply(listing *Listing, updatedAt time.Time) {
	if p.Name != nil {
		listing.Name = *p.Name
	}
	if p.Description != nil {
		listing.Description = *p.Description
	}
	if p.Photos != nil {
		listing.Photos = slices.Clone(p.Photos)
	}
	if p.Phone != nil {
		listing.Phone = *p.Phone
	}
	if p.WhatsApp != nil {
		listing.WhatsApp = *p.WhatsApp
	}
	if p.Instagram != nil {
		listing.Instagram = *p.Instagram
	}
	if p.Location != nil {
		listing.Location = *p.Location
	}
	if p.Status != nil {
		listing.Status = *p.Status
	}
	if p.Category != nil {
		listing.Category = *p.Category
	}
	if p.Featured != nil {
		listing.Featured = *p.Featured
	}
	listing.UpdatedAt = updatedAt
}

// StatusPatch returns a patch that only changes the status.
func StatusPatch(status ListingStatus) *ListingPatch {
	return &ListingPatch{Status: &status}
}
