package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/errors"
)

func validForm() ListingFormData {
	return ListingFormData{
		Name:        "  Pousada Sol ",
		Description: "Quartos com vista",
		Phone:       "(11) 99999-0000",
		Address:     "Rua das Flores, 10",
		Category:    "Hospedagem",
		Featured:    true,
		Photos:      []string{"https://cdn/1.jpg"},
	}
}

func TestListingFormData_Validate(t *testing.T) {
	t.Run("valid form is trimmed", func(t *testing.T) {
		form := validForm()
		require.NoError(t, form.Validate())
		assert.Equal(t, "Pousada Sol", form.Name)
	})

	t.Run("whitespace-only required fields are rejected", func(t *testing.T) {
		form := validForm()
		form.Name = "   "
		form.Address = ""

		err := form.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidListing))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []FieldError{
			{Field: "name", Reason: "required"},
			{Field: "address", Reason: "required"},
		}, verr.Fields)
	})

	t.Run("unknown category", func(t *testing.T) {
		form := validForm()
		form.Category = "Compras"

		var verr *ValidationError
		require.True(t, errors.As(form.Validate(), &verr))
		assert.Equal(t, "category", verr.Fields[0].Field)
	})
}

func TestListingFormData_NewListing(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	form := validForm()
	form.Photos = nil
	require.NoError(t, form.Validate())

	listing := form.NewListing(now)

	assert.Equal(t, ListingStatusActive, listing.Status)
	assert.Equal(t, Location{Address: "Rua das Flores, 10"}, listing.Location)
	assert.Equal(t, []string{}, listing.Photos)
	assert.True(t, listing.Featured)
	assert.Equal(t, now, listing.CreatedAt)
	assert.Equal(t, now, listing.UpdatedAt)
}

func TestListingPatch(t *testing.T) {
	empty := ""
	off := false
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	listing := &Listing{
		Name:      "Pousada Sol",
		WhatsApp:  "119999",
		Instagram: "@sol",
		Photos:    []string{"a"},
		Featured:  true,
		Status:    ListingStatusActive,
	}

	patch := &ListingPatch{WhatsApp: &empty, Featured: &off, Photos: []string{}}
	require.False(t, patch.IsEmpty())
	require.NoError(t, patch.Validate())

	patch.Apply(listing, now)

	assert.Equal(t, "Pousada Sol", listing.Name)
	assert.Empty(t, listing.WhatsApp)
	assert.Equal(t, "@sol", listing.Instagram)
	assert.False(t, listing.Featured)
	assert.Equal(t, []string{}, listing.Photos)
	assert.Equal(t, now, listing.UpdatedAt)
}

func TestListingPatch_Validate(t *testing.T) {
	blank := " "
	bogus := ListingStatus("archived")

	assert.True(t, (&ListingPatch{}).IsEmpty())
	assert.Error(t, (&ListingPatch{Name: &blank}).Validate())
	assert.Error(t, (&ListingPatch{Status: &bogus}).Validate())
	assert.Error(t, (&ListingPatch{Location: &Location{}}).Validate())
	assert.NoError(t, StatusPatch(ListingStatusPaused).Validate())
}

func TestListingPatch_ValidateTrimsPresentFields(t *testing.T) {
	category := " Hospedagem "
	name := "  Pousada  "
	phone := " (11) 4000-0000\t"
	patch := &ListingPatch{
		Category: &category,
		Name:     &name,
		Phone:    &phone,
		Location: &Location{Address: "  Rua B, 2 "},
	}
	require.NoError(t, patch.Validate())

	listing := &Listing{Category: "Gastronomia", Status: ListingStatusActive}
	patch.Apply(listing, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Hospedagem", listing.Category)
	assert.True(t, IsKnownCategory(listing.Category))
	assert.Equal(t, "Pousada", listing.Name)
	assert.Equal(t, "(11) 4000-0000", listing.Phone)
	assert.Equal(t, "Rua B, 2", listing.Location.Address)
	assert.Len(t, FilterListings([]*Listing{listing}, ListingFilters{Category: "Hospedagem"}), 1)

	assert.Equal(t, " Hospedagem ", category, "caller strings are left untouched")
}
