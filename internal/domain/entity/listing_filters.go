package entity

import "strings"

// ListingFilters narrows a page of listings. Zero values impose no constraint.
type ListingFilters struct {
	Search       string        // Case-insensitive substring of name or description.
	Category     string        // Exact category.
	Status       ListingStatus // Exact status.
	Location     string        // Case-insensitive substring of the address.
	FeaturedOnly bool          // Only featured listings.
}

// IsEmpty reports whether no dimension is constrained.
func (f ListingFilters) IsEmpty() bool {
	return f == ListingFilters{}
}

// Matches reports whether listing satisfies every active filter.
func (f ListingFilters) Matches(listing *Listing) bool {
	if listing == nil {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(listing.Name), needle) &&
			!strings.Contains(strings.ToLower(listing.Description), needle) {
			return false
		}
	}

	if f.Category != "" && listing.Category != f.Category {
		return false
	}

	if f.Status != "" && listing.Status != f.Status {
		return false
	}

	if f.Location != "" &&
		!strings.Contains(strings.ToLower(listing.Location.Address), strings.ToLower(f.Location)) {
		return false
	}

	if f.FeaturedOnly && !listing.Featured {
		return false
	}

	return true
}

// FilterListings returns the listings matching f, keeping their order.
// The input slice is never modified.
func FilterListings(listings []*Listing, f ListingFilters) []*Listing {
	filtered := make([]*Listing, 0, len(listings))
	for _, listing := range listings {
		if f.Matches(listing) {
			filtered = append(filtered, listing)
		}
	}

	return filtered
}
