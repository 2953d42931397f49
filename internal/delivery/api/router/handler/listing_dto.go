package handler

import (
	"math"
	"strconv"
	"strings"
	"time"

	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase/board"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationDTO is the wire form of entity.Location.
type LocationDTO struct {
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GoogleMapsURL string   `json:"googleMapsUrl,omitempty"`
}

// ContactLinksDTO carries the deep links of a listing; empty channels are omitted.
type ContactLinksDTO struct {
	Phone     string `json:"phone,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Maps      string `json:"maps,omitempty"`
}

type ListingResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Photos      []string        `json:"photos"`
	Phone       string          `json:"phone"`
	WhatsApp    string          `json:"whatsapp"`
	Instagram   string          `json:"instagram"`
	Location    LocationDTO     `json:"location"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Links       ContactLinksDTO `json:"links"`
}

func toListingResponse(l *entity.Listing) ListingResponse {
	photos := l.Photos
	if photos == nil {
		photos = []string{}
	}
	links := entity.ContactLinksFor(l)

	return ListingResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Photos:      photos,
		Phone:       l.Phone,
		WhatsApp:    l.WhatsApp,
		Instagram:   l.Instagram,
		Location: LocationDTO{
			Address:       l.Location.Address,
			Latitude:      l.Location.Latitude,
			Longitude:     l.Location.Longitude,
			GoogleMapsURL: l.Location.GoogleMapsURL,
		},
		Status:    string(l.Status),
		Category:  l.Category,
		Featured:  l.Featured,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		Links: ContactLinksDTO{
			Phone:     links.Phone,
			WhatsApp:  links.WhatsApp,
			Instagram: links.Instagram,
			Maps:      links.Maps,
		},
	}
}

func toListingResponses(listings []*entity.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}

	return out
}

// ListingQuery is the query string of the paged listing endpoints.
type ListingQuery struct {
	Page         int    `query:"page" json:"page" validate:"min=0"`
	Search       string `query:"search" json:"search"`
	Category     string `query:"category" json:"category"`
	Status       string `query:"status" json:"status" validate:"omitempty,oneof=active paused inactive"`
	Location     string `query:"location" json:"location"`
	FeaturedOnly bool   `query:"featured" json:"featured"`
}

func (q *ListingQuery) filters() entity.ListingFilters {
	return entity.ListingFilters{
		Search:       strings.TrimSpace(q.Search),
		Category:     q.Category,
		Status:       entity.ListingStatus(q.Status),
		Location:     strings.TrimSpace(q.Location),
		FeaturedOnly: q.FeaturedOnly,
	}
}

type FiltersDTO struct {
	Search       string `json:"search,omitempty"`
	Category     string `json:"category,omitempty"`
	Status       string `json:"status,omitempty"`
	Location     string `json:"location,omitempty"`
	FeaturedOnly bool   `json:"featuredOnly,omitempty"`
}

type PaginationDTO struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Window      []int `json:"window"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// BoardResponse is the rendered state of a listing board.
type BoardResponse struct {
	Listings      []ListingResponse    `json:"listings"`
	Filters       FiltersDTO           `json:"filters"`
	Pagination    PaginationDTO        `json:"pagination"`
	Loading       bool                 `json:"loading"`
	Notifications []board.Notification `json:"notifications,omitempty"`
}

func toBoardResponse(s board.Snapshot, notifications []board.Notification) BoardResponse {
	window := s.PageWindow
	if window == nil {
		window = []int{}
	}

	return BoardResponse{
		Listings: toListingResponses(s.Listings),
		Filters: FiltersDTO{
			Search:       s.Filters.Search,
			Category:     s.Filters.Category,
			Status:       string(s.Filters.Status),
			Location:     s.Filters.Location,
			FeaturedOnly: s.Filters.FeaturedOnly,
		},
		Pagination: PaginationDTO{
			Page:        s.Page,
			PageSize:    s.PageSize,
			TotalPages:  s.TotalPages,
			TotalCount:  s.TotalCount,
			Window:      window,
			HasPrevious: s.HasPrevious,
			HasNext:     s.HasNext,
		},
		Loading:       s.Loading,
		Notifications: notifications,
	}
}

// CreateListingRequest is the body of POST /admin/listings.
type CreateListingRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	WhatsApp    string   `json:"whatsapp"`
	Instagram   string   `json:"instagram"`
	Address     string   `json:"address"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
	Photos      []string `json:"photos" validate:"dive,url"`
}

func (r *CreateListingRequest) toForm() *entity.ListingFormData {
	return &entity.ListingFormData{
		Name:        r.Name,
		Description: r.Description,
		Phone:       r.Phone,
		WhatsApp:    r.WhatsApp,
		Instagram:   r.Instagram,
		Address:     r.Address,
		Category:    r.Category,
		Featured:    r.Featured,
		Photos:      r.Photos,
	}
}

// UpdateListingRequest is the body of PATCH /admin/listings/:id.
// An absent key leaves the field unchanged; a present key is written even when empty.
type UpdateListingRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Photos      []string     `json:"photos" validate:"omitempty,dive,url"`
	Phone       *string      `json:"phone"`
	WhatsApp    *string      `json:"whatsapp"`
	Instagram   *string      `json:"instagram"`
	Location    *LocationDTO `json:"location"`
	Status      *string      `json:"status"`
	Category    *string      `json:"category"`
	Featured    *bool        `json:"featured"`
}

func (r *UpdateListingRequest) toPatch() *entity.ListingPatch {
	patch := &entity.ListingPatch{
		Name:        r.Name,
		Description: r.Description,
		Photos:      r.Photos,
		Phone:       r.Phone,
		WhatsApp:    r.WhatsApp,
		Instagram:   r.Instagram,
		Category:    r.Category,
		Featured:    r.Featured,
	}
	if r.Location != nil {
		patch.Location = &entity.Location{
			Address:       r.Location.Address,
			Latitude:      r.Location.Latitude,
			Longitude:     r.Location.Longitude,
			GoogleMapsURL: r.Location.GoogleMapsURL,
		}
	}
	if r.Status != nil {
		status := entity.ListingStatus(*r.Status)
		patch.Status = &status
	}

	return patch
}

// parseNear reads "lat,lng" into a point. An empty value yields nil.
func parseNear(raw string) (*orb.Point, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	latRaw, lngRaw, found := strings.Cut(raw, ",")
	if !found {
		return nil, strconv.ErrSyntax
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return nil, strconv.ErrSyntax
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, strconv.ErrRange
	}

	return &orb.Point{lng, lat}, nil
}
