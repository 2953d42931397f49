package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingEventType names a listing mutation.
type ListingEventType string

const (
	ListingEventCreated ListingEventType = "listing.created"
	ListingEventUpdated ListingEventType = "listing.updated"
	ListingEventDeleted ListingEventType = "listing.deleted"
)

// ListingEvent is announced after a listing mutation has been committed.
type ListingEvent struct {
	ID         uuid.UUID        `json:"id"`
	Type       ListingEventType `json:"type"`
	ListingID  uuid.UUID        `json:"listingId"`
	ActorID    uuid.UUID        `json:"actorId"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewListingEvent stamps a fresh event id.
func NewListingEvent(eventType ListingEventType, listingID, actorID uuid.UUID, at time.Time) *ListingEvent {
	return &ListingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		ListingID:  listingID,
		ActorID:    actorID,
		OccurredAt: at,
	}
}
