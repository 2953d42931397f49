package service

import (
	"context"

	"vitrine/internal/domain/entity"
)

// EventPublisher announces committed listing mutations to downstream consumers.
type EventPublisher interface {
	PublishListingEvent(ctx context.Context, event *entity.ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
