// Package authevents is the in-process auth-state-changed stream.
package authevents

import (
	"context"
	"log/slog"
	"sync"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"
)

const subscriberBuffer = 16

// Bus fans every published event out to all live subscribers.
// A subscriber whose buffer is full misses the event.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]chan entity.AuthEvent
	nextID      int
	logger      *slog.Logger
}

// NewBus is the fx constructor of the auth event bus.
func NewBus(logger *slog.Logger) service.AuthEventBus {
	return newBus(logger)
}

func newBus(logger *slog.Logger) *Bus {
	return &Bus{
		subscribers: make(map[int]chan entity.AuthEvent),
		logger:      logger,
	}
}

func (b *Bus) Publish(event entity.AuthEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Auth event dropped for slow subscriber",
				slog.Int("subscriber", id),
				slog.String("type", string(event.Type)))
		}
	}
}

func (b *Bus) Subscribe(ctx context.Context) <-chan entity.AuthEvent {
	ch := make(chan entity.AuthEvent, subscriberBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()

		close(ch)
	}()

	return ch
}
