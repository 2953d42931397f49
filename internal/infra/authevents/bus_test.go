package authevents

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan entity.AuthEvent) entity.AuthEvent {
	t.Helper()

	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed")

		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for auth event")

		return entity.AuthEvent{}
	}
}

func TestBus_FanOut(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(slog.New(slog.DiscardHandler))
	first := bus.Subscribe(ctx)
	second := bus.Subscribe(ctx)

	event := entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: uuid.New()}
	bus.Publish(event)

	assert.Equal(t, event, receive(t, first))
	assert.Equal(t, event, receive(t, second))
}

func TestBus_UnsubscribeOnCancel(t *testing.T) {
	bus := newBus(slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	ch := bus.Subscribe(ctx)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}

	assert.Eventually(t, func() bool {
		bus.mu.RLock()
		defer bus.mu.RUnlock()

		return len(bus.subscribers) == 0
	}, time.Second, 10*time.Millisecond)

	bus.Publish(entity.AuthEvent{Type: entity.AuthEventSignedIn})
}

func TestBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus(slog.New(slog.DiscardHandler))
	ch := bus.Subscribe(ctx)

	for range subscriberBuffer + 5 {
		bus.Publish(entity.AuthEvent{Type: entity.AuthEventSignedIn})
	}

	assert.Len(t, ch, subscriberBuffer)
}
