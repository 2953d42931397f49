package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishListingEvent(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := entity.NewListingEvent(entity.ListingEventCreated, uuid.New(), uuid.New(),
		time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC))
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	require.NoError(t, publisher.PublishListingEvent(ctx, event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, "2025-04-01T12:00:00Z", received.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"event_type": "listing.created",
		"listing_id": event.ListingID.String(),
		"request_id": "req-42",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.ListingEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ListingID, decoded.ListingID)
	assert.Equal(t, entity.ListingEventCreated, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishListingEvent(context.Background(),
		entity.NewListingEvent(entity.ListingEventDeleted, uuid.New(), uuid.Nil, time.Now()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.NoError(t, publisher.Close())
}
