package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthEventType tells what happened to an operator session.
type AuthEventType string

const (
	AuthEventSignedIn  AuthEventType = "signed_in"
	AuthEventSignedOut AuthEventType = "signed_out"
)

// AuthEvent is one entry of the auth-state-changed stream.
type AuthEvent struct {
	Type       AuthEventType
	UserID     uuid.UUID
	OccurredAt time.Time
}
