package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account allowed to manage listings.
type User struct {
	ID        uuid.UUID // Stable account id, also the owner id of created listings.
	Email     string    // Login email, unique.
	Name      string    // Display name.
	CreatedAt time.Time
	UpdatedAt time.Time
}
