// Package delivery holds the inbound adapters of vitrine.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application.
type Delivery interface {
	// Serve blocks until the adapter stops. A graceful shutdown is not an error.
	Serve(ctx context.Context) error
}
