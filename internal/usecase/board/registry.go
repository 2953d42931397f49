package board

import (
	"context"
	"log/slog"
	"sync"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Registry keeps one board per signed-in operator and drops it when the operator signs out.
type Registry struct {
	listings usecase.ListingUsecase
	logger   *slog.Logger

	mu     sync.Mutex
	boards map[uuid.UUID]*Board
}

// RegistryParams holds dependencies for Registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Lc       fx.Lifecycle
	Listings usecase.ListingUsecase
	Events   service.AuthEventBus
	Logger   *slog.Logger
}

// NewRegistry subscribes the registry to the auth event stream for the lifetime of the app.
func NewRegistry(params RegistryParams) *Registry {
	r := NewEmptyRegistry(params.Listings, params.Logger)

	var cancel context.CancelFunc
	var done chan struct{}
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan struct{})
			events := params.Events.Subscribe(ctx)

			go func() {
				defer close(done)
				r.Watch(events)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()

			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})

	return r
}

// NewEmptyRegistry returns a registry that is not subscribed to anything.
func NewEmptyRegistry(listings usecase.ListingUsecase, logger *slog.Logger) *Registry {
	return &Registry{
		listings: listings,
		logger:   logger,
		boards:   make(map[uuid.UUID]*Board),
	}
}

// ForOperator returns the operator's board, creating it on first use.
func (r *Registry) ForOperator(userID uuid.UUID) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boards[userID]
	if !ok {
		b = New(r.listings, r.logger.With(slog.String("operator", userID.String())))
		r.boards[userID] = b
	}

	return b
}

func (r *Registry) Evict(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.boards, userID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.boards)
}

// Watch evicts boards on signed-out events until events is closed.
func (r *Registry) Watch(events <-chan entity.AuthEvent) {
	for event := range events {
		if event.Type != entity.AuthEventSignedOut {
			continue
		}

		r.Evict(event.UserID)
		r.logger.Debug("Operator board evicted", slog.String("operator", event.UserID.String()))
	}
}
