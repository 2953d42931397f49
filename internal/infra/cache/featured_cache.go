// Package cache keeps the featured listings query result in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/lifecycle"
	"vitrine/internal/domain/service"
	"vitrine/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	featuredKey        = "vitrine:listings:featured"
	generationKey      = "vitrine:listings:featured:generation"
	defaultFeaturedTTL = 5 * time.Minute
)

// errStaleGeneration aborts a write whose source read predates an invalidation.
var errStaleGeneration = errors.New("featured cache generation moved")

// Params defines the parameters required for the featured cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewFeaturedCache returns a Redis-backed cache when redis.addr is set and a no-op cache otherwise.
func NewFeaturedCache(params Params) service.FeaturedCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, featured listings are not cached")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				// The cache is optional; reads fall through to the store.
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	ttl := defaultFeaturedTTL
	if params.Config.Listings != nil && params.Config.Listings.FeaturedCacheTTL > 0 {
		ttl = params.Config.Listings.FeaturedCacheTTL
	}

	return NewRedisFeaturedCache(client, ttl)
}

// RedisFeaturedCache stores the featured listings as one JSON document.
type RedisFeaturedCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisFeaturedCache(client redis.UniversalClient, ttl time.Duration) *RedisFeaturedCache {
	return &RedisFeaturedCache{client: client, ttl: ttl}
}

func (c *RedisFeaturedCache) Get(ctx context.Context) ([]*entity.Listing, bool, error) {
	data, err := c.client.Get(ctx, featuredKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read featured cache")
	}

	var docs []cachedListing
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode featured cache")
	}

	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, doc.toEntity())
	}

	return listings, true, nil
}

func (c *RedisFeaturedCache) Version(ctx context.Context) (int64, error) {
	return generation(ctx, c.client)
}

// Set writes under WATCH on the generation key, so an Invalidate racing the
// store read makes the write a no-op instead of restoring stale listings.
func (c *RedisFeaturedCache) Set(ctx context.Context, version int64, listings []*entity.Listing) error {
	docs := make([]cachedListing, 0, len(listings))
	for _, listing := range listings {
		docs = append(docs, fromEntity(listing))
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return errors.Wrap(err, "failed to encode featured cache")
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, featuredKey, data, c.ttl)

			return nil
		})

		return err
	}, generationKey)
	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}

	return errors.Wrap(err, "failed to write featured cache")
}

func (c *RedisFeaturedCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, featuredKey)

		return nil
	})

	return errors.Wrap(err, "failed to invalidate featured cache")
}

// generation reads the generation counter; a missing key is generation 0.
func generation(ctx context.Context, getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}) (int64, error) {
	n, err := getter.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read featured cache generation")
	}

	return n, nil
}

type noopCache struct{}

func (noopCache) Get(context.Context) ([]*entity.Listing, bool, error) { return nil, false, nil }
func (noopCache) Version(context.Context) (int64, error)               { return 0, nil }
func (noopCache) Set(context.Context, int64, []*entity.Listing) error  { return nil }
func (noopCache) Invalidate(context.Context) error                     { return nil }
