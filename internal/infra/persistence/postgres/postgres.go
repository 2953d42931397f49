package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/lifecycle"
	"vitrine/internal/errors"
	"vitrine/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the listing database. On start it pings, optionally migrates the
// listing and account tables, and starts sampling pool contention.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{db: sqlDB, logger: params.Logger, done: make(chan struct{})}
	autoMigrate := params.Config.Listings != nil && params.Config.Listings.AutoMigrate

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if autoMigrate {
				if err := migrate(ctx, db, params.Logger); err != nil {
					return err
				}
			}

			go monitor.run(poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			close(monitor.done)

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate listing schema")
	}
	logger.Info("Listing schema migrated", slog.Int("tables", len(models)))

	return nil
}

// poolMonitor logs when requests had to wait for a pooled connection.
type poolMonitor struct {
	db     *sql.DB
	logger *slog.Logger
	done   chan struct{}
}

func (m *poolMonitor) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := m.db.Stats()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			now := m.db.Stats()
			m.report(last, now)
			last = now
		}
	}
}

func (m *poolMonitor) report(before, after sql.DBStats) {
	waits := after.WaitCount - before.WaitCount
	if waits <= 0 {
		return
	}

	waited := after.WaitDuration - before.WaitDuration
	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "Listing store waited for connections",
		slog.Int64("waits", waits),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", after.InUse),
		slog.Int("idle", after.Idle),
		slog.Int("maxOpen", after.MaxOpenConnections),
	)
}
