package main

import (
	"context"
	"log/slog"
	"os"

	"vitrine/config"
	"vitrine/internal/delivery"
	"vitrine/internal/delivery/api"
	apimiddleware "vitrine/internal/delivery/api/middleware"
	"vitrine/internal/delivery/api/router/handler"
	"vitrine/internal/domain/service"
	"vitrine/internal/infra/auth"
	"vitrine/internal/infra/auth/google"
	"vitrine/internal/infra/authevents"
	"vitrine/internal/infra/cache"
	logs "vitrine/internal/infra/log"
	"vitrine/internal/infra/persistence/postgres"
	"vitrine/internal/infra/pubsub"
	"vitrine/internal/infra/qrcode"
	"vitrine/internal/infra/storage"
	"vitrine/internal/usecase"
	"vitrine/internal/usecase/board"
	"vitrine/internal/usecase/impl"
	"vitrine/internal/util"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		util.NewClock,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewListingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewIDTokenVerifier,
			authevents.NewBus,
			pubsub.NewEventPublisher,
			cache.NewFeaturedCache,
			storage.New,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewListingService,
			impl.NewPhotoService,
			currentUserProvider,
			board.NewRegistry,
		),
	)
}

// currentUserProvider lets the listing and photo services resolve the signed-in operator.
func currentUserProvider(authUC usecase.AuthUsecase) service.CurrentUserProvider {
	return authUC
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListingHandler,
			handler.NewAdminListingHandler,
			handler.NewAuthHandler,
			handler.NewPhotoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
