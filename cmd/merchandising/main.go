package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Yakorrr/merchandising-management-system/config"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/middleware"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/router/handler"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/auth"
	logs "github.com/Yakorrr/merchandising-management-system/internal/infra/log"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/metrics"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/postgres"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/pubsub"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/routing"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			seedUsers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		pubsub.Module,
		routing.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewDailyPlanRepository,
			postgres.NewAuditLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewDailyPlanService,
			impl.NewRouteService,
			impl.NewAuditLogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewDailyPlanHandler,
			handler.NewRouteHandler,
			handler.NewAuditLogHandler,
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

// seedUsers creates the configured bootstrap accounts once the database is reachable.
func seedUsers(lc fx.Lifecycle, cfg *config.Config, authUC usecase.AuthUsecase, logger *slog.Logger) {
	if cfg.Seed == nil || !cfg.Seed.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			users := make([]usecase.SeedUserInput, 0, len(cfg.Seed.Users))
			for _, user := range cfg.Seed.Users {
				users = append(users, usecase.SeedUserInput{
					Username: user.Username,
					Password: user.Password,
					Email:    user.Email,
					Role:     entity.Role(user.Role),
				})
			}

			created, err := authUC.SeedUsers(ctx, users)
			if err != nil {
				return errors.Wrap(err, "failed to seed users")
			}
			logger.Info("Seed users ensured", slog.Int("created", created))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
