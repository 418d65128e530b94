package main

import (
	"context"
	"log/slog"
	"os"

	"taskman/config"
	"taskman/internal/delivery"
	"taskman/internal/delivery/api"
	"taskman/internal/delivery/api/middleware"
	"taskman/internal/delivery/api/router/handler"
	"taskman/internal/delivery/scheduler"
	"taskman/internal/domain/lifecycle"
	"taskman/internal/infra/auth"
	"taskman/internal/infra/clock"
	logs "taskman/internal/infra/log"
	"taskman/internal/infra/mail"
	"taskman/internal/infra/persistence/postgres"
	"taskman/internal/infra/revocation"
	"taskman/internal/usecase"
	"taskman/internal/usecase/impl"

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
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTaskRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewPasswordPolicy,
			auth.NewJWTCodec,
			auth.NewCodeGenerator,
			revocation.NewRegistry,
			mail.NewDispatcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordResetService,
			impl.NewTaskService,
			impl.NewAccountMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTaskHandler,
			handler.NewAdminHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAdmin creates the configured administrator once migrations have run.
func seedAdmin(lc fx.Lifecycle, accountUC usecase.AccountMaintenanceUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return accountUC.SeedAdmin(ctx)
		},
	})
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
