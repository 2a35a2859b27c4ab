package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mbibank/ledger/internal/api"
	apivalidator "github.com/mbibank/ledger/internal/api/validator"
	"github.com/mbibank/ledger/internal/config"
	middleware "github.com/mbibank/ledger/internal/error"
	"github.com/mbibank/ledger/internal/metrics"
	"github.com/mbibank/ledger/internal/repository"
	"github.com/mbibank/ledger/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"

	v1 "github.com/mbibank/ledger/internal/api/v1"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			newValidator,
			metrics.NewMetrics,
			apivalidator.NewXValidator,

			repository.NewAccountRepository,
			repository.NewTransactionRepository,
			service.NewAccountService,
			service.NewQueryService,

			v1.NewHandler,
			newFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func newValidator() *validator.Validate {
	return validator.New()
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, cfg *config.Config,
	logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Ledger API starting", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
