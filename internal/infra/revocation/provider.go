package revocation

import (
	"context"
	"log/slog"

	"taskman/config"
	"taskman/internal/domain/lifecycle"
	"taskman/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// RegistryParams holds dependencies for the revocation registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// NewRegistry selects the backend named by revocation.backend.
func NewRegistry(params RegistryParams) (service.RevocationRegistry, error) {
	cfg := params.Config.Revocation
	logger := params.Logger

	backend := BackendMemory
	if cfg != nil && cfg.Backend != "" {
		backend = cfg.Backend
	}

	switch backend {
	case BackendMemory:
		interval := defaultPurgeInterval
		if cfg != nil {
			interval = cfg.PurgeInterval
		}
		logger.Info("Using in-memory revocation registry", slog.Duration("purge_interval", interval))

		registry := NewMemoryRegistry(params.Clock, interval, logger)
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				registry.Stop()

				return nil
			},
		})

		return registry, nil

	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis revocation backend")
		}
		logger.Info("Using Redis revocation registry", slog.String("addr", cfg.Redis.Addr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing Redis revocation registry")

				return client.Close()
			},
		})

		return NewRedisRegistry(client, params.Clock, cfg.Redis.Prefix), nil

	default:
		return nil, errors.Errorf("unknown revocation backend: %s", backend)
	}
}
