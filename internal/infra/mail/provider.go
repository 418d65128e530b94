package mail

import (
	"log/slog"

	"taskman/config"
	"taskman/internal/domain/service"

	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for EmailDispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDispatcher creates an EmailDispatcher based on configuration.
func NewDispatcher(params DispatcherParams) (service.EmailDispatcher, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("Mail host not configured, using log dispatcher")

		return NewLogDispatcher(params.Logger), nil
	}

	params.Logger.Info("Using SMTP email dispatcher",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
	)

	return NewSMTPDispatcher(cfg, params.Logger)
}
