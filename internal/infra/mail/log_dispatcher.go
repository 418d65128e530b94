package mail

import (
	"context"
	"log/slog"

	"taskman/internal/domain/service"
)

// logDispatcher writes messages to the log instead of sending them. Used when no SMTP host is configured.
type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher returns a dispatcher for local development.
func NewLogDispatcher(logger *slog.Logger) service.EmailDispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Send(ctx context.Context, to, subject, body string) error {
	d.logger.InfoContext(ctx, "[LogMail] Email not sent, SMTP disabled",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
