// Package mail implements service.EmailDispatcher.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"taskman/config"
	"taskman/internal/domain/service"
)

// smtpDispatcher sends plain-text mail through an SMTP relay.
type smtpDispatcher struct {
	from   string
	dial   func(ctx context.Context, msg *gomail.Msg) error
	logger *slog.Logger
}

// NewSMTPDispatcher builds a dispatcher that opens one connection per message.
func NewSMTPDispatcher(cfg *config.MailConfig, logger *slog.Logger) (service.EmailDispatcher, error) {
	opts := []gomail.Option{
		gomail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpDispatcher{
		from:   cfg.From,
		dial: func(ctx context.Context, msg *gomail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
		logger: logger,
	}, nil
}

// Send delivers one message. Failures are returned as-is and never retried.
func (d *smtpDispatcher) Send(ctx context.Context, to, subject, body string) error {
	msg, err := buildMessage(d.from, to, subject, body)
	if err != nil {
		return err
	}

	if err := d.dial(ctx, msg); err != nil {
		d.logger.Warn("Email delivery failed", slog.String("subject", subject), slog.Any("error", err))

		return errors.Wrap(err, "failed to send email")
	}

	d.logger.Debug("Email delivered", slog.String("subject", subject))

	return nil
}

func buildMessage(from, to, subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	return msg, nil
}

func tlsPolicy(name string) gomail.TLSPolicy {
	switch name {
	case "mandatory":
		return gomail.TLSMandatory
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSOpportunistic
	}
}
