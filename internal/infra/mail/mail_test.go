package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"taskman/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewDispatcher_SelectsByHost(t *testing.T) {
	logger := newDiscardLogger()

	d, err := NewDispatcher(DispatcherParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logDispatcher{}, d)

	d, err = NewDispatcher(DispatcherParams{
		Config: &config.Config{Mail: &config.MailConfig{Host: "smtp.example.com", Port: 587, From: "no-reply@example.com"}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &smtpDispatcher{}, d)
}

func TestSMTPDispatcher_Send(t *testing.T) {
	var sent *gomail.Msg
	d := &smtpDispatcher{
		from: "no-reply@example.com",
		dial: func(_ context.Context, msg *gomail.Msg) error {
			sent = msg

			return nil
		},
		logger: newDiscardLogger(),
	}

	require.NoError(t, d.Send(context.Background(), "a@x.com", "Verify your email", "Your code is: 123456"))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"Verify your email"}, sent.GetGenHeader(gomail.HeaderSubject))

	var buf bytes.Buffer
	_, err := sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Your code is: 123456")
	assert.Contains(t, buf.String(), "<a@x.com>")
}

func TestSMTPDispatcher_DeliveryFailure(t *testing.T) {
	d := &smtpDispatcher{
		from:   "no-reply@example.com",
		dial:   func(context.Context, *gomail.Msg) error { return errors.New("connection refused") },
		logger: newDiscardLogger(),
	}

	err := d.Send(context.Background(), "a@x.com", "subject", "body")
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPDispatcher_InvalidRecipient(t *testing.T) {
	d := &smtpDispatcher{
		from:   "no-reply@example.com",
		dial:   func(context.Context, *gomail.Msg) error { return nil },
		logger: newDiscardLogger(),
	}

	err := d.Send(context.Background(), "not an address", "subject", "body")
	assert.ErrorContains(t, err, "invalid recipient address")
}

func TestLogDispatcher_Send(t *testing.T) {
	var buf bytes.Buffer
	d := NewLogDispatcher(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, d.Send(context.Background(), "a@x.com", "subject", "Your code is: 654321"))
	assert.Contains(t, buf.String(), "Your code is: 654321")
}

func TestTLSPolicy(t *testing.T) {
	assert.Equal(t, gomail.TLSMandatory, tlsPolicy("mandatory"))
	assert.Equal(t, gomail.NoTLS, tlsPolicy("none"))
	assert.Equal(t, gomail.TLSOpportunistic, tlsPolicy(""))
}
