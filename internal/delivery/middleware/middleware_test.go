package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskman/config"
	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "", want: false},
		{id: "abc-123", want: true},
		{id: "6f1c2a9e-1d3b-4d6f-9a0e-3b2f1c4d5e6f", want: true},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: "ünïcode", want: false},
		{id: strings.Repeat("x", maxRequestIDLength), want: true},
		{id: strings.Repeat("x", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validRequestID(tt.id), "id %q", tt.id)
	}
}

func TestRequestIDMiddleware_ScopesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "trace-9", deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "trace-9", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"trace-9"`)
}

func TestLoggerMiddleware(t *testing.T) {
	newContext := func() (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/tasks/my", nil), rec)
		deliverycontext.SetCaller(c, &entity.Caller{Email: "a@x.com", Role: entity.RoleUser})

		return c, rec
	}

	t.Run("successful requests are quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})
		c, _ := newContext()

		err := m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("debug logs every request with the caller", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
		c, _ := newContext()

		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

		assert.Contains(t, buf.String(), `"caller":"a@x.com"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("errors are handled before logging", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})
		c, rec := newContext()

		err := m.Handle(func(echo.Context) error { return errors.New("boom") })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":500`)
	})
}
