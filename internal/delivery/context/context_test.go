package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskman/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestCaller(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCaller(c)
	assert.False(t, ok)

	SetCaller(c, &entity.Caller{Email: "a@x.com", Role: entity.RoleUser})
	caller, ok := GetCaller(c)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", caller.Email)
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, GetRequestID(c), "generated id is pinned to the request")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID_FromRequestContext(t *testing.T) {
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-ctx")))

	assert.Equal(t, "req-ctx", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
