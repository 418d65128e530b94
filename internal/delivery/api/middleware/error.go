package middleware

import (
	"log/slog"
	"net/http"

	"taskman/internal/delivery/api/response"
	deliverycontext "taskman/internal/delivery/context"
	domainerrors "taskman/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that reaches echo as an error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their code, echo errors become HTTP_ERROR and anything else is an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err)
		}
		_ = response.FromAppError(c, appErr)
	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	default:
		m.logFailure(c, "Unhandled error", err)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error(msg,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
}
