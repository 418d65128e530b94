package middleware

import (
	"log/slog"
	"strings"

	"taskman/internal/delivery/api/response"
	deliverycontext "taskman/internal/delivery/context"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/policy"
	"taskman/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves the bearer access token into a caller.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// Authenticate rejects requests without a usable access token and stores the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		caller, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}

// RequireAdmin allows only ADMIN callers. It must be used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := deliverycontext.GetCaller(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		if err := policy.Authorize(policy.OpAdminAccess, *caller, nil); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Admin access denied", slog.String("email", caller.Email))

			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}
