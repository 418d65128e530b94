package context

import (
	"taskman/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCaller is the key for storing the authenticated caller in echo.Context.
const KeyCaller ContextKey = "caller"

// SetCaller stores the authenticated caller in echo.Context.
func SetCaller(c echo.Context, caller *entity.Caller) {
	c.Set(string(KeyCaller), caller)
}

// GetCaller extracts the authenticated caller from echo.Context.
func GetCaller(c echo.Context) (*entity.Caller, bool) {
	caller, ok := c.Get(string(KeyCaller)).(*entity.Caller)
	if !ok || caller == nil {
		return nil, false
	}

	return caller, true
}
