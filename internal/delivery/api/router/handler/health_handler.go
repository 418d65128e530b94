package handler

import (
	"net/http"

	"taskman/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthStatus is the body of the liveness check.
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{Status: "ok"})
}
