package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"distsn/helpers"
	"distsn/interfaces"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	checker interfaces.HealthChecker
}

// NewHealthHandler creates a HealthHandler. Panics on nil checker.
func NewHealthHandler(checker interfaces.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: helpers.NilPanic(checker, "handlers.health.go: health checker is required")}
}

// RegisterHealthHandler adds GET /healthz to router.
func RegisterHealthHandler(router EchoRouter, h *HealthHandler) {
	router.GET("/healthz", h.Check)
}

// Check returns 200 {"status":"SERVING"} when the store is reachable; the store error otherwise.
func (h *HealthHandler) Check(ectx echo.Context) error {
	ctx, cancel := context.WithTimeout(ectx.Request().Context(), healthCheckTimeout)
	defer cancel()
	if err := h.checker.Check(ctx); err != nil {
		return fmt.Errorf("health check failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, map[string]string{"status": "SERVING"})
}
