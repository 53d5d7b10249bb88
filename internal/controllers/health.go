package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const healthTimeout = 5 * time.Second

// HealthCheck testa uma dependência (Postgres, Redis).
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	checks map[string]HealthCheck
	logger *zap.Logger
}

func NewHealthController(checks map[string]HealthCheck, logger *zap.Logger) *HealthController {
	return &HealthController{checks: checks, logger: logger}
}

func (c *HealthController) Health(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	services := make(map[string]string, len(names))
	for _, name := range names {
		if err := c.checks[name](reqCtx); err != nil {
			healthy = false
			services[name] = "unhealthy"
			c.logger.Error("Health check falhou", zap.String("service", name), zap.Error(err))
			continue
		}
		services[name] = "healthy"
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	return ctx.JSON(code, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	})
}
