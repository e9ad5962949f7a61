package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultbridge/marketplace-api/internal/core/ports"
	"github.com/consultbridge/marketplace-api/internal/infrastructure/store"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	kv     ports.KV
	seeder ports.SeedService
}

func NewHealthHandler(kv ports.KV, seeder ports.SeedService) *HealthHandler {
	return &HealthHandler{kv: kv, seeder: seeder}
}

// Live handles GET /health.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready. The service is ready when the store
// answers; seeded is reported alongside so an unseeded instance is still
// routable for the admin seed retry.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.kv.Get(ctx, store.VersionKey); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
			"seeded": false,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"seeded": h.seeder.Seeded(ctx),
	})
}
