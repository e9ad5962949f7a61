package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// AdminHandler serves the moderation surface: login, dashboard stats and
// seed retry.
type AdminHandler struct {
	service ports.AdminService
	seeder  ports.SeedService
}

func NewAdminHandler(service ports.AdminService, seeder ports.SeedService) *AdminHandler {
	return &AdminHandler{service: service, seeder: seeder}
}

// Login handles POST /v1/admin/login.
//
// @Summary      Exchange the admin passcode for a session token
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Passcode"
// @Success      200   {object}  adminLoginResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.service.Login(req.Passcode)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminLoginResponse{Token: token})
}

// Stats handles GET /v1/admin/stats (admin only).
//
// @Summary      Dashboard counts and monthly registrations
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	result, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(result))
}

// Seed handles POST /v1/admin/seed (admin only). It retries the startup
// seed when the fixture source was unavailable at boot.
//
// @Summary      Re-run the fixture seed
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool
// @Failure      502  {object}  map[string]string
// @Router       /v1/admin/seed [post]
func (h *AdminHandler) Seed(c echo.Context) error {
	if err := h.seeder.EnsureSeeded(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"seeded": true})
}
