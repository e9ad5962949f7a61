package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// ConsultantHandler handles HTTP requests for the consultant directory.
type ConsultantHandler struct {
	service ports.ConsultantService
}

func NewConsultantHandler(service ports.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{service: service}
}

// Search handles GET /v1/consultants.
//
// @Summary      Search consultants
// @Tags         consultants
// @Produce      json
// @Param        keyword      query     string  false  "Substring match on name or bio"
// @Param        skills       query     string  false  "Comma-separated skill tags; all must be present"
// @Param        experience   query     int     false  "Minimum years of experience"
// @Param        rate_max     query     int     false  "Maximum preferred rate amount"
// @Param        utilization  query     int     false  "Minimum preferred utilization"
// @Param        location     query     string  false  "Exact base location"
// @Param        remote       query     string  false  "true or false; empty means unconstrained"
// @Param        industry     query     string  false  "Industry tag membership"
// @Param        sort         query     string  false  "new | rate-low | experience"
// @Param        page         query     int     false  "1-based page number"
// @Success      200          {object}  listConsultantsResponse
// @Failure      500          {object}  map[string]string
// @Router       /v1/consultants [get]
func (h *ConsultantHandler) Search(c echo.Context) error {
	result, err := h.service.Search(c.Request().Context(), ports.ConsultantSearchInput{
		Keyword:     c.QueryParam("keyword"),
		Skills:      csvParam(c, "skills"),
		Experience:  intParam(c, "experience"),
		RateMax:     intParam(c, "rate_max"),
		Utilization: intParam(c, "utilization"),
		Location:    c.QueryParam("location"),
		Remote:      c.QueryParam("remote"),
		Industry:    c.QueryParam("industry"),
		Sort:        c.QueryParam("sort"),
		Page:        intParam(c, "page"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListConsultantsResponse(result))
}

// Get handles GET /v1/consultants/:id.
//
// @Summary      Get a consultant by id
// @Tags         consultants
// @Produce      json
// @Param        id   path      string  true  "Consultant id"
// @Success      200  {object}  consultantResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/consultants/{id} [get]
func (h *ConsultantHandler) Get(c echo.Context) error {
	consultant, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConsultantResponse(*consultant))
}

// Register handles POST /v1/consultants.
//
// @Summary      Register a consultant
// @Tags         consultants
// @Accept       json
// @Produce      json
// @Param        body  body      registerConsultantRequest  true  "Registration form"
// @Success      201   {object}  consultantResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/consultants [post]
func (h *ConsultantHandler) Register(c echo.Context) error {
	var req registerConsultantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Register(c.Request().Context(), toRegisterConsultantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toConsultantResponse(*created))
}

// Update handles PUT /v1/admin/consultants/:id (admin only).
//
// @Summary      Edit a consultant (moderation)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Consultant id"
// @Param        body  body      updateConsultantRequest  true  "Editable fields"
// @Success      200   {object}  consultantResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/consultants/{id} [put]
func (h *ConsultantHandler) Update(c echo.Context) error {
	var req updateConsultantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateConsultantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConsultantResponse(*updated))
}

// Delete handles DELETE /v1/admin/consultants/:id (admin only).
//
// @Summary      Delete a consultant (moderation)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Consultant id"
// @Success      204
// @Router       /v1/admin/consultants/{id} [delete]
func (h *ConsultantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
