package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for the project listings.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Search handles GET /v1/projects.
//
// @Summary      Search projects
// @Tags         projects
// @Produce      json
// @Param        keyword      query     string  false  "Substring match on title or description"
// @Param        role         query     string  false  "Substring match on the sought role"
// @Param        skills       query     string  false  "Comma-separated skill tags; all must be present"
// @Param        rate_min     query     int     false  "Lower bound of the desired rate band"
// @Param        rate_max     query     int     false  "Upper bound of the desired rate band"
// @Param        utilization  query     int     false  "Maximum required utilization"
// @Param        work_style   query     string  false  "remote | onsite | hybrid"
// @Param        industry     query     string  false  "Exact industry match"
// @Param        sort         query     string  false  "new | rate-high | start-soon"
// @Param        page         query     int     false  "1-based page number"
// @Success      200          {object}  listProjectsResponse
// @Failure      500          {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) Search(c echo.Context) error {
	result, err := h.service.Search(c.Request().Context(), ports.ProjectSearchInput{
		Keyword:     c.QueryParam("keyword"),
		Role:        c.QueryParam("role"),
		Skills:      csvParam(c, "skills"),
		RateMin:     intParam(c, "rate_min"),
		RateMax:     intParam(c, "rate_max"),
		Utilization: intParam(c, "utilization"),
		WorkStyle:   c.QueryParam("work_style"),
		Industry:    c.QueryParam("industry"),
		Sort:        c.QueryParam("sort"),
		Page:        intParam(c, "page"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListProjectsResponse(result))
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(*project))
}

// Register handles POST /v1/projects.
//
// @Summary      Post a project listing
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      registerProjectRequest  true  "Listing form"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Register(c echo.Context) error {
	var req registerProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Register(c.Request().Context(), toRegisterProjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProjectResponse(*created))
}

// Update handles PUT /v1/admin/projects/:id (admin only).
//
// @Summary      Edit a project (moderation)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Editable fields"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateProjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(*updated))
}

// Delete handles DELETE /v1/admin/projects/:id (admin only).
//
// @Summary      Delete a project (moderation)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Router       /v1/admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
