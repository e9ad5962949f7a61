package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// InquiryHandler handles contact requests against projects and consultants.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Create handles POST /v1/inquiries.
//
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      createInquiryRequest  true  "Contact form"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /v1/inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toCreateInquiryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": created.ID})
}

// List handles GET /v1/admin/inquiries (admin only).
//
// @Summary      List inquiries (moderation)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listInquiriesResponse
// @Router       /v1/admin/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listInquiriesResponse{Data: make([]inquiryResponse, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, toInquiryResponse(item))
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /v1/admin/inquiries/:id (admin only).
//
// @Summary      Delete an inquiry (moderation)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Inquiry id"
// @Success      204
// @Router       /v1/admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
