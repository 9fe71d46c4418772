package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/ports"
)

type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

type setAnnouncementRequest struct {
	Text   string `json:"text" validate:"required"`
	Active bool   `json:"active"`
}

// Latest handles GET /v1/announcement — the single banner shown on the
// public site. 404 when no active announcement exists.
func (h *AnnouncementHandler) Latest(c echo.Context) error {
	a, err := h.service.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Set handles POST /v1/admin/announcements. Latest-wins: earlier
// announcements stay in place but are no longer surfaced.
func (h *AnnouncementHandler) Set(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req setAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	a, err := h.service.Set(c.Request().Context(), cl, req.Text, req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// List handles GET /v1/admin/announcements.
func (h *AnnouncementHandler) List(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	all, err := h.service.List(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, all)
}

// Delete handles DELETE /v1/admin/announcements/:id.
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), cl, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
