package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Counts handles GET /v1/admin/dashboard.
func (h *DashboardHandler) Counts(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	counts, err := h.service.Counts(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Activity handles GET /v1/admin/dashboard/activity?limit=.
func (h *DashboardHandler) Activity(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	entries, err := h.service.RecentActivity(c.Request().Context(), cl, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
