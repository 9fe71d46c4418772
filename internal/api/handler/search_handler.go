package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/api/metrics"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /v1/search?term=. An empty term returns empty buckets
// rather than an error.
func (h *SearchHandler) Search(c echo.Context) error {
	metrics.SearchRequestsTotal.Inc()

	results, err := h.service.Everything(c.Request().Context(), c.QueryParam("term"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}
