package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/ports"
)

type DocHandler struct {
	service ports.DocService
}

func NewDocHandler(service ports.DocService) *DocHandler {
	return &DocHandler{service: service}
}

type createDocRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category"`
	URL      string `json:"url"      validate:"required,url"`
}

type updateDocRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	URL      *string `json:"url"`
}

// List handles GET /v1/docs with an optional ?category= filter.
func (h *DocHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Create handles POST /v1/admin/docs.
func (h *DocHandler) Create(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req createDocRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	doc, err := h.service.Create(c.Request().Context(), cl, ports.CreateDocInput{
		Title:    req.Title,
		Category: req.Category,
		URL:      req.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// Update handles PATCH /v1/admin/docs/:id.
func (h *DocHandler) Update(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req updateDocRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.DocPatch{Title: req.Title, Category: req.Category, URL: req.URL}
	if err := h.service.Update(c.Request().Context(), cl, c.Param("id"), patch); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/docs/:id.
func (h *DocHandler) Delete(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), cl, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
