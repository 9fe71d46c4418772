package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/ports"
)

type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	ProfileID string `json:"profile_id"`
	Company   string `json:"company" validate:"required"`
	Phone     string `json:"phone"`
	Status    string `json:"status"  validate:"omitempty,oneof=active inactive"`
}

type updateClientRequest struct {
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Status  *string `json:"status"`
}

// Create handles POST /v1/admin/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), cl, ports.CreateClientInput{
		ProfileID: req.ProfileID,
		Company:   req.Company,
		Phone:     req.Phone,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// List handles GET /v1/admin/clients.
func (h *ClientHandler) List(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	clients, err := h.service.List(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Update handles PATCH /v1/admin/clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.ClientPatch{Company: req.Company, Phone: req.Phone, Status: req.Status}
	if err := h.service.Update(c.Request().Context(), cl, c.Param("id"), patch); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/clients/:id. Projects owned by the
// client are not cascaded; they keep their dangling client_id.
func (h *ClientHandler) Delete(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), cl, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
