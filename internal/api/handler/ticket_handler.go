package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/api/metrics"
	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// TicketHandler serves support tickets for clients and admins. Clients only
// ever see tickets in their own scope; admins see everything.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

type createTicketRequest struct {
	ClientID      string `json:"client_id"`
	Subject       string `json:"subject"  validate:"required"`
	Priority      string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

type addTicketMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

type updateTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ticketDetailResponse struct {
	Ticket   *domain.SupportTicket   `json:"ticket"`
	Messages []*domain.TicketMessage `json:"messages"`
}

// Create handles POST /v1/tickets.
//
// @Summary      Open a support ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTicketRequest  true  "Ticket"
// @Success      201   {object}  domain.SupportTicket
// @Router       /v1/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ticket, err := h.service.Create(c.Request().Context(), cl, ports.CreateTicketInput{
		ClientID:      req.ClientID,
		Subject:       req.Subject,
		Priority:      req.Priority,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return err
	}

	metrics.TicketsOpenedTotal.WithLabelValues(ticket.Priority).Inc()
	return c.JSON(http.StatusCreated, ticket)
}

// List handles GET /v1/tickets.
func (h *TicketHandler) List(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	tickets, err := h.service.List(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Get handles GET /v1/tickets/:id — the ticket plus its message thread.
func (h *TicketHandler) Get(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	detail, err := h.service.Get(c.Request().Context(), cl, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticketDetailResponse{
		Ticket:   detail.Ticket,
		Messages: detail.Messages,
	})
}

// AddMessage handles POST /v1/tickets/:id/messages.
func (h *TicketHandler) AddMessage(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req addTicketMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.service.AddMessage(c.Request().Context(), cl, c.Param("id"), req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// UpdateStatus handles PATCH /v1/admin/tickets/:id/status. Unknown status
// values are rejected with 422.
func (h *TicketHandler) UpdateStatus(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req updateTicketStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), cl, c.Param("id"), req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
