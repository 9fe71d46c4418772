package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/api/metrics"
	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// IntakeHandler handles the public contact and project-request forms plus
// their admin-facing listings.
type IntakeHandler struct {
	service ports.IntakeService
}

func NewIntakeHandler(service ports.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type projectRequestRequest struct {
	Name          string `json:"name"           validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Budget        string `json:"budget"`
	Timeframe     string `json:"timeframe"`
	Description   string `json:"description"    validate:"required"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

// SubmitContact handles POST /v1/contact — unauthenticated by design.
//
// @Summary      Submit a contact message
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *IntakeHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SubmissionsRejectedTotal.WithLabelValues("contact", "invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.service.SubmitContact(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			metrics.SubmissionsRejectedTotal.WithLabelValues("contact", "duplicate").Inc()
		}
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("contact").Inc()
	return c.JSON(http.StatusCreated, msg)
}

// SubmitRequest handles POST /v1/project-requests — unauthenticated by design.
//
// @Summary      Submit a project request
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      projectRequestRequest  true  "Project request"
// @Success      201   {object}  domain.ProjectRequest
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/project-requests [post]
func (h *IntakeHandler) SubmitRequest(c echo.Context) error {
	var req projectRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SubmissionsRejectedTotal.WithLabelValues("request", "invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	pr, err := h.service.SubmitRequest(c.Request().Context(), ports.RequestInput{
		Name:          req.Name,
		Email:         req.Email,
		Budget:        req.Budget,
		Timeframe:     req.Timeframe,
		Description:   req.Description,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			metrics.SubmissionsRejectedTotal.WithLabelValues("request", "duplicate").Inc()
		}
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("request").Inc()
	return c.JSON(http.StatusCreated, pr)
}

// ListContacts handles GET /v1/admin/contact-messages.
func (h *IntakeHandler) ListContacts(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	msgs, err := h.service.ListContacts(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// ListRequests handles GET /v1/admin/project-requests.
func (h *IntakeHandler) ListRequests(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	reqs, err := h.service.ListRequests(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}
