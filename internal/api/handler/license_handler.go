package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/api/metrics"
	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// LicenseHandler serves license issuance, lookup and domain registration.
type LicenseHandler struct {
	service ports.LicenseService
}

func NewLicenseHandler(service ports.LicenseService) *LicenseHandler {
	return &LicenseHandler{service: service}
}

type issueLicenseRequest struct {
	ProjectID string     `json:"project_id" validate:"required"`
	Expiry    *time.Time `json:"expiry"`
}

type registerDomainRequest struct {
	Domain string `json:"domain" validate:"required,fqdn"`
}

type updateLicenseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type licenseDetailResponse struct {
	License    *domain.License        `json:"license"`
	Domains    []*domain.LicenseDomain `json:"domains"`
	MaxDomains int                    `json:"max_domains"`
}

// Issue handles POST /v1/admin/licenses.
//
// @Summary      Issue a license
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      issueLicenseRequest  true  "License"
// @Success      201   {object}  domain.License
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/licenses [post]
func (h *LicenseHandler) Issue(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req issueLicenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lic, err := h.service.Issue(c.Request().Context(), cl, ports.IssueLicenseInput{
		ProjectID: req.ProjectID,
		Expiry:    req.Expiry,
	})
	if err != nil {
		return err
	}

	metrics.LicensesIssuedTotal.Inc()
	return c.JSON(http.StatusCreated, lic)
}

// List handles GET /v1/licenses. Admins may narrow with ?project_id=;
// clients are scoped to licenses of their own projects.
func (h *LicenseHandler) List(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	licenses, err := h.service.List(c.Request().Context(), cl, c.QueryParam("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, licenses)
}

// Get handles GET /v1/licenses/:id — the license with its registered
// domains and the advisory per-license domain cap.
func (h *LicenseHandler) Get(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	detail, err := h.service.Get(c.Request().Context(), cl, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, licenseDetailResponse{
		License:    detail.License,
		Domains:    detail.Domains,
		MaxDomains: detail.MaxDomains,
	})
}

// RegisterDomain handles POST /v1/licenses/:id/domains. The configured
// maximum is not enforced here; it is surfaced on the detail view only.
func (h *LicenseHandler) RegisterDomain(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req registerDomainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	d, err := h.service.RegisterDomain(c.Request().Context(), cl, c.Param("id"), req.Domain)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// UpdateStatus handles PATCH /v1/admin/licenses/:id/status.
func (h *LicenseHandler) UpdateStatus(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req updateLicenseStatusRequest
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

// Delete handles DELETE /v1/admin/licenses/:id. Registered domain records
// are left in place; they are only reachable through their license.
func (h *LicenseHandler) Delete(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), cl, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
