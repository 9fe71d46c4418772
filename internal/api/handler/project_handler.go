package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/ports"
)

// ProjectHandler serves the public portfolio, the client project list and
// the admin CRUD routes. All three read the same collection.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	ClientID    string   `json:"client_id"`
	Title       string   `json:"title"  validate:"required"`
	Slug        string   `json:"slug"   validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=planned active paused delivered archived"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	DemoURL     string   `json:"demo_url" validate:"omitempty,url"`
	DocsURL     string   `json:"docs_url" validate:"omitempty,url"`
	Featured    bool     `json:"featured"`
}

type updateProjectRequest struct {
	ClientID    *string   `json:"client_id"`
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Status      *string   `json:"status"`
	Description *string   `json:"description"`
	Tech        *[]string `json:"tech"`
	DemoURL     *string   `json:"demo_url"`
	DocsURL     *string   `json:"docs_url"`
	Featured    *bool     `json:"featured"`
}

// Portfolio handles GET /v1/portfolio — the featured subset, no auth.
func (h *ProjectHandler) Portfolio(c echo.Context) error {
	projects, err := h.service.Portfolio(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// List handles GET /v1/projects. Client callers only ever see their own
// projects; admins may narrow with ?client_id=.
func (h *ProjectHandler) List(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	projects, err := h.service.List(c.Request().Context(), cl, ports.ListProjectsInput{
		ClientID:     c.QueryParam("client_id"),
		FeaturedOnly: c.QueryParam("featured") == "true",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /v1/projects/:slug.
func (h *ProjectHandler) Get(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	project, err := h.service.GetBySlug(c.Request().Context(), cl, c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /v1/admin/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), cl, ports.CreateProjectInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Slug:        req.Slug,
		Status:      req.Status,
		Description: req.Description,
		Tech:        req.Tech,
		DemoURL:     req.DemoURL,
		DocsURL:     req.DocsURL,
		Featured:    req.Featured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PATCH /v1/admin/projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.ProjectPatch{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Slug:        req.Slug,
		Status:      req.Status,
		Description: req.Description,
		Tech:        req.Tech,
		DemoURL:     req.DemoURL,
		DocsURL:     req.DocsURL,
		Featured:    req.Featured,
	}
	if err := h.service.Update(c.Request().Context(), cl, c.Param("id"), patch); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/projects/:id. Idempotent.
func (h *ProjectHandler) Delete(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), cl, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
