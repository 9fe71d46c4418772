package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/core/ports"
)

// BlogHandler serves the public blog surface and the admin CRUD routes.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type createBlogPostRequest struct {
	Title      string `json:"title"       validate:"required"`
	Slug       string `json:"slug"        validate:"required"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"     validate:"required"`
	Published  bool   `json:"published"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
}

type updateBlogPostRequest struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	Published  *bool   `json:"published"`
	CoverImage *string `json:"cover_image"`
}

// ListPublic handles GET /v1/blog. Only published posts are visible here;
// the optional ?search= term matches title, slug, content or excerpt.
func (h *BlogHandler) ListPublic(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context(), ports.ListBlogInput{
		Search:        c.QueryParam("search"),
		PublishedOnly: true,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPublic handles GET /v1/blog/:slug for published posts only.
func (h *BlogHandler) GetPublic(c echo.Context) error {
	post, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ListAdmin handles GET /v1/admin/blog — drafts included.
func (h *BlogHandler) ListAdmin(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context(), ports.ListBlogInput{
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /v1/admin/blog.
//
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogPostRequest  true  "Blog post"
// @Success      201   {object}  domain.BlogPost
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req createBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), cl, ports.CreateBlogPostInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Published:  req.Published,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update handles PATCH /v1/admin/blog/:id.
func (h *BlogHandler) Update(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req updateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.BlogPatch{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Published:  req.Published,
		CoverImage: req.CoverImage,
	}
	if err := h.service.Update(c.Request().Context(), cl, c.Param("id"), patch); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/blog/:id. Deleting an already-deleted
// post succeeds.
func (h *BlogHandler) Delete(c echo.Context) error {
	cl, err := requireCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), cl, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
