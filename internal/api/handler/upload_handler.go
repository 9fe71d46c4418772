package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhq/studio-api/internal/infrastructure/storage"
)

// UploadHandler mints signed URLs for the external blob store. The API
// never proxies file bytes; clients PUT directly to the signed URL.
type UploadHandler struct {
	signer *storage.Signer
}

func NewUploadHandler(signer *storage.Signer) *UploadHandler {
	return &UploadHandler{signer: signer}
}

type uploadURLRequest struct {
	Filename string `json:"filename" validate:"required"`
}

// GenerateURL handles POST /v1/admin/uploads.
func (h *UploadHandler) GenerateURL(c echo.Context) error {
	if _, err := requireCaller(c); err != nil {
		return err
	}

	var req uploadURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	target, err := h.signer.GenerateUploadURL(req.Filename)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, target)
}

// ResolveURL handles GET /v1/admin/files/:id/url.
func (h *UploadHandler) ResolveURL(c echo.Context) error {
	if _, err := requireCaller(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"url": h.signer.ResolveURL(c.Param("id")),
	})
}
