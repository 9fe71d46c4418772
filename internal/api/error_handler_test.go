package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/infrastructure/email"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrProfileExists, http.StatusConflict},
		{domain.ErrSlugTaken, http.StatusConflict},
		{domain.ErrInvalidStatus, http.StatusUnprocessableEntity},
		{domain.ErrDuplicateSubmission, http.StatusTooManyRequests},
		{domain.ErrProjectNotFound, http.StatusNotFound},
		{domain.ErrBlogPostNotFound, http.StatusNotFound},
		{domain.ErrTicketNotFound, http.StatusNotFound},
		{domain.ErrLicenseNotFound, http.StatusNotFound},
		{domain.ErrAnnouncementNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec, _ := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	rec, _ := handleError(t, fmt.Errorf("list projects: %w", domain.ErrForbidden))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected wrapped error to map to 403, got %d", rec.Code)
	}
}

func TestErrorHandler_UpstreamEmailFailure(t *testing.T) {
	rec, body := handleError(t, &email.UpstreamError{Status: 422, Body: "invalid from"})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(body["error"], "422") || !strings.Contains(body["error"], "invalid from") {
		t.Fatalf("expected upstream status and body surfaced, got %q", body["error"])
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec, body := handleError(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(body["error"], "mongo") {
		t.Fatalf("internal details must not leak: %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
