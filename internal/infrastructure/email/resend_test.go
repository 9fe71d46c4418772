package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Send_Success(t *testing.T) {
	var got sendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(Config{APIKey: "re_test", From: "studio@example.com", Endpoint: srv.URL})

	if err := client.Send(context.Background(), "hello@example.com", "Subject", "<p>body</p>"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if auth != "Bearer re_test" {
		t.Fatalf("unexpected auth header: %q", auth)
	}
	if got.From != "studio@example.com" || len(got.To) != 1 || got.To[0] != "hello@example.com" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Subject != "Subject" || got.HTML != "<p>body</p>" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_Send_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "re_test", From: "bad", Endpoint: srv.URL})

	err := client.Send(context.Background(), "x@example.com", "s", "h")
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected upstream status preserved, got %d", ue.Status)
	}
	if !strings.Contains(ue.Body, "invalid from address") {
		t.Fatalf("expected upstream body preserved, got %q", ue.Body)
	}
}

func TestClient_Send_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := New(Config{APIKey: "re_test", From: "studio@example.com", Endpoint: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.Send(ctx, "x@example.com", "s", "h"); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
