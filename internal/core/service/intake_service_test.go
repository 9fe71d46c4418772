package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

type stubIntakeRepo struct {
	contacts []*domain.ContactMessage
	requests []*domain.ProjectRequest
}

func (r *stubIntakeRepo) CreateContact(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	clone := *m
	clone.ID = fmt.Sprintf("cm_%d", len(r.contacts)+1)
	r.contacts = append(r.contacts, &clone)
	out := clone
	return &out, nil
}

func (r *stubIntakeRepo) CreateRequest(_ context.Context, req *domain.ProjectRequest) (*domain.ProjectRequest, error) {
	clone := *req
	clone.ID = fmt.Sprintf("pr_%d", len(r.requests)+1)
	r.requests = append(r.requests, &clone)
	out := clone
	return &out, nil
}

func (r *stubIntakeRepo) ListContacts(_ context.Context) ([]*domain.ContactMessage, error) {
	return r.contacts, nil
}

func (r *stubIntakeRepo) ListRequests(_ context.Context) ([]*domain.ProjectRequest, error) {
	return r.requests, nil
}

func (r *stubIntakeRepo) CountRequests(_ context.Context) (int64, error) {
	return int64(len(r.requests)), nil
}

type stubThrottle struct {
	seen    map[string]bool
	failing bool
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{seen: make(map[string]bool)}
}

func (t *stubThrottle) IsDuplicate(_ context.Context, form, email, body string) (bool, error) {
	if t.failing {
		return false, errors.New("redis unavailable")
	}
	return t.seen[form+email+body], nil
}

func (t *stubThrottle) Mark(_ context.Context, form, email, body string) error {
	if t.failing {
		return errors.New("redis unavailable")
	}
	t.seen[form+email+body] = true
	return nil
}

type stubNotifier struct {
	sent []string // "to|subject|html"
	err  error
}

func (n *stubNotifier) Send(_ context.Context, to, subject, html string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, to+"|"+subject+"|"+html)
	return nil
}

func TestIntakeService_SubmitContact_CreatesExactlyOneRecord(t *testing.T) {
	repo := &stubIntakeRepo{}
	notifier := &stubNotifier{}
	svc := NewIntakeService(repo, newStubThrottle(), notifier, "hello@example.com", zerolog.Nop())

	msg, err := svc.SubmitContact(context.Background(), ports.ContactInput{
		Name: "Ana", Email: "ana@example.com", Message: "hi there",
	})
	if err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}
	if msg.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(repo.contacts) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(repo.contacts))
	}
	if len(notifier.sent) != 1 || !strings.HasPrefix(notifier.sent[0], "hello@example.com|") {
		t.Fatalf("expected one admin notification, got %+v", notifier.sent)
	}
}

func TestIntakeService_SubmitContact_DuplicateRejected(t *testing.T) {
	repo := &stubIntakeRepo{}
	svc := NewIntakeService(repo, newStubThrottle(), &stubNotifier{}, "hello@example.com", zerolog.Nop())

	input := ports.ContactInput{Name: "Ana", Email: "ana@example.com", Message: "same text"}
	if _, err := svc.SubmitContact(context.Background(), input); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.SubmitContact(context.Background(), input); !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
	if len(repo.contacts) != 1 {
		t.Fatalf("duplicate must not be stored, got %d records", len(repo.contacts))
	}
}

func TestIntakeService_ThrottleBackendFailureAccepts(t *testing.T) {
	repo := &stubIntakeRepo{}
	throttle := newStubThrottle()
	throttle.failing = true
	svc := NewIntakeService(repo, throttle, &stubNotifier{}, "hello@example.com", zerolog.Nop())

	if _, err := svc.SubmitContact(context.Background(), ports.ContactInput{Name: "Ana", Email: "a@b.c", Message: "m"}); err != nil {
		t.Fatalf("submission must proceed when throttle backend is down, got %v", err)
	}
	if len(repo.contacts) != 1 {
		t.Fatalf("expected record stored, got %d", len(repo.contacts))
	}
}

func TestIntakeService_NotifierFailurePropagatesAfterStore(t *testing.T) {
	repo := &stubIntakeRepo{}
	notifier := &stubNotifier{err: errors.New("provider 500")}
	svc := NewIntakeService(repo, newStubThrottle(), notifier, "hello@example.com", zerolog.Nop())

	created, err := svc.SubmitRequest(context.Background(), ports.RequestInput{
		Name: "Ben", Email: "ben@example.com", Description: "build me a site",
	})
	if err == nil {
		t.Fatalf("expected notifier error to propagate")
	}
	if created == nil || created.ID == "" {
		t.Fatalf("record must be stored before the notification attempt")
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected stored request, got %d", len(repo.requests))
	}
}

func TestIntakeService_NotificationEscapesHTML(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewIntakeService(&stubIntakeRepo{}, nil, notifier, "hello@example.com", zerolog.Nop())

	_, err := svc.SubmitContact(context.Background(), ports.ContactInput{
		Name: "<script>", Email: "x@example.com", Message: "<b>hi</b>",
	})
	if err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification")
	}
	if strings.Contains(notifier.sent[0], "<script>") {
		t.Fatalf("submitted markup must be escaped in the notification body")
	}
}

func TestIntakeService_AdminListingsGated(t *testing.T) {
	svc := NewIntakeService(&stubIntakeRepo{}, nil, nil, "hello@example.com", zerolog.Nop())

	if _, err := svc.ListContacts(context.Background(), ports.Caller{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.ListRequests(context.Background(), ports.Caller{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.ListContacts(context.Background(), adminCaller()); err != nil {
		t.Fatalf("admin listing should succeed, got %v", err)
	}
}
