package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

func seedClient(t *testing.T, repo *stubClientRepo, company string) *domain.Client {
	t.Helper()
	c, err := repo.Create(context.Background(), &domain.Client{
		ProfileID: "profile_1",
		Company:   company,
		Phone:     "+1 555 0100",
		Status:    "active",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func TestClientService_Create_RequiresIdentity(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, &memActivity{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.Caller{}, ports.CreateClientInput{Company: "Acme"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(repo.clients) != 0 {
		t.Fatalf("expected zero store writes on rejected mutation, got %d", len(repo.clients))
	}
}

func TestClientService_Create_DefaultStatus(t *testing.T) {
	repo := newStubClientRepo()
	trail := &memActivity{}
	svc := NewClientService(repo, trail, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminCaller(), ports.CreateClientInput{
		ProfileID: "profile_7",
		Company:   "Acme",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != "active" {
		t.Fatalf("expected default active status, got %q", created.Status)
	}
	if len(trail.entries) != 1 || trail.entries[0].Action != "client.create" {
		t.Fatalf("expected client.create activity, got %+v", trail.entries)
	}
}

func TestClientService_List_RequiresIdentity(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), &memActivity{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.Caller{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientService_Update_EmptyPatchIsNoOp(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, &memActivity{}, zerolog.Nop())

	c := seedClient(t, repo, "Acme")

	if err := svc.Update(context.Background(), adminCaller(), c.ID, ports.ClientPatch{}); err != nil {
		t.Fatalf("empty patch should succeed, got %v", err)
	}

	stored := repo.clients[c.ID]
	if stored.Company != c.Company || stored.Phone != c.Phone || stored.Status != c.Status {
		t.Fatalf("empty patch mutated fields: %+v", stored)
	}
}

func TestClientService_Update_MissingID(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), &memActivity{}, zerolog.Nop())

	if err := svc.Update(context.Background(), adminCaller(), "nope", ports.ClientPatch{}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Update_AppliesFields(t *testing.T) {
	repo := newStubClientRepo()
	trail := &memActivity{}
	svc := NewClientService(repo, trail, zerolog.Nop())

	c := seedClient(t, repo, "Acme")

	status := "archived"
	if err := svc.Update(context.Background(), adminCaller(), c.ID, ports.ClientPatch{Status: &status}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored := repo.clients[c.ID]
	if stored.Status != "archived" || stored.Company != "Acme" {
		t.Fatalf("patch applied incorrectly: %+v", stored)
	}
	if len(trail.entries) != 1 || trail.entries[0].Action != "client.update" {
		t.Fatalf("expected client.update activity, got %+v", trail.entries)
	}
}

func TestClientService_Delete_RecordsActivity(t *testing.T) {
	repo := newStubClientRepo()
	trail := &memActivity{}
	svc := NewClientService(repo, trail, zerolog.Nop())

	c := seedClient(t, repo, "Acme")

	if err := svc.Delete(context.Background(), adminCaller(), c.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.clients[c.ID]; ok {
		t.Fatalf("client still stored after delete")
	}
	if len(trail.entries) != 1 || trail.entries[0].Action != "client.delete" {
		t.Fatalf("expected client.delete activity, got %+v", trail.entries)
	}
}
