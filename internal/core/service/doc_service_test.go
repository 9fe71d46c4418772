package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

type stubDocRepo struct {
	docs    map[string]*domain.Doc
	nextID  int
	creates int
}

func newStubDocRepo() *stubDocRepo {
	return &stubDocRepo{docs: make(map[string]*domain.Doc)}
}

func (r *stubDocRepo) Create(_ context.Context, d *domain.Doc) (*domain.Doc, error) {
	r.creates++
	clone := *d
	r.nextID++
	clone.ID = fmt.Sprintf("doc_%d", r.nextID)
	r.docs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDocRepo) List(_ context.Context, category string) ([]*domain.Doc, error) {
	out := make([]*domain.Doc, 0, len(r.docs))
	for _, d := range r.docs {
		if category != "" && d.Category != category {
			continue
		}
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubDocRepo) Patch(_ context.Context, id string, patch ports.DocPatch) error {
	d, ok := r.docs[id]
	if !ok {
		return domain.ErrDocNotFound
	}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.URL != nil {
		d.URL = *patch.URL
	}
	return nil
}

func (r *stubDocRepo) Delete(_ context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

func seedDoc(t *testing.T, repo *stubDocRepo, title, category string) *domain.Doc {
	t.Helper()
	d, err := repo.Create(context.Background(), &domain.Doc{
		Title:     title,
		Category:  category,
		URL:       "https://docs.example.com/" + title,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed doc: %v", err)
	}
	return d
}

func TestDocService_Create_RequiresIdentity(t *testing.T) {
	repo := newStubDocRepo()
	svc := NewDocService(repo, &memActivity{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.Caller{}, ports.CreateDocInput{Title: "Guide", URL: "https://x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected zero store writes on rejected mutation, got %d", repo.creates)
	}
}

func TestDocService_Create_RecordsActivity(t *testing.T) {
	repo := newStubDocRepo()
	trail := &memActivity{}
	svc := NewDocService(repo, trail, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminCaller(), ports.CreateDocInput{
		Title:    "Onboarding Guide",
		Category: "guides",
		URL:      "https://docs.example.com/onboarding",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Title != "Onboarding Guide" {
		t.Fatalf("unexpected doc: %+v", created)
	}
	if len(trail.entries) != 1 || trail.entries[0].Action != "doc.create" {
		t.Fatalf("expected doc.create activity, got %+v", trail.entries)
	}
}

func TestDocService_List_FiltersByCategory(t *testing.T) {
	repo := newStubDocRepo()
	svc := NewDocService(repo, &memActivity{}, zerolog.Nop())

	seedDoc(t, repo, "API Reference", "reference")
	seedDoc(t, repo, "Getting Started", "guides")

	got, err := svc.List(context.Background(), "guides")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Getting Started" {
		t.Fatalf("expected only the guides doc, got %+v", got)
	}
}

func TestDocService_Update_EmptyPatchIsNoOp(t *testing.T) {
	repo := newStubDocRepo()
	svc := NewDocService(repo, &memActivity{}, zerolog.Nop())

	d := seedDoc(t, repo, "API Reference", "reference")

	if err := svc.Update(context.Background(), adminCaller(), d.ID, ports.DocPatch{}); err != nil {
		t.Fatalf("empty patch should succeed, got %v", err)
	}

	stored := repo.docs[d.ID]
	if stored.Title != d.Title || stored.Category != d.Category || stored.URL != d.URL {
		t.Fatalf("empty patch mutated fields: %+v", stored)
	}
}

func TestDocService_Update_MissingID(t *testing.T) {
	repo := newStubDocRepo()
	svc := NewDocService(repo, &memActivity{}, zerolog.Nop())

	if err := svc.Update(context.Background(), adminCaller(), "nope", ports.DocPatch{}); !errors.Is(err, domain.ErrDocNotFound) {
		t.Fatalf("expected ErrDocNotFound, got %v", err)
	}
}

func TestDocService_Update_AppliesFields(t *testing.T) {
	repo := newStubDocRepo()
	svc := NewDocService(repo, &memActivity{}, zerolog.Nop())

	d := seedDoc(t, repo, "API Reference", "reference")

	title := "API Reference v2"
	if err := svc.Update(context.Background(), adminCaller(), d.ID, ports.DocPatch{Title: &title}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored := repo.docs[d.ID]
	if stored.Title != "API Reference v2" || stored.Category != "reference" {
		t.Fatalf("patch applied incorrectly: %+v", stored)
	}
}

func TestDocService_Delete_RecordsActivity(t *testing.T) {
	repo := newStubDocRepo()
	trail := &memActivity{}
	svc := NewDocService(repo, trail, zerolog.Nop())

	d := seedDoc(t, repo, "Old Guide", "guides")

	if err := svc.Delete(context.Background(), adminCaller(), d.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.docs[d.ID]; ok {
		t.Fatalf("doc still stored after delete")
	}
	if len(trail.entries) != 1 || trail.entries[0].Action != "doc.delete" {
		t.Fatalf("expected doc.delete activity, got %+v", trail.entries)
	}
}
