package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

type stubAnnouncementRepo struct {
	items  []*domain.Announcement
	nextID int
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	clone := *a
	r.nextID++
	clone.ID = fmt.Sprintf("ann_%d", r.nextID)
	r.items = append(r.items, &clone)
	out := clone
	return &out, nil
}

func (r *stubAnnouncementRepo) LatestActive(_ context.Context) (*domain.Announcement, error) {
	sorted := make([]*domain.Announcement, len(r.items))
	copy(sorted, r.items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	for _, a := range sorted {
		if a.Active {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAnnouncementNotFound
}

func (r *stubAnnouncementRepo) List(_ context.Context) ([]*domain.Announcement, error) {
	return r.items, nil
}

func (r *stubAnnouncementRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.items {
		if a.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestAnnouncementService_LatestWins(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, &memActivity{}, zerolog.Nop())

	if _, err := svc.Set(context.Background(), adminCaller(), "old banner", true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.Set(context.Background(), adminCaller(), "new banner", true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	latest, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if latest.Text != "new banner" {
		t.Fatalf("expected latest-wins, got %q", latest.Text)
	}

	// Earlier announcements are history, not deleted.
	all, err := svc.List(context.Background(), adminCaller())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both announcements retained, got %d", len(all))
	}
}

func TestAnnouncementService_InactiveSkipped(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, &memActivity{}, zerolog.Nop())

	if _, err := svc.Set(context.Background(), adminCaller(), "visible", true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.Set(context.Background(), adminCaller(), "prepared but off", false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	latest, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if latest.Text != "visible" {
		t.Fatalf("expected newest active announcement, got %q", latest.Text)
	}
}

func TestAnnouncementService_NoActiveBanner(t *testing.T) {
	svc := NewAnnouncementService(&stubAnnouncementRepo{}, &memActivity{}, zerolog.Nop())

	if _, err := svc.Latest(context.Background()); !errors.Is(err, domain.ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestAnnouncementService_SetRequiresIdentity(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, &memActivity{}, zerolog.Nop())

	if _, err := svc.Set(context.Background(), ports.Caller{}, "x", true); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected zero store writes, got %d", len(repo.items))
	}
}
