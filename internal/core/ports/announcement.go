package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// AnnouncementRepository defines persistence for site announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	// LatestActive returns the most recently created active announcement.
	LatestActive(ctx context.Context) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// AnnouncementService manages the site-wide banner. Latest-wins: setting a
// new announcement supersedes earlier ones without touching them.
type AnnouncementService interface {
	Latest(ctx context.Context) (*domain.Announcement, error)
	Set(ctx context.Context, caller Caller, text string, active bool) (*domain.Announcement, error)
	List(ctx context.Context, caller Caller) ([]*domain.Announcement, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

// ActivityRepository is the append-only audit trail. There is intentionally
// no update or delete operation.
type ActivityRepository interface {
	Append(ctx context.Context, e *domain.ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]*domain.ActivityEntry, error)
}
