package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// Counts is the dashboard summary of collection cardinalities. The four
// counts come from independent queries and are not snapshot-consistent
// with each other; good enough for a summary card, nothing more.
type Counts struct {
	Clients   int64 `json:"clients"`
	Projects  int64 `json:"projects"`
	BlogPosts int64 `json:"blog_posts"`
	Requests  int64 `json:"requests"`
}

// DashboardService provides the admin back-office summary views.
type DashboardService interface {
	Counts(ctx context.Context, caller Caller) (*Counts, error)
	RecentActivity(ctx context.Context, caller Caller, limit int) ([]*domain.ActivityEntry, error)
}
