package service

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// DashboardService produces the admin back-office summary views.
type DashboardService struct {
	clients  ports.ClientRepository
	projects ports.ProjectRepository
	blog     ports.BlogRepository
	intake   ports.IntakeRepository
	activity ports.ActivityRepository
}

func NewDashboardService(
	clients ports.ClientRepository,
	projects ports.ProjectRepository,
	blog ports.BlogRepository,
	intake ports.IntakeRepository,
	activity ports.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		clients:  clients,
		projects: projects,
		blog:     blog,
		intake:   intake,
		activity: activity,
	}
}

// Counts runs four independent count queries. They are not a consistent
// snapshot: concurrent writes may show through. Summary-card accuracy only.
func (s *DashboardService) Counts(ctx context.Context, caller ports.Caller) (*ports.Counts, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	clients, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.blog.Count(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.intake.CountRequests(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.Counts{
		Clients:   clients,
		Projects:  projects,
		BlogPosts: posts,
		Requests:  requests,
	}, nil
}

// RecentActivity returns the newest audit trail entries.
func (s *DashboardService) RecentActivity(ctx context.Context, caller ports.Caller, limit int) ([]*domain.ActivityEntry, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.activity.Recent(ctx, limit)
}
