package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// ProjectService implements project use cases for all three surfaces.
type ProjectService struct {
	repo     ports.ProjectRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, activity ports.ActivityRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, activity: activity, logger: logger}
}

// Portfolio returns the featured projects for the public marketing site.
// Featured is filtered in memory after the fetch; the collection is small.
func (s *ProjectService) Portfolio(ctx context.Context) ([]*domain.Project, error) {
	all, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	featured := make([]*domain.Project, 0, len(all))
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// List returns projects for the caller. Client-role callers are pinned to
// their own client scope regardless of the requested filter; the by-client
// index narrows the working set before the in-memory featured filter runs.
func (s *ProjectService) List(ctx context.Context, caller ports.Caller, input ports.ListProjectsInput) ([]*domain.Project, error) {
	clientID := input.ClientID
	if caller.Role == domain.RoleClient {
		clientID = caller.ClientID
	}

	projects, err := s.repo.List(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if !input.FeaturedOnly {
		return projects, nil
	}
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetBySlug retrieves one project. Client-role callers only see projects
// owned by their client.
func (s *ProjectService) GetBySlug(ctx context.Context, caller ports.Caller, slug string) (*domain.Project, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleClient && p.ClientID != caller.ClientID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, caller ports.Caller, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	// Slug uniqueness is enforced twice: here, and by the unique index.
	if _, err := s.repo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	status := domain.ProjectStatus(input.Status)
	if status == "" {
		status = domain.ProjectActive
	}

	project := &domain.Project{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Slug:        input.Slug,
		Status:      status,
		Description: input.Description,
		Tech:        input.Tech,
		DemoURL:     input.DemoURL,
		DocsURL:     input.DocsURL,
		Featured:    input.Featured,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", input.Slug).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Str("client_id", created.ClientID).Msg("project created")
	recordActivity(ctx, s.activity, s.logger, caller, "project.create", map[string]string{"slug": created.Slug})
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, caller ports.Caller, id string, patch ports.ProjectPatch) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}

	if patch.Slug != nil {
		existing, err := s.repo.FindBySlug(ctx, *patch.Slug)
		if err == nil && existing.ID != id {
			return domain.ErrSlugTaken
		}
		if err != nil && !errors.Is(err, domain.ErrProjectNotFound) {
			return err
		}
	}

	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "project.update", map[string]string{"id": id})
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "project.delete", map[string]string{"id": id})
	return nil
}
