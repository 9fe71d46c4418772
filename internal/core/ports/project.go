package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// ProjectPatch carries the mutable fields of a project. Nil pointers are
// absent fields. Tech replaces the whole list when non-nil.
type ProjectPatch struct {
	ClientID    *string
	Title       *string
	Slug        *string
	Status      *string
	Description *string
	Tech        *[]string
	DemoURL     *string
	DocsURL     *string
	Featured    *bool
}

// ProjectRepository defines persistence for projects. List narrows by the
// client_id index when clientID is non-empty and returns records ordered by
// creation time descending.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Project, error)
	List(ctx context.Context, clientID string) ([]*domain.Project, error)
	Patch(ctx context.Context, id string, patch ProjectPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	ClientID    string
	Title       string
	Slug        string
	Status      string
	Description string
	Tech        []string
	DemoURL     string
	DocsURL     string
	Featured    bool
}

// ListProjectsInput selects which projects to return. The service overrides
// ClientID with the caller's own scope for client-role callers.
type ListProjectsInput struct {
	ClientID     string
	FeaturedOnly bool
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	// Portfolio returns the featured projects for the public marketing site.
	Portfolio(ctx context.Context) ([]*domain.Project, error)
	List(ctx context.Context, caller Caller, input ListProjectsInput) ([]*domain.Project, error)
	GetBySlug(ctx context.Context, caller Caller, slug string) (*domain.Project, error)
	Create(ctx context.Context, caller Caller, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, caller Caller, id string, patch ProjectPatch) error
	Delete(ctx context.Context, caller Caller, id string) error
}
