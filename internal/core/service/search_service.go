package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// SearchService implements the global free-text search. Each bucket is an
// independent full-collection scan with case-insensitive unanchored
// substring matching; there is no search index behind this.
type SearchService struct {
	blog     ports.BlogRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewSearchService(blog ports.BlogRepository, projects ports.ProjectRepository, logger zerolog.Logger) *SearchService {
	return &SearchService{blog: blog, projects: projects, logger: logger}
}

// Everything runs the three scans. The portfolio and projects buckets are
// fed from one scan of the shared projects collection: the two views share
// data today, and the duplication is intentional.
func (s *SearchService) Everything(ctx context.Context, term string) (*ports.SearchResults, error) {
	results := &ports.SearchResults{
		Blog:      []*domain.BlogPost{},
		Portfolio: []*domain.Project{},
		Projects:  []*domain.Project{},
	}
	if strings.TrimSpace(term) == "" {
		return results, nil
	}
	lowered := strings.ToLower(term)

	posts, err := s.blog.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), lowered) ||
			strings.Contains(strings.ToLower(p.Excerpt), lowered) ||
			strings.Contains(strings.ToLower(p.Content), lowered) {
			results.Blog = append(results.Blog, p)
		}
	}

	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if projectMatches(p, lowered) {
			results.Portfolio = append(results.Portfolio, p)
			results.Projects = append(results.Projects, p)
		}
	}

	s.logger.Debug().
		Str("term", term).
		Int("blog", len(results.Blog)).
		Int("projects", len(results.Projects)).
		Msg("search completed")

	return results, nil
}

// projectMatches reports whether the title, description or any tech entry
// contains term. term must already be lowercased.
func projectMatches(p *domain.Project, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, t := range p.Tech {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}
