package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// BlogService implements blog post use cases.
type BlogService struct {
	repo     ports.BlogRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, activity ports.ActivityRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, activity: activity, logger: logger}
}

// List returns posts newest first. When Search is set, the whole collection
// is loaded and filtered in memory with a case-insensitive substring match
// across title, slug, content and excerpt (OR semantics). This is a full
// table scan, not an index lookup; fine at this collection's scale.
func (s *BlogService) List(ctx context.Context, input ports.ListBlogInput) ([]*domain.BlogPost, error) {
	posts, err := s.repo.List(ctx, input.PublishedOnly)
	if err != nil {
		return nil, err
	}
	if input.Search == "" {
		return posts, nil
	}

	term := strings.ToLower(input.Search)
	out := make([]*domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if blogPostMatches(p, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// blogPostMatches reports whether any searchable field contains term.
// term must already be lowercased.
func blogPostMatches(p *domain.BlogPost, term string) bool {
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Slug), term) ||
		strings.Contains(strings.ToLower(p.Content), term) ||
		strings.Contains(strings.ToLower(p.Excerpt), term)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !p.Published {
		return nil, domain.ErrBlogPostNotFound
	}
	return p, nil
}

func (s *BlogService) Create(ctx context.Context, caller ports.Caller, input ports.CreateBlogPostInput) (*domain.BlogPost, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrBlogPostNotFound) {
		return nil, err
	}

	post := &domain.BlogPost{
		Title:      input.Title,
		Slug:       input.Slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Published:  input.Published,
		CoverImage: input.CoverImage,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", input.Slug).Msg("failed to create blog post")
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Bool("published", created.Published).Msg("blog post created")
	recordActivity(ctx, s.activity, s.logger, caller, "blog.create", map[string]string{"slug": created.Slug})
	return created, nil
}

func (s *BlogService) Update(ctx context.Context, caller ports.Caller, id string, patch ports.BlogPatch) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}

	if patch.Slug != nil {
		existing, err := s.repo.FindBySlug(ctx, *patch.Slug)
		if err == nil && existing.ID != id {
			return domain.ErrSlugTaken
		}
		if err != nil && !errors.Is(err, domain.ErrBlogPostNotFound) {
			return err
		}
	}

	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "blog.update", map[string]string{"id": id})
	return nil
}

func (s *BlogService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "blog.delete", map[string]string{"id": id})
	return nil
}
