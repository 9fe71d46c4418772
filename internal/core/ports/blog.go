package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// BlogPatch carries the mutable fields of a blog post. Nil pointers are
// absent fields. Any applied patch stamps updated_at server-side.
type BlogPatch struct {
	Title      *string
	Slug       *string
	Excerpt    *string
	Content    *string
	Published  *bool
	CoverImage *string
}

// BlogRepository defines persistence for blog posts. List returns records
// ordered by creation time descending.
type BlogRepository interface {
	Create(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]*domain.BlogPost, error)
	Patch(ctx context.Context, id string, patch BlogPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateBlogPostInput carries all data needed to create a blog post.
type CreateBlogPostInput struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	Published  bool
	CoverImage string
}

// ListBlogInput selects which posts to return. Search applies a
// case-insensitive substring match across title, slug, content and excerpt
// (OR semantics) after the fetch; this is a full collection scan.
type ListBlogInput struct {
	Search        string
	PublishedOnly bool
}

// BlogService defines use-case operations for blog posts.
type BlogService interface {
	List(ctx context.Context, input ListBlogInput) ([]*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error)
	Create(ctx context.Context, caller Caller, input CreateBlogPostInput) (*domain.BlogPost, error)
	Update(ctx context.Context, caller Caller, id string, patch BlogPatch) error
	Delete(ctx context.Context, caller Caller, id string) error
}
