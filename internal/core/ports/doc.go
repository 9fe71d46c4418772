package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// DocPatch carries the mutable fields of a doc link record.
type DocPatch struct {
	Title    *string
	Category *string
	URL      *string
}

// DocRepository defines persistence for doc link records.
type DocRepository interface {
	Create(ctx context.Context, d *domain.Doc) (*domain.Doc, error)
	List(ctx context.Context, category string) ([]*domain.Doc, error)
	Patch(ctx context.Context, id string, patch DocPatch) error
	Delete(ctx context.Context, id string) error
}

// CreateDocInput carries the fields for a new doc link.
type CreateDocInput struct {
	Title    string
	Category string
	URL      string
}

// DocService manages doc link records (admin surface, public reads).
type DocService interface {
	List(ctx context.Context, category string) ([]*domain.Doc, error)
	Create(ctx context.Context, caller Caller, input CreateDocInput) (*domain.Doc, error)
	Update(ctx context.Context, caller Caller, id string, patch DocPatch) error
	Delete(ctx context.Context, caller Caller, id string) error
}
