package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// SearchResults holds the three result buckets of the global search.
// Portfolio and Projects are fed from the same physical collection: the
// public portfolio view and the client-facing project list currently share
// one table, and the duplication is intentional (revisit if the underlying
// split is ever introduced).
type SearchResults struct {
	Blog      []*domain.BlogPost `json:"blog"`
	Portfolio []*domain.Project  `json:"portfolio"`
	Projects  []*domain.Project  `json:"projects"`
}

// SearchService performs the free-text global search. Matching is a
// case-insensitive unanchored substring test over full collection scans,
// not an index lookup.
type SearchService interface {
	Everything(ctx context.Context, term string) (*SearchResults, error)
}
