package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// ClientPatch carries the mutable fields of a client record. Nil pointers
// are absent fields and leave the stored value untouched.
type ClientPatch struct {
	Company *string
	Phone   *string
	Status  *string
}

// ClientRepository defines persistence for client company records.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Patch(ctx context.Context, id string, patch ClientPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateClientInput carries the fields for registering a new client company.
type CreateClientInput struct {
	ProfileID string
	Company   string
	Phone     string
	Status    string
}

// ClientService manages client company records (admin surface).
type ClientService interface {
	Create(ctx context.Context, caller Caller, input CreateClientInput) (*domain.Client, error)
	List(ctx context.Context, caller Caller) ([]*domain.Client, error)
	Update(ctx context.Context, caller Caller, id string, patch ClientPatch) error
	Delete(ctx context.Context, caller Caller, id string) error
}
