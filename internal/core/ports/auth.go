package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// ProfileRepository defines persistence for authentication profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
}

// AuthService implements registration and login for both portal roles.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role, clientID string) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
}
