package ports

import (
	"context"
	"time"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// LicenseRepository defines persistence for licenses and their domain
// bindings. Lists are ordered by creation time descending.
type LicenseRepository interface {
	Create(ctx context.Context, l *domain.License) (*domain.License, error)
	FindByID(ctx context.Context, id string) (*domain.License, error)
	List(ctx context.Context, projectID string) ([]*domain.License, error)
	ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.License, error)
	PatchStatus(ctx context.Context, id string, status domain.LicenseStatus) error
	Delete(ctx context.Context, id string) error
	AddDomain(ctx context.Context, d *domain.LicenseDomain) (*domain.LicenseDomain, error)
	ListDomains(ctx context.Context, licenseID string) ([]*domain.LicenseDomain, error)
}

// IssueLicenseInput carries the fields for issuing a new license.
type IssueLicenseInput struct {
	ProjectID string
	Expiry    *time.Time
}

// LicenseDetail is the license-domain association view: a license joined
// with its registered domains plus the configured per-license maximum.
// MaxDomains is advisory; registration is not rejected at the limit.
type LicenseDetail struct {
	License    *domain.License
	Domains    []*domain.LicenseDomain
	MaxDomains int
}

// LicenseService defines use-case operations for licenses.
type LicenseService interface {
	Issue(ctx context.Context, caller Caller, input IssueLicenseInput) (*domain.License, error)
	Get(ctx context.Context, caller Caller, id string) (*LicenseDetail, error)
	List(ctx context.Context, caller Caller, projectID string) ([]*domain.License, error)
	RegisterDomain(ctx context.Context, caller Caller, licenseID, domainName string) (*domain.LicenseDomain, error)
	UpdateStatus(ctx context.Context, caller Caller, id string, status string) error
	Delete(ctx context.Context, caller Caller, id string) error
}
