package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// LicenseService implements license use cases. Licenses hang off projects,
// so client visibility is derived from project ownership.
type LicenseService struct {
	repo       ports.LicenseRepository
	projects   ports.ProjectRepository
	activity   ports.ActivityRepository
	maxDomains int
	logger     zerolog.Logger
}

func NewLicenseService(repo ports.LicenseRepository, projects ports.ProjectRepository, activity ports.ActivityRepository, maxDomains int, logger zerolog.Logger) *LicenseService {
	if maxDomains <= 0 {
		maxDomains = 3
	}
	return &LicenseService{repo: repo, projects: projects, activity: activity, maxDomains: maxDomains, logger: logger}
}

// Issue creates a license for an existing project.
func (s *LicenseService) Issue(ctx context.Context, caller ports.Caller, input ports.IssueLicenseInput) (*domain.License, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	license := &domain.License{
		ProjectID: input.ProjectID,
		Key:       generateLicenseKey(),
		Status:    domain.LicenseActive,
		Expiry:    input.Expiry,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, license)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to issue license")
		return nil, err
	}

	s.logger.Info().Str("license_id", created.ID).Str("key", created.Key).Msg("license issued")
	recordActivity(ctx, s.activity, s.logger, caller, "license.issue", map[string]string{"license_id": created.ID})
	return created, nil
}

// Get returns the license-domain association view. MaxDomains is advisory:
// the count may legitimately exceed it (enforcement is not implemented).
func (s *LicenseService) Get(ctx context.Context, caller ports.Caller, id string) (*ports.LicenseDetail, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	license, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, caller, license); err != nil {
		return nil, err
	}

	domains, err := s.repo.ListDomains(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.LicenseDetail{License: license, Domains: domains, MaxDomains: s.maxDomains}, nil
}

// List returns licenses visible to the caller: everything for admins
// (optionally narrowed to one project), the caller's own projects' licenses
// for clients.
func (s *LicenseService) List(ctx context.Context, caller ports.Caller, projectID string) ([]*domain.License, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	if caller.Role != domain.RoleClient {
		return s.repo.List(ctx, projectID)
	}

	owned, err := s.projects.List(ctx, caller.ClientID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(owned))
	for _, p := range owned {
		if projectID == "" || p.ID == projectID {
			ids = append(ids, p.ID)
		}
	}
	return s.repo.ListByProjects(ctx, ids)
}

// RegisterDomain binds a domain name to a license. The configured maximum
// is not enforced here; it is only reported through the detail view.
func (s *LicenseService) RegisterDomain(ctx context.Context, caller ports.Caller, licenseID, domainName string) (*domain.LicenseDomain, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	license, err := s.repo.FindByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, caller, license); err != nil {
		return nil, err
	}

	binding := &domain.LicenseDomain{
		LicenseID: licenseID,
		Domain:    domainName,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.AddDomain(ctx, binding)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("license_id", licenseID).Str("domain", domainName).Msg("license domain registered")
	return created, nil
}

// UpdateStatus moves a license between active, locked and expired.
func (s *LicenseService) UpdateStatus(ctx context.Context, caller ports.Caller, id string, status string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}

	switch domain.LicenseStatus(status) {
	case domain.LicenseActive, domain.LicenseLocked, domain.LicenseExpired:
	default:
		return domain.ErrInvalidStatus
	}

	if err := s.repo.PatchStatus(ctx, id, domain.LicenseStatus(status)); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "license.status", map[string]string{"license_id": id, "status": status})
	return nil
}

func (s *LicenseService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "license.delete", map[string]string{"license_id": id})
	return nil
}

// authorize checks that a client caller owns the project the license
// belongs to. Admins pass through.
func (s *LicenseService) authorize(ctx context.Context, caller ports.Caller, license *domain.License) error {
	if caller.Role != domain.RoleClient {
		return nil
	}
	project, err := s.projects.FindByID(ctx, license.ProjectID)
	if err != nil {
		return err
	}
	if project.ClientID != caller.ClientID {
		return domain.ErrForbidden
	}
	return nil
}

// generateLicenseKey returns a license key in the format LIC-XXXXXXXX.
func generateLicenseKey() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("LIC-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("LIC-%08X", b)
}
