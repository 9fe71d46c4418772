package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

type stubLicenseRepo struct {
	licenses map[string]*domain.License
	domains  map[string][]*domain.LicenseDomain
	nextID   int
}

func newStubLicenseRepo() *stubLicenseRepo {
	return &stubLicenseRepo{
		licenses: make(map[string]*domain.License),
		domains:  make(map[string][]*domain.LicenseDomain),
	}
}

func (r *stubLicenseRepo) Create(_ context.Context, l *domain.License) (*domain.License, error) {
	clone := *l
	r.nextID++
	clone.ID = fmt.Sprintf("lic_%d", r.nextID)
	r.licenses[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLicenseRepo) FindByID(_ context.Context, id string) (*domain.License, error) {
	l, ok := r.licenses[id]
	if !ok {
		return nil, domain.ErrLicenseNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLicenseRepo) List(_ context.Context, projectID string) ([]*domain.License, error) {
	out := make([]*domain.License, 0, len(r.licenses))
	for _, l := range r.licenses {
		if projectID != "" && l.ProjectID != projectID {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubLicenseRepo) ListByProjects(_ context.Context, projectIDs []string) ([]*domain.License, error) {
	wanted := make(map[string]struct{}, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = struct{}{}
	}
	out := make([]*domain.License, 0)
	for _, l := range r.licenses {
		if _, ok := wanted[l.ProjectID]; ok {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLicenseRepo) PatchStatus(_ context.Context, id string, status domain.LicenseStatus) error {
	l, ok := r.licenses[id]
	if !ok {
		return domain.ErrLicenseNotFound
	}
	l.Status = status
	return nil
}

func (r *stubLicenseRepo) Delete(_ context.Context, id string) error {
	delete(r.licenses, id)
	return nil
}

func (r *stubLicenseRepo) AddDomain(_ context.Context, d *domain.LicenseDomain) (*domain.LicenseDomain, error) {
	clone := *d
	clone.ID = fmt.Sprintf("dom_%d", len(r.domains[d.LicenseID])+1)
	r.domains[d.LicenseID] = append(r.domains[d.LicenseID], &clone)
	out := clone
	return &out, nil
}

func (r *stubLicenseRepo) ListDomains(_ context.Context, licenseID string) ([]*domain.LicenseDomain, error) {
	return r.domains[licenseID], nil
}

var licenseKeyPattern = regexp.MustCompile(`^LIC-[0-9A-F]{8}$`)

func TestLicenseService_Issue_KeyFormatAndProjectCheck(t *testing.T) {
	licRepo := newStubLicenseRepo()
	projRepo := newStubProjectRepo()
	svc := NewLicenseService(licRepo, projRepo, &memActivity{}, 3, zerolog.Nop())

	p := seedProject(t, projRepo, "delivered-app", "client_1", false)

	lic, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: p.ID})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if !licenseKeyPattern.MatchString(lic.Key) {
		t.Fatalf("unexpected key format: %s", lic.Key)
	}
	if lic.Status != domain.LicenseActive {
		t.Fatalf("expected active status, got %s", lic.Status)
	}

	if _, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: "ghost"}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestLicenseService_List_ClientScopedToOwnProjects(t *testing.T) {
	licRepo := newStubLicenseRepo()
	projRepo := newStubProjectRepo()
	svc := NewLicenseService(licRepo, projRepo, &memActivity{}, 3, zerolog.Nop())

	mine := seedProject(t, projRepo, "mine", "client_1", false)
	theirs := seedProject(t, projRepo, "theirs", "client_2", false)

	if _, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: mine.ID}); err != nil {
		t.Fatalf("seed license: %v", err)
	}
	if _, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: theirs.ID}); err != nil {
		t.Fatalf("seed license: %v", err)
	}

	got, err := svc.List(context.Background(), clientCaller("client_1"), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ProjectID != mine.ID {
		t.Fatalf("expected only licenses of own projects, got %+v", got)
	}

	all, err := svc.List(context.Background(), adminCaller(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin to see all licenses, got %d", len(all))
	}
}

func TestLicenseService_Get_ForbiddenAcrossClients(t *testing.T) {
	licRepo := newStubLicenseRepo()
	projRepo := newStubProjectRepo()
	svc := NewLicenseService(licRepo, projRepo, &memActivity{}, 5, zerolog.Nop())

	p := seedProject(t, projRepo, "secret", "client_2", false)
	lic, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: p.ID})
	if err != nil {
		t.Fatalf("seed license: %v", err)
	}

	if _, err := svc.Get(context.Background(), clientCaller("client_1"), lic.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	detail, err := svc.Get(context.Background(), clientCaller("client_2"), lic.ID)
	if err != nil {
		t.Fatalf("owner read should succeed, got %v", err)
	}
	if detail.MaxDomains != 5 {
		t.Fatalf("expected configured max surfaced, got %d", detail.MaxDomains)
	}
}

func TestLicenseService_RegisterDomain_NotCappedAtMax(t *testing.T) {
	licRepo := newStubLicenseRepo()
	projRepo := newStubProjectRepo()
	svc := NewLicenseService(licRepo, projRepo, &memActivity{}, 2, zerolog.Nop())

	p := seedProject(t, projRepo, "app", "client_1", false)
	lic, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: p.ID})
	if err != nil {
		t.Fatalf("seed license: %v", err)
	}

	// Register one past the configured maximum; all must succeed.
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("site%d.example.com", i)
		if _, err := svc.RegisterDomain(context.Background(), clientCaller("client_1"), lic.ID, name); err != nil {
			t.Fatalf("registration %d failed: %v", i, err)
		}
	}

	detail, err := svc.Get(context.Background(), adminCaller(), lic.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(detail.Domains) != 3 {
		t.Fatalf("expected 3 registered domains, got %d", len(detail.Domains))
	}
	if detail.MaxDomains != 2 {
		t.Fatalf("expected advisory max of 2, got %d", detail.MaxDomains)
	}
}

func TestLicenseService_UpdateStatus_Validation(t *testing.T) {
	licRepo := newStubLicenseRepo()
	projRepo := newStubProjectRepo()
	svc := NewLicenseService(licRepo, projRepo, &memActivity{}, 3, zerolog.Nop())

	p := seedProject(t, projRepo, "app", "", false)
	lic, err := svc.Issue(context.Background(), adminCaller(), ports.IssueLicenseInput{ProjectID: p.ID})
	if err != nil {
		t.Fatalf("seed license: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), adminCaller(), lic.ID, "revoked"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), adminCaller(), lic.ID, "locked"); err != nil {
		t.Fatalf("valid status failed: %v", err)
	}
}
