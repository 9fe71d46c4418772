package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// IntakeRepository defines persistence for the two public form collections.
// Lists are ordered by creation time descending.
type IntakeRepository interface {
	CreateContact(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	CreateRequest(ctx context.Context, r *domain.ProjectRequest) (*domain.ProjectRequest, error)
	ListContacts(ctx context.Context) ([]*domain.ContactMessage, error)
	ListRequests(ctx context.Context) ([]*domain.ProjectRequest, error)
	CountRequests(ctx context.Context) (int64, error)
}

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// RequestInput is a project-request form submission.
type RequestInput struct {
	Name          string
	Email         string
	Budget        string
	Timeframe     string
	Description   string
	AttachmentURL string
}

// IntakeService handles the public submission front door. Submits are
// deliberately ungated: they require no caller identity. The admin-facing
// listings are gated.
type IntakeService interface {
	SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactMessage, error)
	SubmitRequest(ctx context.Context, input RequestInput) (*domain.ProjectRequest, error)
	ListContacts(ctx context.Context, caller Caller) ([]*domain.ContactMessage, error)
	ListRequests(ctx context.Context, caller Caller) ([]*domain.ProjectRequest, error)
}
