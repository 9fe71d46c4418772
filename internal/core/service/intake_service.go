package service

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// Throttle abstracts the duplicate-submission store (Redis).
type Throttle interface {
	IsDuplicate(ctx context.Context, form, email, body string) (bool, error)
	Mark(ctx context.Context, form, email, body string) error
}

// Notifier abstracts the transactional email collaborator.
type Notifier interface {
	Send(ctx context.Context, to, subject, html string) error
}

// IntakeService handles the public submission front door. Submissions are
// deliberately ungated: forms are a front door, admin tables are not.
type IntakeService struct {
	repo       ports.IntakeRepository
	throttle   Throttle
	notifier   Notifier
	adminEmail string
	log        zerolog.Logger
}

func NewIntakeService(repo ports.IntakeRepository, throttle Throttle, notifier Notifier, adminEmail string, log zerolog.Logger) *IntakeService {
	return &IntakeService{repo: repo, throttle: throttle, notifier: notifier, adminEmail: adminEmail, log: log}
}

// SubmitContact stores a contact message and notifies the admin address.
// Identical submissions within the throttle window are rejected; a throttle
// backend failure is logged and the submission proceeds.
func (s *IntakeService) SubmitContact(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
	if err := s.checkThrottle(ctx, "contact", input.Email, input.Message); err != nil {
		return nil, err
	}

	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.CreateContact(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store contact message")
		return nil, err
	}
	s.markThrottle(ctx, "contact", input.Email, input.Message)

	s.log.Info().Str("email", input.Email).Msg("contact message received")

	if err := s.notify(ctx, "New contact message",
		fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			html.EscapeString(input.Name), html.EscapeString(input.Email), html.EscapeString(input.Message))); err != nil {
		return created, err
	}
	return created, nil
}

// SubmitRequest stores a project request and notifies the admin address.
func (s *IntakeService) SubmitRequest(ctx context.Context, input ports.RequestInput) (*domain.ProjectRequest, error) {
	if err := s.checkThrottle(ctx, "request", input.Email, input.Description); err != nil {
		return nil, err
	}

	req := &domain.ProjectRequest{
		Name:          input.Name,
		Email:         input.Email,
		Budget:        input.Budget,
		Timeframe:     input.Timeframe,
		Description:   input.Description,
		AttachmentURL: input.AttachmentURL,
		CreatedAt:     time.Now().UTC(),
	}
	created, err := s.repo.CreateRequest(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store project request")
		return nil, err
	}
	s.markThrottle(ctx, "request", input.Email, input.Description)

	s.log.Info().Str("email", input.Email).Str("budget", input.Budget).Msg("project request received")

	if err := s.notify(ctx, "New project request",
		fmt.Sprintf("<p><strong>%s</strong> (%s) requested a project:</p><p>%s</p><p>Budget: %s — Timeframe: %s</p>",
			html.EscapeString(input.Name), html.EscapeString(input.Email), html.EscapeString(input.Description),
			html.EscapeString(input.Budget), html.EscapeString(input.Timeframe))); err != nil {
		return created, err
	}
	return created, nil
}

func (s *IntakeService) ListContacts(ctx context.Context, caller ports.Caller) ([]*domain.ContactMessage, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.repo.ListContacts(ctx)
}

func (s *IntakeService) ListRequests(ctx context.Context, caller ports.Caller) ([]*domain.ProjectRequest, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.repo.ListRequests(ctx)
}

func (s *IntakeService) checkThrottle(ctx context.Context, form, email, body string) error {
	if s.throttle == nil {
		return nil
	}
	isDup, err := s.throttle.IsDuplicate(ctx, form, email, body)
	if err != nil {
		s.log.Warn().Err(err).Str("form", form).Msg("throttle check failed, accepting anyway")
		return nil
	}
	if isDup {
		s.log.Debug().Str("form", form).Str("email", email).Msg("duplicate submission rejected")
		return domain.ErrDuplicateSubmission
	}
	return nil
}

func (s *IntakeService) markThrottle(ctx context.Context, form, email, body string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Mark(ctx, form, email, body); err != nil {
		s.log.Warn().Err(err).Str("form", form).Msg("failed to set throttle key")
	}
}

// notify emails the admin address. The record is already stored when this
// runs; a provider failure still propagates so the caller sees it.
func (s *IntakeService) notify(ctx context.Context, subject, body string) error {
	if s.notifier == nil {
		return nil
	}
	if err := s.notifier.Send(ctx, s.adminEmail, subject, body); err != nil {
		s.log.Error().Err(err).Str("subject", subject).Msg("admin notification failed")
		return err
	}
	return nil
}
