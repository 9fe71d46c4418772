package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// TicketService implements support ticket use cases. Client-role callers
// are always pinned to their own client scope.
type TicketService struct {
	repo   ports.TicketRepository
	logger zerolog.Logger
}

func NewTicketService(repo ports.TicketRepository, logger zerolog.Logger) *TicketService {
	return &TicketService{repo: repo, logger: logger}
}

func (s *TicketService) Create(ctx context.Context, caller ports.Caller, input ports.CreateTicketInput) (*domain.SupportTicket, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	clientID := input.ClientID
	if caller.Role == domain.RoleClient {
		clientID = caller.ClientID
	}
	if clientID == "" {
		return nil, domain.ErrForbidden
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	ticket := &domain.SupportTicket{
		ClientID:      clientID,
		Subject:       input.Subject,
		Status:        domain.TicketOpen,
		Priority:      priority,
		AttachmentURL: input.AttachmentURL,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, ticket)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("failed to create ticket")
		return nil, err
	}

	s.logger.Info().Str("ticket_id", created.ID).Str("priority", created.Priority).Msg("ticket opened")
	return created, nil
}

// Get returns a ticket joined with its message thread. Client callers may
// only read tickets belonging to their own client.
func (s *TicketService) Get(ctx context.Context, caller ports.Caller, id string) (*ports.TicketDetail, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleClient && ticket.ClientID != caller.ClientID {
		return nil, domain.ErrForbidden
	}

	messages, err := s.repo.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.TicketDetail{Ticket: ticket, Messages: messages}, nil
}

func (s *TicketService) List(ctx context.Context, caller ports.Caller) ([]*domain.SupportTicket, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	clientID := ""
	if caller.Role == domain.RoleClient {
		clientID = caller.ClientID
	}
	return s.repo.List(ctx, clientID)
}

// AddMessage appends a reply to a ticket thread. The author is the caller.
func (s *TicketService) AddMessage(ctx context.Context, caller ports.Caller, ticketID, body string) (*domain.TicketMessage, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleClient && ticket.ClientID != caller.ClientID {
		return nil, domain.ErrForbidden
	}

	msg := &domain.TicketMessage{
		TicketID:  ticketID,
		AuthorID:  caller.ProfileID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.AddMessage(ctx, msg)
}

// UpdateStatus moves a ticket to a new status. Mounted admin-only at the router.
func (s *TicketService) UpdateStatus(ctx context.Context, caller ports.Caller, id string, status string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}

	switch domain.TicketStatus(status) {
	case domain.TicketOpen, domain.TicketInProgress, domain.TicketResolved, domain.TicketClosed:
	default:
		return domain.ErrInvalidStatus
	}

	if err := s.repo.PatchStatus(ctx, id, domain.TicketStatus(status)); err != nil {
		return err
	}
	s.logger.Info().Str("ticket_id", id).Str("status", status).Msg("ticket status changed")
	return nil
}
