package ports

import (
	"context"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

// TicketRepository defines persistence for support tickets and their
// message threads. List narrows by the client_id index when clientID is
// non-empty; messages are returned oldest first (thread order).
type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error)
	FindByID(ctx context.Context, id string) (*domain.SupportTicket, error)
	List(ctx context.Context, clientID string) ([]*domain.SupportTicket, error)
	PatchStatus(ctx context.Context, id string, status domain.TicketStatus) error
	AddMessage(ctx context.Context, m *domain.TicketMessage) (*domain.TicketMessage, error)
	ListMessages(ctx context.Context, ticketID string) ([]*domain.TicketMessage, error)
}

// CreateTicketInput carries a new support ticket. ClientID is only honored
// for admin callers; client callers are pinned to their own scope.
type CreateTicketInput struct {
	ClientID      string
	Subject       string
	Priority      string
	AttachmentURL string
}

// TicketDetail is a ticket joined with its message thread.
type TicketDetail struct {
	Ticket   *domain.SupportTicket
	Messages []*domain.TicketMessage
}

// TicketService defines use-case operations for support tickets.
type TicketService interface {
	Create(ctx context.Context, caller Caller, input CreateTicketInput) (*domain.SupportTicket, error)
	Get(ctx context.Context, caller Caller, id string) (*TicketDetail, error)
	List(ctx context.Context, caller Caller) ([]*domain.SupportTicket, error)
	AddMessage(ctx context.Context, caller Caller, ticketID, body string) (*domain.TicketMessage, error)
	UpdateStatus(ctx context.Context, caller Caller, id string, status string) error
}
