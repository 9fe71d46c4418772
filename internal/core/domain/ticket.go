package domain

import "time"

// TicketStatus represents the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// SupportTicket is a client-opened support request, scoped to its client.
type SupportTicket struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	ClientID      string       `json:"client_id" bson:"client_id"`
	Subject       string       `json:"subject" bson:"subject"`
	Status        TicketStatus `json:"status" bson:"status"`
	Priority      string       `json:"priority" bson:"priority"`
	AttachmentURL string       `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}

// TicketMessage is a single reply on a ticket thread, authored by either
// the client or an admin.
type TicketMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	TicketID  string    `json:"ticket_id" bson:"ticket_id"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
