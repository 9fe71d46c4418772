package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

const (
	collectionTickets        = "support_tickets"
	collectionTicketMessages = "ticket_messages"
)

// TicketRepository persists support tickets and their message threads.
type TicketRepository struct {
	tickets  *mongo.Collection
	messages *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) *TicketRepository {
	return &TicketRepository{
		tickets:  db.Collection(collectionTickets),
		messages: db.Collection(collectionTicketMessages),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *t
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.tickets.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	return &rec, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*domain.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.SupportTicket
	if err := r.tickets.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return &t, nil
}

// List returns tickets ordered by creation time descending. A non-empty
// clientID narrows the query through the client_id index.
func (r *TicketRepository) List(ctx context.Context, clientID string) ([]*domain.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	cur, err := r.tickets.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.SupportTicket
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return out, nil
}

func (r *TicketRepository) PatchStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.tickets.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("patch ticket status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) AddMessage(ctx context.Context, m *domain.TicketMessage) (*domain.TicketMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *m
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.messages.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert ticket message: %w", err)
	}
	return &rec, nil
}

// ListMessages returns a ticket's thread in chronological order.
func (r *TicketRepository) ListMessages(ctx context.Context, ticketID string) ([]*domain.TicketMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.messages.Find(ctx, bson.M{"ticket_id": ticketID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list ticket messages: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.TicketMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode ticket messages: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the client_id and ticket_id secondary indexes.
func (r *TicketRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.tickets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ticket_id", Value: 1}},
	})
	return err
}
