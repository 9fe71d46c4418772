package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelierhq/studio-api/internal/core/domain"
)

const (
	collectionContactMessages = "contact_messages"
	collectionProjectRequests = "project_requests"
)

// IntakeRepository persists public form submissions: contact messages and
// project requests. Both are insert-only from the public surface.
type IntakeRepository struct {
	contacts *mongo.Collection
	requests *mongo.Collection
}

func NewIntakeRepository(db *mongo.Database) *IntakeRepository {
	return &IntakeRepository{
		contacts: db.Collection(collectionContactMessages),
		requests: db.Collection(collectionProjectRequests),
	}
}

func (r *IntakeRepository) CreateContact(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *m
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.contacts.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return &rec, nil
}

func (r *IntakeRepository) CreateRequest(ctx context.Context, req *domain.ProjectRequest) (*domain.ProjectRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *req
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.requests.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert project request: %w", err)
	}
	return &rec, nil
}

func (r *IntakeRepository) ListContacts(ctx context.Context) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.contacts.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ContactMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode contact messages: %w", err)
	}
	return out, nil
}

func (r *IntakeRepository) ListRequests(ctx context.Context) ([]*domain.ProjectRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.requests.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list project requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ProjectRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode project requests: %w", err)
	}
	return out, nil
}

func (r *IntakeRepository) CountRequests(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.requests.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count project requests: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the email secondary indexes on both collections.
func (r *IntakeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	model := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := r.contacts.Indexes().CreateOne(ctx, model); err != nil {
		return err
	}
	_, err := r.requests.Indexes().CreateOne(ctx, model)
	return err
}
