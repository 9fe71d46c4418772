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
	"github.com/atelierhq/studio-api/internal/core/ports"
)

const collectionDocs = "docs"

// DocRepository persists doc link records.
type DocRepository struct {
	col *mongo.Collection
}

func NewDocRepository(db *mongo.Database) *DocRepository {
	return &DocRepository{col: db.Collection(collectionDocs)}
}

func (r *DocRepository) Create(ctx context.Context, d *domain.Doc) (*domain.Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *d
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert doc: %w", err)
	}
	return &rec, nil
}

// List returns docs ordered by creation time descending, optionally
// restricted to a category.
func (r *DocRepository) List(ctx context.Context, category string) ([]*domain.Doc, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Doc
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode docs: %w", err)
	}
	return out, nil
}

// Patch merges the given fields. Returns ErrDocNotFound when the id does
// not exist; an empty patch is a no-op.
func (r *DocRepository) Patch(ctx context.Context, id string, patch ports.DocPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if len(set) == 0 {
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("patch doc: %w", err)
		}
		if n == 0 {
			return domain.ErrDocNotFound
		}
		return nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("patch doc: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDocNotFound
	}
	return nil
}

func (r *DocRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete doc: %w", err)
	}
	return nil
}

// EnsureIndexes creates the category secondary index.
func (r *DocRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}
