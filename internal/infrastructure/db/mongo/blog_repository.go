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
	"github.com/atelierhq/studio-api/internal/core/ports"
)

const collectionBlogPosts = "blog_posts"

// BlogRepository persists blog posts.
type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(collectionBlogPosts)}
}

func (r *BlogRepository) Create(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *p
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, &rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("insert blog post: %w", err)
	}
	return &rec, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug returns at most one record; slug carries a unique index.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.BlogPost
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	return &p, nil
}

// List returns posts ordered by creation time descending, optionally
// restricted to published ones.
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool) ([]*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.BlogPost
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}
	return out, nil
}

// Patch merges the given fields and stamps updated_at. Returns
// ErrBlogPostNotFound when the id does not exist; an empty patch is a no-op
// and does not stamp updated_at.
func (r *BlogRepository) Patch(ctx context.Context, id string, patch ports.BlogPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Slug != nil {
		set["slug"] = *patch.Slug
	}
	if patch.Excerpt != nil {
		set["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Published != nil {
		set["published"] = *patch.Published
	}
	if patch.CoverImage != nil {
		set["cover_image"] = *patch.CoverImage
	}

	if len(set) == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return nil
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("patch blog post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBlogPostNotFound
	}
	return nil
}

// Delete removes the record. Deleting an absent id is not an error.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique slug index.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
