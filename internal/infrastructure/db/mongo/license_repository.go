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
	collectionLicenses       = "licenses"
	collectionLicenseDomains = "license_domains"
)

// LicenseRepository persists licenses and their domain bindings.
type LicenseRepository struct {
	licenses *mongo.Collection
	domains  *mongo.Collection
}

func NewLicenseRepository(db *mongo.Database) *LicenseRepository {
	return &LicenseRepository{
		licenses: db.Collection(collectionLicenses),
		domains:  db.Collection(collectionLicenseDomains),
	}
}

func (r *LicenseRepository) Create(ctx context.Context, l *domain.License) (*domain.License, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *l
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.licenses.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert license: %w", err)
	}
	return &rec, nil
}

func (r *LicenseRepository) FindByID(ctx context.Context, id string) (*domain.License, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.License
	if err := r.licenses.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLicenseNotFound
		}
		return nil, fmt.Errorf("find license: %w", err)
	}
	return &l, nil
}

// List returns licenses ordered by creation time descending. A non-empty
// projectID narrows the query through the project_id index.
func (r *LicenseRepository) List(ctx context.Context, projectID string) ([]*domain.License, error) {
	filter := bson.M{}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	return r.find(ctx, filter)
}

// ListByProjects returns all licenses belonging to any of the given projects.
func (r *LicenseRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.License, error) {
	if len(projectIDs) == 0 {
		return []*domain.License{}, nil
	}
	return r.find(ctx, bson.M{"project_id": bson.M{"$in": projectIDs}})
}

func (r *LicenseRepository) find(ctx context.Context, filter bson.M) ([]*domain.License, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.licenses.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.License
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode licenses: %w", err)
	}
	return out, nil
}

func (r *LicenseRepository) PatchStatus(ctx context.Context, id string, status domain.LicenseStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.licenses.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("patch license status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLicenseNotFound
	}
	return nil
}

// Delete removes the license record only; its domain bindings are left in
// place (no cascade).
func (r *LicenseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.licenses.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}

func (r *LicenseRepository) AddDomain(ctx context.Context, d *domain.LicenseDomain) (*domain.LicenseDomain, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := *d
	rec.ID = primitive.NewObjectID().Hex()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if _, err := r.domains.InsertOne(ctx, &rec); err != nil {
		return nil, fmt.Errorf("insert license domain: %w", err)
	}
	return &rec, nil
}

func (r *LicenseRepository) ListDomains(ctx context.Context, licenseID string) ([]*domain.LicenseDomain, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.domains.Find(ctx, bson.M{"license_id": licenseID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list license domains: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.LicenseDomain
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode license domains: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the project_id and license_id secondary indexes.
func (r *LicenseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.licenses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.domains.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "license_id", Value: 1}},
	})
	return err
}
