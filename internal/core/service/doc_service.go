package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// DocService manages doc link records.
type DocService struct {
	repo     ports.DocRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewDocService(repo ports.DocRepository, activity ports.ActivityRepository, logger zerolog.Logger) *DocService {
	return &DocService{repo: repo, activity: activity, logger: logger}
}

func (s *DocService) List(ctx context.Context, category string) ([]*domain.Doc, error) {
	return s.repo.List(ctx, category)
}

func (s *DocService) Create(ctx context.Context, caller ports.Caller, input ports.CreateDocInput) (*domain.Doc, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	doc := &domain.Doc{
		Title:     input.Title,
		Category:  input.Category,
		URL:       input.URL,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "doc.create", map[string]string{"title": created.Title})
	return created, nil
}

func (s *DocService) Update(ctx context.Context, caller ports.Caller, id string, patch ports.DocPatch) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "doc.update", map[string]string{"id": id})
	return nil
}

func (s *DocService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "doc.delete", map[string]string{"id": id})
	return nil
}
