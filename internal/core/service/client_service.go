package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// ClientService manages client company records.
type ClientService struct {
	repo     ports.ClientRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, activity ports.ActivityRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, activity: activity, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, caller ports.Caller, input ports.CreateClientInput) (*domain.Client, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	client := &domain.Client{
		ProfileID: input.ProfileID,
		Company:   input.Company,
		Phone:     input.Phone,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Str("company", input.Company).Msg("failed to create client")
		return nil, err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "client.create", map[string]string{"client_id": created.ID})
	return created, nil
}

func (s *ClientService) List(ctx context.Context, caller ports.Caller) ([]*domain.Client, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, caller ports.Caller, id string, patch ports.ClientPatch) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "client.update", map[string]string{"client_id": id})
	return nil
}

func (s *ClientService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "client.delete", map[string]string{"client_id": id})
	return nil
}
