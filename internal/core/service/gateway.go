package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// requireIdentity is the mutation gateway: every privileged operation calls
// it before performing any write, so a failed check leaves zero side
// effects. Role-level authorization is enforced a layer up, at the router.
func requireIdentity(caller ports.Caller) error {
	if !caller.Resolved() {
		return domain.ErrUnauthorized
	}
	return nil
}

// recordActivity appends an audit entry for an admin-originated mutation.
// Append failure is logged, never propagated: the mutation already took
// effect and the trail is best-effort.
func recordActivity(ctx context.Context, repo ports.ActivityRepository, log zerolog.Logger, caller ports.Caller, action string, meta map[string]string) {
	if repo == nil {
		return
	}
	entry := &domain.ActivityEntry{
		ProfileID: caller.ProfileID,
		Action:    action,
		Meta:      meta,
	}
	if err := repo.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to append activity entry")
	}
}
