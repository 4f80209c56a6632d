package worker

import (
	"context"
	"errors"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// BalanceSyncer refreshes the mirrored balance from the backend.
type BalanceSyncer interface {
	SyncBalance(ctx context.Context) (domain.Money, error)
}

// BalanceSyncJob is the periodic balance refresh. Failures are logged, never returned.
type BalanceSyncJob struct {
	Syncer BalanceSyncer
}

// Process implements Job.
func (j BalanceSyncJob) Process(ctx context.Context) error {
	_, err := j.Syncer.SyncBalance(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotLoggedIn):
		logger.FromContext(ctx).Debug(LogMsgBalanceSyncSkipped)
	default:
		logger.FromContext(ctx).Warn(LogMsgBalanceSyncFailed, "error", err)
	}
	return nil
}
