package session

import (
	"context"
	"fmt"
	"time"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// SyncTimeout bounds a single balance refresh.
const SyncTimeout = 5 * time.Second

// AccountReader fetches the authoritative account.
type AccountReader interface {
	GetUserByEmail(ctx context.Context, email string) (*backend.Account, error)
}

// Syncer re-reads the server balance into the mirror.
type Syncer struct {
	store   *Store
	backend AccountReader
	locks   *concurrency.LockManager
	bus     event.Bus
}

// NewSyncer creates a Syncer. bus may be nil.
func NewSyncer(store *Store, b AccountReader, locks *concurrency.LockManager, bus event.Bus) *Syncer {
	return &Syncer{store: store, backend: b, locks: locks, bus: bus}
}

// SyncBalance adopts the backend balance. It serialises with other balance
// changes for the same user. Failures leave the mirror untouched.
func (s *Syncer) SyncBalance(ctx context.Context) (domain.Money, error) {
	email := s.store.Email()
	if email == "" {
		return 0, domain.ErrNotLoggedIn
	}

	// Held across the read so a debit cannot commit between the GET and the
	// write-back and then be overwritten by the older server balance.
	unlock := s.locks.Lock(email)
	defer unlock()

	ctx, cancel := context.WithTimeout(ctx, SyncTimeout)
	defer cancel()

	acct, err := s.backend.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to sync balance: %w", err)
	}
	if !acct.HasBalance {
		return 0, fmt.Errorf("%w: account response has no balance", domain.ErrBackendUnavailable)
	}

	var previous domain.Money
	user, err := s.store.Update(func(u *domain.User) error {
		if u.Email != email {
			return domain.ErrNotLoggedIn
		}
		previous = u.Balance
		u.Balance = acct.Balance
		if u.ID == "" {
			u.ID = acct.ID
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if previous != user.Balance {
		logger.FromContext(ctx).Info("Balance synced", "email", email, "previous", previous, "balance", user.Balance)
	}
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewBalanceSyncedEvent(email, previous, user.Balance)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish balance sync", "error", err)
		}
	}
	return user.Balance, nil
}
