package economy

import (
	"context"
	"time"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

// Balances applies balance deltas on the backend.
type Balances interface {
	AddBalance(ctx context.Context, email string, delta domain.Money) (*backend.Account, error)
}

// SellResult is returned after an item is sold back.
type SellResult struct {
	Item    domain.Item  `json:"item"`
	Credit  domain.Money `json:"credit"`
	Balance domain.Money `json:"balance"`
}

// BonusStatus reports when the daily bonus can next be claimed.
type BonusStatus struct {
	Ready       bool         `json:"ready"`
	Amount      domain.Money `json:"amount"`
	RemainingMs int64        `json:"remainingMs"`
	NextAt      *time.Time   `json:"nextAt,omitempty"`
}

// BonusResult is returned after a successful claim.
type BonusResult struct {
	Amount    domain.Money `json:"amount"`
	Balance   domain.Money `json:"balance"`
	ClaimedAt time.Time    `json:"claimedAt"`
	NextAt    time.Time    `json:"nextAt"`
}

// Service defines the interface for sell and bonus operations
type Service interface {
	Sell(ctx context.Context, uid string) (*SellResult, error)
	BonusStatus(ctx context.Context) (*BonusStatus, error)
	ClaimDailyBonus(ctx context.Context) (*BonusResult, error)
}

type service struct {
	balances Balances
	store    *session.Store
	locks    *concurrency.LockManager
	bus      event.Bus
	now      func() time.Time
}

// NewService creates a new economy service. bus may be nil.
func NewService(balances Balances, store *session.Store, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		balances: balances,
		store:    store,
		locks:    locks,
		bus:      bus,
		now:      time.Now,
	}
}

// credit applies delta on the backend and returns the balance to adopt.
func (s *service) credit(ctx context.Context, email string, current, delta domain.Money) (domain.Money, error) {
	acct, err := s.balances.AddBalance(ctx, email, delta)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCreditFailed, "delta", delta, "error", err)
		return 0, err
	}
	if acct != nil && acct.HasBalance {
		return acct.Balance, nil
	}
	return current + delta, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
	}
}
