package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// BonusNotReadyError carries the wait until the next claim.
type BonusNotReadyError struct {
	Remaining time.Duration
}

func (e *BonusNotReadyError) Error() string {
	return fmt.Sprintf(ErrMsgBonusNotReadyFmt, domain.ErrMsgBonusNotReady, e.Remaining.Round(time.Second))
}

func (e *BonusNotReadyError) Unwrap() error {
	return domain.ErrBonusNotReady
}

// remaining is zero once now is strictly past the interval. At the boundary
// itself the smallest positive wait is reported.
func remaining(last *time.Time, now time.Time) time.Duration {
	if last == nil {
		return 0
	}
	due := last.Add(DailyBonusInterval)
	if now.After(due) {
		return 0
	}
	return max(due.Sub(now), time.Nanosecond)
}

func (s *service) BonusStatus(ctx context.Context) (*BonusStatus, error) {
	user, err := s.store.User()
	if err != nil {
		return nil, err
	}
	now := s.now()
	left := remaining(user.LastDailyBonus, now)
	st := &BonusStatus{Ready: left == 0, Amount: DailyBonusAmount, RemainingMs: left.Milliseconds()}
	if left > 0 {
		next := now.Add(left)
		st.NextAt = &next
	}
	return st, nil
}

// ClaimDailyBonus credits the bonus at most once per DailyBonusInterval.
func (s *service) ClaimDailyBonus(ctx context.Context) (*BonusResult, error) {
	email := s.store.Email()
	if email == "" {
		return nil, domain.ErrNotLoggedIn
	}
	unlock := s.locks.Lock(email)
	defer unlock()

	user, err := s.store.User()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if left := remaining(user.LastDailyBonus, now); left > 0 {
		return nil, &BonusNotReadyError{Remaining: left}
	}

	balance, err := s.credit(ctx, email, user.Balance, DailyBonusAmount)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreditFailedFmt, "daily bonus", err)
	}
	updated, err := s.store.Update(func(u *domain.User) error {
		u.Balance = balance
		u.LastDailyBonus = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgBonusClaimed, "amount", DailyBonusAmount, "balance", updated.Balance)
	s.publish(ctx, event.NewBonusClaimedEvent(email, DailyBonusAmount, updated.Balance, now))
	return &BonusResult{
		Amount:    DailyBonusAmount,
		Balance:   updated.Balance,
		ClaimedAt: now,
		NextAt:    now.Add(DailyBonusInterval),
	}, nil
}
