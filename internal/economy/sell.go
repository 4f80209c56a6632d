package economy

import (
	"context"
	"fmt"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// Sell credits the item's price on the backend, then drops it from the mirror.
func (s *service) Sell(ctx context.Context, uid string) (*SellResult, error) {
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
	i := user.FindItem(uid)
	if i < 0 {
		return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, uid, domain.ErrNotInInventory)
	}
	item := user.Inventory[i]

	balance, err := s.credit(ctx, email, user.Balance, item.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreditFailedFmt, item.Name, err)
	}

	updated, err := s.store.Update(func(u *domain.User) error {
		u.RemoveItems(uid)
		u.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSold, "item", item.Name, "price", item.Price, "balance", updated.Balance)
	s.publish(ctx, event.NewItemSoldEvent(email, item, updated.Balance))
	return &SellResult{Item: item, Credit: item.Price, Balance: updated.Balance}, nil
}
