package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

// Balances applies balance deltas on the backend.
type Balances interface {
	AddBalance(ctx context.Context, email string, delta domain.Money) (*backend.Account, error)
}

// Service trades a batch of same-tier items for a chance at the next tier.
type Service interface {
	Rules(ctx context.Context) []domain.ContractRule
	Eligible(ctx context.Context, from domain.Rarity) ([]domain.Item, error)
	Complete(ctx context.Context, from domain.Rarity, uids []string) (*domain.ContractResult, error)
}

type service struct {
	rules    Rules
	rng      reveal.RandomSource
	balances Balances
	store    *session.Store
	locks    *concurrency.LockManager
	bus      event.Bus
	now      func() time.Time
}

// NewService wires contracts. bus may be nil.
func NewService(rules Rules, rng reveal.RandomSource, balances Balances, store *session.Store,
	locks *concurrency.LockManager, bus event.Bus) Service {
	if rules == nil {
		rules = DefaultRules()
	}
	if rng == nil {
		rng = reveal.DefaultSource()
	}
	return &service{
		rules:    rules,
		rng:      rng,
		balances: balances,
		store:    store,
		locks:    locks,
		bus:      bus,
		now:      time.Now,
	}
}

func (s *service) Rules(ctx context.Context) []domain.ContractRule {
	return s.rules.Ordered()
}

func (s *service) rule(from domain.Rarity) (domain.ContractRule, error) {
	rule, ok := s.rules[from]
	if !ok {
		return domain.ContractRule{}, fmt.Errorf("%w: %s", domain.ErrContractRuleNotFound, from)
	}
	return rule, nil
}

func (s *service) Eligible(ctx context.Context, from domain.Rarity) ([]domain.Item, error) {
	if _, err := s.rule(from); err != nil {
		return nil, err
	}
	user, err := s.store.User()
	if err != nil {
		return nil, err
	}
	out := []domain.Item{}
	for _, item := range user.Inventory {
		if item.Rarity == from {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *service) Complete(ctx context.Context, from domain.Rarity, uids []string) (*domain.ContractResult, error) {
	log := logger.FromContext(ctx)

	rule, err := s.rule(from)
	if err != nil {
		return nil, err
	}
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
	inputs, err := selectInputs(user, rule, uids)
	if err != nil {
		return nil, err
	}
	if user.Balance < rule.Cost {
		return nil, fmt.Errorf("%w: balance %s, cost %s",
			domain.ErrInsufficientFunds, user.Balance.Format(), rule.Cost.Format())
	}

	balance := user.Balance
	if rule.Cost > 0 {
		acct, err := s.balances.AddBalance(ctx, email, -rule.Cost)
		if err != nil {
			log.Warn(LogMsgDebitFailed, "from", from, "error", err)
			return nil, fmt.Errorf("failed to debit contract cost: %w", err)
		}
		balance -= rule.Cost
		if acct != nil && acct.HasBalance {
			balance = acct.Balance
		}
	}

	success := s.rng.Float64()*100 < float64(rule.SuccessRate)
	var reward *domain.Item
	if success {
		r := s.reward(rule, inputs)
		reward = &r
	}

	updated, err := s.store.Update(func(u *domain.User) error {
		u.Balance = balance
		u.RemoveItems(uids...)
		if reward != nil {
			u.Inventory = append(u.Inventory, *reward)
			u.Stats.ContractsCompleted++
			u.AddXP(XPPerContract)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgContractDone, "from", rule.From, "to", rule.To, "success", success, "cost", rule.Cost)
	if s.bus != nil {
		e := event.NewContractCompletedEvent(event.ContractCompletedPayloadV1{
			UserEmail: email,
			From:      rule.From,
			To:        rule.To,
			Success:   success,
			Cost:      rule.Cost,
			Consumed:  len(inputs),
			Reward:    reward,
		})
		if err := s.bus.Publish(ctx, e); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}

	return &domain.ContractResult{
		Success:  success,
		Rule:     rule,
		Consumed: inputs,
		Reward:   reward,
		Balance:  updated.Balance,
	}, nil
}

// selectInputs resolves uids to exactly rule.Required distinct owned items of the input tier.
func selectInputs(user *domain.User, rule domain.ContractRule, uids []string) ([]domain.Item, error) {
	if len(uids) != rule.Required {
		return nil, fmt.Errorf("%w: need %d items, got %d", domain.ErrContractInvalid, rule.Required, len(uids))
	}
	seen := make(map[string]bool, len(uids))
	inputs := make([]domain.Item, 0, len(uids))
	for _, uid := range uids {
		if seen[uid] {
			return nil, fmt.Errorf("%w: item %s selected twice", domain.ErrContractInvalid, uid)
		}
		seen[uid] = true

		i := user.FindItem(uid)
		if i < 0 {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrContractInvalid, domain.ErrNotInInventory, uid)
		}
		item := user.Inventory[i]
		if item.Rarity != rule.From {
			return nil, fmt.Errorf("%w: item %s is %s, want %s", domain.ErrContractInvalid, uid, item.Rarity, rule.From)
		}
		inputs = append(inputs, item)
	}
	return inputs, nil
}

// reward derives the upgraded item from the first input, priced at the
// average input price times RewardMultiplier.
func (s *service) reward(rule domain.ContractRule, inputs []domain.Item) domain.Item {
	var sum domain.Money
	for _, in := range inputs {
		sum += in.Price
	}
	avg := domain.MoneyFromFloat(sum.Float() / float64(len(inputs)))

	now := s.now().UTC()
	item := inputs[0]
	item.ID = uuid.NewString()
	item.UID = uuid.NewString()
	item.Rarity = rule.To
	item.RarityName = rule.To.Title()
	item.Color = rule.To.Info().Color
	item.Price = avg * RewardMultiplier
	item.Upgraded = true
	item.ObtainedAt = &now
	return item
}
