package opening

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

// Catalog resolves cases with their contents.
type Catalog interface {
	Get(ctx context.Context, id string) (*domain.Case, error)
}

// Balances applies balance deltas on the backend.
type Balances interface {
	AddBalance(ctx context.Context, email string, delta domain.Money) (*backend.Account, error)
}

// Service runs single-case reveals for the signed-in user.
type Service interface {
	Open(ctx context.Context, caseID string) (*View, error)
	Spin(ctx context.Context, id uuid.UUID, layout reveal.Layout) (*View, error)
	Complete(ctx context.Context, id uuid.UUID) (*View, error)
	Get(ctx context.Context, id uuid.UUID) (*View, error)
	Active(ctx context.Context) (*View, error)
	Odds(ctx context.Context, caseID string) ([]reveal.ItemOdds, error)
}

type entry struct {
	mu        sync.Mutex
	reveal    *reveal.Reveal
	email     string
	caseID    string
	caseName  string
	price     domain.Money
	balance   domain.Money
	item      *domain.Item
	committed bool
}

type service struct {
	engine   *reveal.Engine
	catalog  Catalog
	balances Balances
	store    *session.Store
	locks    *concurrency.LockManager
	bus      event.Bus
	now      func() time.Time

	mu      sync.Mutex
	active  map[string]uuid.UUID // email -> unsettled reveal
	live    map[uuid.UUID]*entry
	settled *expirable.LRU[uuid.UUID, *entry]
}

// NewService wires the opening flow. bus may be nil.
func NewService(engine *reveal.Engine, catalog Catalog, balances Balances, store *session.Store,
	locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		engine:   engine,
		catalog:  catalog,
		balances: balances,
		store:    store,
		locks:    locks,
		bus:      bus,
		now:      time.Now,
		active:   make(map[string]uuid.UUID),
		live:     make(map[uuid.UUID]*entry),
		settled:  expirable.NewLRU[uuid.UUID, *entry](SettledCacheSize, nil, SettledCacheTTL),
	}
}

func (s *service) Open(ctx context.Context, caseID string) (*View, error) {
	log := logger.FromContext(ctx)

	user, err := s.store.User()
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(user.Email)
	defer unlock()

	// Re-read under the lock so the guard sees the latest balance.
	if user, err = s.store.User(); err != nil {
		return nil, err
	}
	if s.activeFor(user.Email) {
		return nil, domain.ErrRevealInProgress
	}

	cs, err := s.catalog.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(cs.Contents) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyCase, cs.ID)
	}
	if user.Balance < cs.Price {
		return nil, fmt.Errorf("%w: balance %s, price %s",
			domain.ErrInsufficientFunds, user.Balance.Format(), cs.Price.Format())
	}

	// Building is pure, so do it before money moves.
	r, err := s.engine.NewReveal(cs.Contents, nil)
	if err != nil {
		return nil, err
	}

	acct, err := s.balances.AddBalance(ctx, user.Email, -cs.Price)
	if err != nil {
		log.Warn(LogMsgDebitFailed, "case_id", cs.ID, "error", err)
		return nil, fmt.Errorf("failed to debit case price: %w", err)
	}
	balance := user.Balance - cs.Price
	if acct != nil && acct.HasBalance {
		balance = acct.Balance
	}
	if _, err := s.store.Update(func(u *domain.User) error {
		u.Balance = balance
		return nil
	}); err != nil {
		log.Error(LogMsgMirrorWriteFailed, "error", err)
	}

	e := &entry{
		reveal:   r,
		email:    user.Email,
		caseID:   cs.ID,
		caseName: cs.Name,
		price:    cs.Price,
		balance:  balance,
	}
	v, p := e.view(), s.payload(e)
	s.mu.Lock()
	s.active[user.Email] = r.ID
	s.live[r.ID] = e
	s.mu.Unlock()

	log.Info(LogMsgRevealOpened, "reveal_id", r.ID, "case_id", cs.ID, "price", cs.Price, "balance", balance)
	s.publish(ctx, event.RevealStripBuilt, p)
	return v, nil
}

func (s *service) Spin(ctx context.Context, id uuid.UUID, layout reveal.Layout) (*View, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRevealNotFound, id)
	}

	e.mu.Lock()
	offset, err := e.reveal.Spin(layout, s.now())
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	v, p := e.view(), s.payload(e)
	e.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgRevealSpinning, "reveal_id", id, "offset", offset)
	s.publish(ctx, event.RevealAnimating, p)
	return v, nil
}

// Complete settles on the first signal, timer or renderer. Later signals
// return the settled view unchanged.
func (s *service) Complete(ctx context.Context, id uuid.UUID) (*View, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRevealNotFound, id)
	}

	e.mu.Lock()
	if e.committed {
		v := e.view()
		e.mu.Unlock()
		return v, nil
	}

	winner, _, err := e.reveal.Settle(s.now())
	if err == nil {
		err = s.commit(e, winner)
	}
	if err != nil {
		e.mu.Unlock()
		if errors.Is(err, domain.ErrNotLoggedIn) {
			// The session that paid for it is gone; the reveal is lost like
			// a reload mid-spin, and the next login can open again.
			s.forget(id, e.email)
			logger.FromContext(ctx).Warn(LogMsgRevealAbandoned, "reveal_id", id, "email", e.email)
			return nil, err
		}
		logger.FromContext(ctx).Error(LogMsgCommitFailed, "reveal_id", id, "error", err)
		return nil, err
	}
	v, p := e.view(), s.payload(e)
	e.mu.Unlock()

	s.mu.Lock()
	s.dropLocked(id, e.email)
	s.settled.Add(id, e)
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgRevealSettled, "reveal_id", id, "winner", winner.Name, "price", winner.Price)
	s.publish(ctx, event.RevealSettled, p)
	return v, nil
}

func (s *service) forget(id uuid.UUID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked(id, email)
}

func (s *service) dropLocked(id uuid.UUID, email string) {
	delete(s.live, id)
	if s.active[email] == id {
		delete(s.active, email)
	}
}

// commit appends the winner to the mirror. It runs with e.mu held.
func (s *service) commit(e *entry, winner domain.Item) error {
	unlock := s.locks.Lock(e.email)
	defer unlock()

	now := s.now().UTC()
	item := winner
	item.UID = uuid.NewString()
	item.ObtainedAt = &now
	if item.RarityName == "" {
		item.RarityName = item.Rarity.Info().Name
	}
	item.Color = item.DisplayColor()

	user, err := s.store.Update(func(u *domain.User) error {
		if u.Email != e.email {
			return domain.ErrNotLoggedIn
		}
		u.Inventory = append(u.Inventory, item)
		u.Stats.CasesOpened++
		u.Stats.TotalSpent += e.price
		u.Stats.TotalWon += winner.Price
		u.AddXP(XPPerOpening)
		return nil
	})
	if err != nil {
		return err
	}

	e.item = &item
	e.balance = user.Balance
	e.committed = true
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRevealNotFound, id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view(), nil
}

func (s *service) Active(ctx context.Context) (*View, error) {
	email := s.store.Email()
	if email == "" {
		return nil, domain.ErrNotLoggedIn
	}
	s.mu.Lock()
	id, ok := s.active[email]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrRevealNotFound
	}
	return s.Get(ctx, id)
}

func (s *service) Odds(ctx context.Context, caseID string) ([]reveal.ItemOdds, error) {
	cs, err := s.catalog.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return s.engine.Odds(cs.Contents), nil
}

func (s *service) activeFor(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[email]
	return ok
}

func (s *service) lookup(id uuid.UUID) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.live[id]; ok {
		return e, true
	}
	return s.settled.Get(id)
}

// payload must be called with e.mu held or before e is shared.
func (s *service) payload(e *entry) event.RevealPayloadV1 {
	snap := e.reveal.Snapshot()
	p := event.RevealPayloadV1{
		RevealID:     snap.ID.String(),
		UserEmail:    e.email,
		CaseID:       e.caseID,
		CaseName:     e.caseName,
		Price:        e.price,
		Phase:        string(snap.Phase),
		Source:       string(snap.Strip.Source),
		StripLength:  snap.Strip.Len(),
		WinIndex:     snap.Strip.WinIndex,
		TargetOffset: snap.Offset,
		SpinMs:       snap.SpinMs,
		Balance:      e.balance,
	}
	if snap.Phase == reveal.PhaseSettled {
		w := snap.Strip.Winner
		p.Winner = &w
	}
	return p
}

func (s *service) publish(ctx context.Context, t event.Type, p event.RevealPayloadV1) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewRevealEvent(t, p)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", t, "error", err)
	}
}
