package battle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

// Backend is the battle lobby API.
type Backend interface {
	ListBattles(ctx context.Context, status domain.BattleStatus) ([]domain.Battle, error)
	CreateBattle(ctx context.Context, req domain.CreateBattleRequest) (*domain.Battle, error)
	JoinBattle(ctx context.Context, id, email string) (*domain.Battle, error)
	StartBattle(ctx context.Context, id string) (*domain.Battle, error)
	GetBattle(ctx context.Context, id string) (*domain.Battle, error)
}

// Catalog resolves round cases sent by id.
type Catalog interface {
	Get(ctx context.Context, id string) (*domain.Case, error)
}

// CreateInput is a new lobby request from the signed-in user.
type CreateInput struct {
	Mode       domain.BattleMode `json:"mode" validate:"required,battlemode"`
	CaseIDs    []string          `json:"case_ids" validate:"required,min=1,max=20,dive,required"`
	EntryPrice *domain.Money     `json:"entry_price,omitempty" validate:"omitempty,gte=0"`
	IsPrivate  bool              `json:"is_private"`
}

// Options tunes playback.
type Options struct {
	// RequireServerWinner fails a round whose roll carries no winner
	// instead of drawing one locally.
	RequireServerWinner bool
}

// Service proxies the lobby and plays battles back.
type Service interface {
	List(ctx context.Context, status domain.BattleStatus) ([]domain.Battle, error)
	Create(ctx context.Context, in CreateInput) (*domain.Battle, error)
	Join(ctx context.Context, id string) (*domain.Battle, error)
	Start(ctx context.Context, id string) (*domain.Battle, error)
	Get(ctx context.Context, id string) (*domain.Battle, error)
	Play(ctx context.Context, id string, layout reveal.Layout) (*Playback, error)
	Playback(ctx context.Context, id string) (*Playback, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	backend Backend
	catalog Catalog
	engine  *reveal.Engine
	rng     reveal.RandomSource
	store   *session.Store
	bus     event.Bus
	opts    Options

	mu        sync.Mutex
	playbacks *expirable.LRU[string, *playback]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService wires the battle flow. rng breaks ties between equal totals; bus may be nil.
func NewService(b Backend, catalog Catalog, engine *reveal.Engine, rng reveal.RandomSource,
	store *session.Store, bus event.Bus, opts Options) Service {
	if rng == nil {
		rng = reveal.DefaultSource()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &service{
		backend:   b,
		catalog:   catalog,
		engine:    engine,
		rng:       rng,
		store:     store,
		bus:       bus,
		opts:      opts,
		playbacks: expirable.NewLRU[string, *playback](PlaybackCacheSize, nil, PlaybackCacheTTL),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *service) List(ctx context.Context, status domain.BattleStatus) ([]domain.Battle, error) {
	if status == "" {
		status = domain.BattleStatusWaiting
	}
	return s.backend.ListBattles(ctx, status)
}

func (s *service) Create(ctx context.Context, in CreateInput) (*domain.Battle, error) {
	email := s.store.Email()
	if email == "" {
		return nil, domain.ErrNotLoggedIn
	}
	if !in.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBattleMode, in.Mode)
	}
	if len(in.CaseIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one case is required", domain.ErrInvalidInput)
	}
	return s.backend.CreateBattle(ctx, domain.CreateBattleRequest{
		CreatorEmail: email,
		Mode:         in.Mode,
		CaseIDs:      in.CaseIDs,
		EntryPrice:   in.EntryPrice,
		IsPrivate:    in.IsPrivate,
	})
}

func (s *service) Join(ctx context.Context, id string) (*domain.Battle, error) {
	email := s.store.Email()
	if email == "" {
		return nil, domain.ErrNotLoggedIn
	}
	b, err := s.backend.JoinBattle(ctx, id, email)
	return b, battleErr(err, id)
}

func (s *service) Start(ctx context.Context, id string) (*domain.Battle, error) {
	b, err := s.backend.StartBattle(ctx, id)
	return b, battleErr(err, id)
}

func (s *service) Get(ctx context.Context, id string) (*domain.Battle, error) {
	b, err := s.backend.GetBattle(ctx, id)
	return b, battleErr(err, id)
}

// Play fetches the battle and starts its playback in the background.
func (s *service) Play(ctx context.Context, id string, layout reveal.Layout) (*Playback, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.playbacks.Get(id); ok && existing.running() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrPlaybackRunning, id)
	}
	p := newPlayback(b)
	s.playbacks.Add(id, p)
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPlaybackStarted, "battle_id", id, "rounds", len(b.Rounds), "players", len(b.Players))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		runCtx := logger.WithRequestID(s.ctx, logger.GetRequestID(ctx))
		s.run(runCtx, b, p, layout)
	}()
	return p.snapshot(), nil
}

func (s *service) Playback(ctx context.Context, id string) (*Playback, error) {
	s.mu.Lock()
	p, ok := s.playbacks.Get(id)
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlaybackNotFound, id)
	}
	return p.snapshot(), nil
}

// Shutdown aborts running playbacks and waits for them to stop.
func (s *service) Shutdown(ctx context.Context) error {
	s.cancel()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
	}
}

func (s *service) recordWin(ctx context.Context, winner string) bool {
	email := s.store.Email()
	if email == "" || !strings.EqualFold(email, winner) {
		return false
	}
	if _, err := s.store.Update(func(u *domain.User) error {
		u.Stats.BattlesWon++
		return nil
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgRecordWinFailed, "error", err)
	}
	return true
}

func battleErr(err error, id string) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return fmt.Errorf("%w: %s", domain.ErrBattleNotFound, id)
	}
	return err
}
