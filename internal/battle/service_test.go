package battle

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

const (
	alice = "alice@example.com"
	bob   = "bob@example.com"
)

var testLayout = reveal.Layout{
	Cards:         []reveal.Rect{{Left: 60, Width: 80}, {Left: 220, Width: 80}},
	ViewportWidth: 1280,
}

type fixture struct {
	svc     Service
	store   *session.Store
	backend *MockBackend
	catalog *MockCatalog

	mu     sync.Mutex
	events []event.Type
}

func (f *fixture) seen() []event.Type {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]event.Type(nil), f.events...)
}

func newFixture(t *testing.T, rng reveal.RandomSource, opts Options) *fixture {
	t.Helper()

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.SetSession(domain.NewUser("u1", "alice", alice), "tok"))

	cfg := reveal.DefaultConfig()
	cfg.SpinDuration = 5 * time.Millisecond
	engine, err := reveal.NewEngine(cfg, reveal.NewSeededSource(3))
	require.NoError(t, err)

	f := &fixture{store: store, backend: new(MockBackend), catalog: new(MockCatalog)}
	bus := event.NewMemoryBus()
	bus.Subscribe(event.All, func(ctx context.Context, e event.Event) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.events = append(f.events, e.Type)
		return nil
	})
	f.svc = NewService(f.backend, f.catalog, engine, rng, store, bus, opts)
	t.Cleanup(func() { _ = f.svc.Shutdown(context.Background()) })
	return f
}

func item(id string, r domain.Rarity, price float64) domain.Item {
	return domain.Item{ID: id, Name: "Item " + id, Rarity: r, Price: domain.MoneyFromFloat(price)}
}

func testCase() *domain.Case {
	return &domain.Case{
		ID:    "c1",
		Name:  "Dreams",
		Price: domain.Dollars(5),
		Contents: []domain.Item{
			item("a", domain.RarityMilspec, 1.5),
			item("b", domain.RarityCovert, 80),
		},
	}
}

func rolled(winA, winB domain.Item) domain.BattleRound {
	return domain.BattleRound{
		CaseID: "c1",
		Case:   testCase(),
		Rolls: []domain.BattleRoll{
			{Player: domain.BattlePlayer{Email: alice}, Winner: &winA},
			{Player: domain.BattlePlayer{Email: bob}, Winner: &winB},
		},
	}
}

func waitFinished(t *testing.T, svc Service, id string) *Playback {
	t.Helper()
	var pb *Playback
	require.Eventually(t, func() bool {
		var err error
		pb, err = svc.Playback(context.Background(), id)
		return err == nil && pb.Finished
	}, 2*time.Second, 5*time.Millisecond)
	return pb
}

func TestPlay_ServerRollsDecideTotalsAndWinner(t *testing.T) {
	f := newFixture(t, nil, Options{})
	b := &domain.Battle{
		ID:      "b1",
		Mode:    domain.BattleMode1v1,
		Players: []domain.BattlePlayer{{Email: alice}, {Email: bob}},
		Rounds: []domain.BattleRound{
			rolled(item("b", domain.RarityCovert, 80), item("a", domain.RarityMilspec, 1.5)),
			rolled(item("a", domain.RarityMilspec, 1.5), item("a", domain.RarityMilspec, 1.5)),
		},
	}
	f.backend.On("GetBattle", mock.Anything, "b1").Return(b, nil)

	first, err := f.svc.Play(context.Background(), "b1", testLayout)
	require.NoError(t, err)
	assert.Equal(t, -1, first.Round)
	assert.Equal(t, 2, first.Rounds)

	pb := waitFinished(t, f.svc, "b1")
	assert.Empty(t, pb.Error)
	assert.Equal(t, 1, pb.Round)
	assert.Equal(t, domain.MoneyFromFloat(81.5), pb.Totals[alice])
	assert.Equal(t, domain.MoneyFromFloat(3), pb.Totals[bob])
	assert.Len(t, pb.WonItems[alice], 2)
	assert.Equal(t, alice, pb.Winner)
	assert.Equal(t, reveal.Settled{Winner: item("a", domain.RarityMilspec, 1.5)}, pb.States[bob])

	u, err := f.store.User()
	require.NoError(t, err)
	assert.Equal(t, 1, u.Stats.BattlesWon)

	assert.Equal(t, []event.Type{
		event.BattleRoundStarted, event.BattleRoundSettled,
		event.BattleRoundStarted, event.BattleRoundSettled,
		event.BattleCompleted,
	}, f.seen())
	f.catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestPlay_StripPlacesRollWinnerAtWinIndex(t *testing.T) {
	f := newFixture(t, nil, Options{})
	knife := item("k", domain.RarityKnife, 900)
	b := &domain.Battle{
		ID:      "b2",
		Players: []domain.BattlePlayer{{Email: alice}, {Email: bob}},
		Rounds:  []domain.BattleRound{rolled(knife, knife)},
	}
	f.backend.On("GetBattle", mock.Anything, "b2").Return(b, nil)

	_, err := f.svc.Play(context.Background(), "b2", testLayout)
	require.NoError(t, err)
	pb := waitFinished(t, f.svc, "b2")

	strip := pb.Strips[alice]
	require.Len(t, strip.Items, reveal.DefaultStripLength)
	assert.Equal(t, knife, strip.Items[reveal.DefaultWinIndex])
	assert.Equal(t, reveal.SourceServer, strip.Source)
}

func TestPlay_FetchesCaseByID(t *testing.T) {
	f := newFixture(t, nil, Options{})
	b := &domain.Battle{
		ID:      "b3",
		Players: []domain.BattlePlayer{{Email: alice}, {Name: "bot"}},
		Rounds:  []domain.BattleRound{{CaseID: "c1"}},
	}
	f.backend.On("GetBattle", mock.Anything, "b3").Return(b, nil)
	f.catalog.On("Get", mock.Anything, "c1").Return(testCase(), nil).Once()

	_, err := f.svc.Play(context.Background(), "b3", testLayout)
	require.NoError(t, err)
	pb := waitFinished(t, f.svc, "b3")

	assert.Empty(t, pb.Error)
	assert.Len(t, pb.WonItems["bot"], 1)
	assert.Equal(t, reveal.SourceLocal, pb.Strips["bot"].Source)
	f.catalog.AssertExpectations(t)
}

func TestPlay_RequireServerWinnerAborts(t *testing.T) {
	f := newFixture(t, nil, Options{RequireServerWinner: true})
	b := &domain.Battle{
		ID:      "b4",
		Players: []domain.BattlePlayer{{Email: alice}, {Email: bob}},
		Rounds:  []domain.BattleRound{{CaseID: "c1", Case: testCase()}},
	}
	f.backend.On("GetBattle", mock.Anything, "b4").Return(b, nil)

	_, err := f.svc.Play(context.Background(), "b4", testLayout)
	require.NoError(t, err)
	pb := waitFinished(t, f.svc, "b4")

	assert.Contains(t, pb.Error, domain.ErrNoServerOutcome.Error())
	assert.Empty(t, pb.Winner)
	assert.Equal(t, reveal.Idle{}, pb.States[alice])
}

func TestPlay_EmptyCaseLeavesPlayersIdle(t *testing.T) {
	f := newFixture(t, nil, Options{})
	win := item("a", domain.RarityMilspec, 1.5)
	b := &domain.Battle{
		ID:      "b5",
		Players: []domain.BattlePlayer{{Email: alice}},
		Rounds: []domain.BattleRound{{
			Rolls: []domain.BattleRoll{{Player: domain.BattlePlayer{Email: alice}, Winner: &win}},
		}},
	}
	f.backend.On("GetBattle", mock.Anything, "b5").Return(b, nil)

	_, err := f.svc.Play(context.Background(), "b5", testLayout)
	require.NoError(t, err)
	pb := waitFinished(t, f.svc, "b5")

	assert.Equal(t, reveal.Idle{}, pb.States[alice])
	assert.Zero(t, pb.Totals[alice])
	assert.Empty(t, pb.WonItems[alice])
}

func TestPlay_NoWinnerWhenNothingSettled(t *testing.T) {
	tests := []struct {
		name   string
		rounds []domain.BattleRound
	}{
		{"empty cases only", []domain.BattleRound{{}, {Case: &domain.Case{Name: "Empty"}}}},
		{"no rounds", nil},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, reveal.NewSequenceSource(0), Options{})
			id := fmt.Sprintf("empty-%d", i)
			b := &domain.Battle{
				ID:      id,
				Mode:    domain.BattleMode1v1,
				Players: []domain.BattlePlayer{{Email: alice}, {Email: bob}},
				Rounds:  tt.rounds,
			}
			f.backend.On("GetBattle", mock.Anything, id).Return(b, nil)

			_, err := f.svc.Play(context.Background(), id, testLayout)
			require.NoError(t, err)
			pb := waitFinished(t, f.svc, id)

			assert.Empty(t, pb.Winner)
			assert.Empty(t, pb.Error)
			assert.Zero(t, pb.Totals[alice])
			assert.Zero(t, pb.Totals[bob])

			u, err := f.store.User()
			require.NoError(t, err)
			assert.Zero(t, u.Stats.BattlesWon)
		})
	}
}

func TestPlay_TieBrokenOverSortedKeys(t *testing.T) {
	f := newFixture(t, reveal.NewSequenceSource(0.99), Options{})
	same := item("a", domain.RarityMilspec, 1.5)
	b := &domain.Battle{
		ID:      "b6",
		Players: []domain.BattlePlayer{{Email: bob}, {Email: alice}},
		Rounds:  []domain.BattleRound{rolled(same, same)},
	}
	f.backend.On("GetBattle", mock.Anything, "b6").Return(b, nil)

	_, err := f.svc.Play(context.Background(), "b6", testLayout)
	require.NoError(t, err)
	pb := waitFinished(t, f.svc, "b6")

	assert.Equal(t, bob, pb.Winner)
	u, err := f.store.User()
	require.NoError(t, err)
	assert.Zero(t, u.Stats.BattlesWon)
}

func TestPlay_RejectsConcurrentPlayback(t *testing.T) {
	f := newFixture(t, nil, Options{})
	rounds := make([]domain.BattleRound, 50)
	for i := range rounds {
		rounds[i] = rolled(item("a", domain.RarityMilspec, 1.5), item("a", domain.RarityMilspec, 1.5))
	}
	b := &domain.Battle{ID: "b7", Players: []domain.BattlePlayer{{Email: alice}, {Email: bob}}, Rounds: rounds}
	f.backend.On("GetBattle", mock.Anything, "b7").Return(b, nil)

	_, err := f.svc.Play(context.Background(), "b7", testLayout)
	require.NoError(t, err)
	_, err = f.svc.Play(context.Background(), "b7", testLayout)
	assert.ErrorIs(t, err, domain.ErrPlaybackRunning)

	require.NoError(t, f.svc.Shutdown(context.Background()))
	pb, err := f.svc.Playback(context.Background(), "b7")
	require.NoError(t, err)
	assert.True(t, pb.Finished)
	assert.NotEmpty(t, pb.Error)
}

func TestPlayback_NotFound(t *testing.T) {
	f := newFixture(t, nil, Options{})
	_, err := f.svc.Playback(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPlaybackNotFound)
}

func TestLobby(t *testing.T) {
	t.Run("create uses session email", func(t *testing.T) {
		f := newFixture(t, nil, Options{})
		want := domain.CreateBattleRequest{CreatorEmail: alice, Mode: domain.BattleMode1v1v1, CaseIDs: []string{"c1"}}
		f.backend.On("CreateBattle", mock.Anything, want).Return(&domain.Battle{ID: "new"}, nil)

		b, err := f.svc.Create(context.Background(), CreateInput{Mode: domain.BattleMode1v1v1, CaseIDs: []string{"c1"}})
		require.NoError(t, err)
		assert.Equal(t, "new", b.ID)
	})

	t.Run("invalid mode", func(t *testing.T) {
		f := newFixture(t, nil, Options{})
		_, err := f.svc.Create(context.Background(), CreateInput{Mode: "5v5", CaseIDs: []string{"c1"}})
		assert.ErrorIs(t, err, domain.ErrInvalidBattleMode)
		f.backend.AssertNotCalled(t, "CreateBattle", mock.Anything, mock.Anything)
	})

	t.Run("join requires login", func(t *testing.T) {
		f := newFixture(t, nil, Options{})
		require.NoError(t, f.store.Clear())
		_, err := f.svc.Join(context.Background(), "b1")
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("missing battle", func(t *testing.T) {
		f := newFixture(t, nil, Options{})
		f.backend.On("GetBattle", mock.Anything, "gone").Return(nil, domain.ErrNotFound)
		_, err := f.svc.Get(context.Background(), "gone")
		assert.ErrorIs(t, err, domain.ErrBattleNotFound)
	})

	t.Run("list defaults to waiting", func(t *testing.T) {
		f := newFixture(t, nil, Options{})
		f.backend.On("ListBattles", mock.Anything, domain.BattleStatusWaiting).Return([]domain.Battle{{ID: "w"}}, nil)
		list, err := f.svc.List(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
