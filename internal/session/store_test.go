package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return s
}

func TestStore_LoggedOut(t *testing.T) {
	s := openTemp(t)
	assert.False(t, s.LoggedIn())

	_, err := s.User()
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)

	_, err = s.Update(func(u *domain.User) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	s := openTemp(t)
	u := domain.NewUser("u1", "alice", "alice@example.com")
	u.Balance = domain.Dollars(20)
	require.NoError(t, s.SetSession(u, "tok"))

	_, err := s.Update(func(u *domain.User) error {
		u.Balance -= domain.Money(1501)
		return nil
	})
	require.NoError(t, err)

	reopened, err := Open(s.Path())
	require.NoError(t, err)
	got, err := reopened.User()
	require.NoError(t, err)
	assert.Equal(t, domain.Money(499), got.Balance)
	assert.Equal(t, "tok", reopened.Token())
}

func TestStore_UpdateFailureLeavesMirror(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SetSession(domain.NewUser("u1", "alice", "alice@example.com"), ""))

	_, err := s.Update(func(u *domain.User) error {
		u.Balance = domain.Dollars(1000)
		return errors.New("abort")
	})
	require.Error(t, err)

	got, _ := s.User()
	assert.Zero(t, got.Balance)
}

func TestStore_CopiesAreIsolated(t *testing.T) {
	s := openTemp(t)
	u := domain.NewUser("u1", "alice", "alice@example.com")
	u.Inventory = []domain.Item{{UID: "x", Name: "AK"}}
	require.NoError(t, s.SetSession(u, ""))

	u.Inventory[0].Name = "mutated"
	got, _ := s.User()
	got.Inventory[0].Name = "also mutated"

	again, _ := s.User()
	assert.Equal(t, "AK", again.Inventory[0].Name)
}

func TestStore_DiscardsOtherVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"0.1","user":{"email":"old@example.com"}}`), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestStore_Clear(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SetSession(domain.NewUser("u1", "alice", "alice@example.com"), "tok"))
	require.NoError(t, s.Clear())

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) GetUserByEmail(ctx context.Context, email string) (*backend.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Account), args.Error(1)
}

func TestSyncBalance(t *testing.T) {
	s := openTemp(t)
	u := domain.NewUser("", "alice", "alice@example.com")
	u.Balance = domain.Dollars(20)
	require.NoError(t, s.SetSession(u, ""))

	accounts := new(MockAccounts)
	accounts.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&backend.Account{ID: "u1", Balance: domain.MoneyFromFloat(4.99), HasBalance: true}, nil)

	bus := event.NewMemoryBus()
	var synced []event.Event
	bus.Subscribe(event.BalanceSynced, func(ctx context.Context, e event.Event) error {
		synced = append(synced, e)
		return nil
	})

	balance, err := NewSyncer(s, accounts, concurrency.NewLockManager(), bus).SyncBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Money(499), balance)

	got, _ := s.User()
	assert.Equal(t, "u1", got.ID)
	require.Len(t, synced, 1)
	payload := synced[0].Payload.(event.BalanceSyncedPayloadV1)
	assert.Equal(t, domain.Dollars(20), payload.Previous)
}

func TestSyncBalance_FailureIsNonDestructive(t *testing.T) {
	s := openTemp(t)
	u := domain.NewUser("u1", "alice", "alice@example.com")
	u.Balance = domain.Dollars(20)
	require.NoError(t, s.SetSession(u, ""))

	accounts := new(MockAccounts)
	accounts.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrBackendUnavailable)

	_, err := NewSyncer(s, accounts, concurrency.NewLockManager(), nil).SyncBalance(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	got, _ := s.User()
	assert.Equal(t, domain.Dollars(20), got.Balance)
}

func TestSyncBalance_LoggedOut(t *testing.T) {
	_, err := NewSyncer(openTemp(t), new(MockAccounts), concurrency.NewLockManager(), nil).SyncBalance(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

// serverAccounts answers from a balance the test moves like the backend would.
type serverAccounts struct {
	mu      sync.Mutex
	balance domain.Money
	reads   atomic.Int32
}

func (a *serverAccounts) GetUserByEmail(ctx context.Context, email string) (*backend.Account, error) {
	a.reads.Add(1)
	a.mu.Lock()
	defer a.mu.Unlock()
	return &backend.Account{ID: "u1", Email: email, Balance: a.balance, HasBalance: true}, nil
}

func (a *serverAccounts) set(m domain.Money) {
	a.mu.Lock()
	a.balance = m
	a.mu.Unlock()
}

func TestSyncBalance_WaitsForInFlightDebit(t *testing.T) {
	s := openTemp(t)
	u := domain.NewUser("u1", "alice", "alice@example.com")
	u.Balance = domain.Dollars(20)
	require.NoError(t, s.SetSession(u, ""))

	accounts := &serverAccounts{balance: domain.Dollars(20)}
	locks := concurrency.NewLockManager()
	syncer := NewSyncer(s, accounts, locks, nil)

	// An opening holds the user's lock across its debit.
	unlock := locks.Lock("alice@example.com")

	done := make(chan error, 1)
	go func() {
		_, err := syncer.SyncBalance(context.Background())
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, accounts.reads.Load(), "sync must not read the server balance while a debit is in flight")

	accounts.set(domain.MoneyFromFloat(4.99))
	_, err := s.Update(func(u *domain.User) error {
		u.Balance = domain.MoneyFromFloat(4.99)
		return nil
	})
	require.NoError(t, err)
	unlock()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sync did not finish")
	}

	got, err := s.User()
	require.NoError(t, err)
	assert.Equal(t, domain.MoneyFromFloat(4.99), got.Balance)
}
