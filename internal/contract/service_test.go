package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

const testEmail = "alice@example.com"

type MockBalances struct {
	mock.Mock
}

func (m *MockBalances) AddBalance(ctx context.Context, email string, delta domain.Money) (*backend.Account, error) {
	args := m.Called(ctx, email, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Account), args.Error(1)
}

type fixture struct {
	svc      Service
	store    *session.Store
	balances *MockBalances
	events   []event.Event
}

// newFixture seeds ten milspec items priced 1..10 and two covert ones.
func newFixture(t *testing.T, balance domain.Money, roll float64) *fixture {
	t.Helper()

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	u := domain.NewUser("u1", "alice", testEmail)
	u.Balance = balance
	for i := 1; i <= 10; i++ {
		u.Inventory = append(u.Inventory, domain.Item{
			ID: "m", UID: fmt.Sprintf("m%d", i), Name: "M4A1-S | Nitro",
			Rarity: domain.RarityMilspec, Price: domain.Dollars(int64(i)),
		})
	}
	u.Inventory = append(u.Inventory,
		domain.Item{UID: "c1", Name: "AWP | Asiimov", Rarity: domain.RarityCovert, Price: domain.Dollars(60)},
		domain.Item{UID: "c2", Name: "AWP | Asiimov", Rarity: domain.RarityCovert, Price: domain.Dollars(60)},
	)
	require.NoError(t, store.SetSession(u, "tok"))

	f := &fixture{store: store, balances: new(MockBalances)}
	bus := event.NewMemoryBus()
	bus.Subscribe(event.ContractCompleted, func(ctx context.Context, e event.Event) error {
		f.events = append(f.events, e)
		return nil
	})
	f.svc = NewService(DefaultRules(), reveal.NewSequenceSource(roll), f.balances, store,
		concurrency.NewLockManager(), bus)
	return f
}

func milspecUIDs() []string {
	uids := make([]string, 10)
	for i := range uids {
		uids[i] = fmt.Sprintf("m%d", i+1)
	}
	return uids
}

func TestComplete_Success(t *testing.T) {
	f := newFixture(t, domain.Dollars(100), 0.5)
	f.balances.On("AddBalance", mock.Anything, testEmail, -domain.Dollars(5)).
		Return(&backend.Account{Email: testEmail, Balance: domain.Dollars(95), HasBalance: true}, nil)

	res, err := f.svc.Complete(context.Background(), domain.RarityMilspec, milspecUIDs())
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.NotNil(t, res.Reward)
	assert.Equal(t, domain.RarityRestricted, res.Reward.Rarity)
	assert.Equal(t, "Restricted", res.Reward.RarityName)
	assert.True(t, res.Reward.Upgraded)
	// average of 1..10 is 5.50
	assert.Equal(t, domain.MoneyFromFloat(16.5), res.Reward.Price)
	assert.Equal(t, domain.Dollars(95), res.Balance)

	u, err := f.store.User()
	require.NoError(t, err)
	assert.Len(t, u.Inventory, 3)
	assert.Equal(t, 1, u.Stats.ContractsCompleted)
	assert.Equal(t, 20, u.XP)
	require.Len(t, f.events, 1)
	f.balances.AssertExpectations(t)
}

func TestComplete_FailureStillConsumes(t *testing.T) {
	f := newFixture(t, domain.Dollars(100), 0.85)
	f.balances.On("AddBalance", mock.Anything, testEmail, -domain.Dollars(5)).
		Return(&backend.Account{Email: testEmail}, nil)

	res, err := f.svc.Complete(context.Background(), domain.RarityMilspec, milspecUIDs())
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Nil(t, res.Reward)
	assert.Equal(t, domain.Dollars(95), res.Balance)

	u, err := f.store.User()
	require.NoError(t, err)
	assert.Len(t, u.Inventory, 2)
	assert.Zero(t, u.Stats.ContractsCompleted)
	assert.Zero(t, u.XP)
}

func TestComplete_FreeRuleSkipsDebit(t *testing.T) {
	f := newFixture(t, 0, 0.99)
	store := f.store
	_, err := store.Update(func(u *domain.User) error {
		for i := range u.Inventory {
			u.Inventory[i].Rarity = domain.RarityConsumer
		}
		return nil
	})
	require.NoError(t, err)

	res, err := f.svc.Complete(context.Background(), domain.RarityConsumer, milspecUIDs())
	require.NoError(t, err)
	assert.True(t, res.Success)
	f.balances.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestComplete_Invalid(t *testing.T) {
	tests := []struct {
		name string
		from domain.Rarity
		uids []string
		want error
	}{
		{"too few", domain.RarityMilspec, milspecUIDs()[:9], domain.ErrContractInvalid},
		{"duplicate", domain.RarityMilspec, append(milspecUIDs()[:9], "m1"), domain.ErrContractInvalid},
		{"not owned", domain.RarityMilspec, append(milspecUIDs()[:9], "zz"), domain.ErrNotInInventory},
		{"wrong tier", domain.RarityMilspec, append(milspecUIDs()[:9], "c1"), domain.ErrContractInvalid},
		{"no rule", domain.RarityKnife, milspecUIDs(), domain.ErrContractRuleNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.Dollars(100), 0.1)
			_, err := f.svc.Complete(context.Background(), tt.from, tt.uids)
			assert.ErrorIs(t, err, tt.want)
			f.balances.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)

			u, err := f.store.User()
			require.NoError(t, err)
			assert.Len(t, u.Inventory, 12)
		})
	}
}

func TestComplete_InsufficientFundsBeforeDebit(t *testing.T) {
	f := newFixture(t, domain.Dollars(4), 0.1)
	_, err := f.svc.Complete(context.Background(), domain.RarityMilspec, milspecUIDs())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	f.balances.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestComplete_DebitFailureKeepsItems(t *testing.T) {
	f := newFixture(t, domain.Dollars(100), 0.1)
	f.balances.On("AddBalance", mock.Anything, testEmail, -domain.Dollars(5)).
		Return(nil, domain.ErrBackendUnavailable)

	_, err := f.svc.Complete(context.Background(), domain.RarityMilspec, milspecUIDs())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	u, err := f.store.User()
	require.NoError(t, err)
	assert.Len(t, u.Inventory, 12)
	assert.Equal(t, domain.Dollars(100), u.Balance)
	assert.Empty(t, f.events)
}

func TestEligible(t *testing.T) {
	f := newFixture(t, 0, 0)
	items, err := f.svc.Eligible(context.Background(), domain.RarityCovert)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
