package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/samigvnc/csgo-frontend/internal/account"
	"github.com/samigvnc/csgo-frontend/internal/admin"
	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/battle"
	"github.com/samigvnc/csgo-frontend/internal/catalog"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/economy"
	"github.com/samigvnc/csgo-frontend/internal/opening"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Login(ctx context.Context, in account.LoginInput) (*account.Profile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

func (m *MockAccountService) Register(ctx context.Context, in account.RegisterInput) (*account.Profile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

func (m *MockAccountService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAccountService) Profile(ctx context.Context) (*account.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

func (m *MockAccountService) Inventory(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, q catalog.Query) ([]domain.Case, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*domain.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCatalogService) Home(ctx context.Context) (*catalog.Home, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Home), args.Error(1)
}

func (m *MockCatalogService) Invalidate(id string) { m.Called(id) }

func (m *MockCatalogService) Purge() { m.Called() }

type MockOpeningService struct {
	mock.Mock
}

func (m *MockOpeningService) view(args mock.Arguments) (*opening.View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opening.View), args.Error(1)
}

func (m *MockOpeningService) Open(ctx context.Context, caseID string) (*opening.View, error) {
	return m.view(m.Called(ctx, caseID))
}

func (m *MockOpeningService) Spin(ctx context.Context, id uuid.UUID, layout reveal.Layout) (*opening.View, error) {
	return m.view(m.Called(ctx, id, layout))
}

func (m *MockOpeningService) Complete(ctx context.Context, id uuid.UUID) (*opening.View, error) {
	return m.view(m.Called(ctx, id))
}

func (m *MockOpeningService) Get(ctx context.Context, id uuid.UUID) (*opening.View, error) {
	return m.view(m.Called(ctx, id))
}

func (m *MockOpeningService) Active(ctx context.Context) (*opening.View, error) {
	return m.view(m.Called(ctx))
}

func (m *MockOpeningService) Odds(ctx context.Context, caseID string) ([]reveal.ItemOdds, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reveal.ItemOdds), args.Error(1)
}

type MockBattleService struct {
	mock.Mock
}

func (m *MockBattleService) battle(args mock.Arguments) (*domain.Battle, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleService) playback(args mock.Arguments) (*battle.Playback, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*battle.Playback), args.Error(1)
}

func (m *MockBattleService) List(ctx context.Context, status domain.BattleStatus) ([]domain.Battle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Battle), args.Error(1)
}

func (m *MockBattleService) Create(ctx context.Context, in battle.CreateInput) (*domain.Battle, error) {
	return m.battle(m.Called(ctx, in))
}

func (m *MockBattleService) Join(ctx context.Context, id string) (*domain.Battle, error) {
	return m.battle(m.Called(ctx, id))
}

func (m *MockBattleService) Start(ctx context.Context, id string) (*domain.Battle, error) {
	return m.battle(m.Called(ctx, id))
}

func (m *MockBattleService) Get(ctx context.Context, id string) (*domain.Battle, error) {
	return m.battle(m.Called(ctx, id))
}

func (m *MockBattleService) Play(ctx context.Context, id string, layout reveal.Layout) (*battle.Playback, error) {
	return m.playback(m.Called(ctx, id, layout))
}

func (m *MockBattleService) Playback(ctx context.Context, id string) (*battle.Playback, error) {
	return m.playback(m.Called(ctx, id))
}

func (m *MockBattleService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Rules(ctx context.Context) []domain.ContractRule {
	return m.Called(ctx).Get(0).([]domain.ContractRule)
}

func (m *MockContractService) Eligible(ctx context.Context, from domain.Rarity) ([]domain.Item, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockContractService) Complete(ctx context.Context, from domain.Rarity, uids []string) (*domain.ContractResult, error) {
	args := m.Called(ctx, from, uids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractResult), args.Error(1)
}

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Sell(ctx context.Context, uid string) (*economy.SellResult, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) BonusStatus(ctx context.Context) (*economy.BonusStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BonusStatus), args.Error(1)
}

func (m *MockEconomyService) ClaimDailyBonus(ctx context.Context) (*economy.BonusResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BonusResult), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, email, password string) (*admin.Status, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Status), args.Error(1)
}

func (m *MockAdminService) Logout(ctx context.Context) { m.Called(ctx) }

func (m *MockAdminService) Status(ctx context.Context) *admin.Status {
	return m.Called(ctx).Get(0).(*admin.Status)
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]backend.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Account), args.Error(1)
}

func (m *MockAdminService) SetUserBalance(ctx context.Context, id string, balance domain.Money) (*backend.Account, error) {
	args := m.Called(ctx, id, balance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Account), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) ListCases(ctx context.Context) ([]domain.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockAdminService) CreateCase(ctx context.Context, in backend.CaseInput) (*domain.Case, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockAdminService) DeleteCase(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) PurgeCatalog(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
