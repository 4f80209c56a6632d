package battle

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListBattles(ctx context.Context, status domain.BattleStatus) ([]domain.Battle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Battle), args.Error(1)
}

func (m *MockBackend) CreateBattle(ctx context.Context, req domain.CreateBattleRequest) (*domain.Battle, error) {
	args := m.Called(ctx, req)
	return battleArg(args)
}

func (m *MockBackend) JoinBattle(ctx context.Context, id, email string) (*domain.Battle, error) {
	args := m.Called(ctx, id, email)
	return battleArg(args)
}

func (m *MockBackend) StartBattle(ctx context.Context, id string) (*domain.Battle, error) {
	args := m.Called(ctx, id)
	return battleArg(args)
}

func (m *MockBackend) GetBattle(ctx context.Context, id string) (*domain.Battle, error) {
	args := m.Called(ctx, id)
	return battleArg(args)
}

func battleArg(args mock.Arguments) (*domain.Battle, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Get(ctx context.Context, id string) (*domain.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}
