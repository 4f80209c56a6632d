package opening

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/domain"
)

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
