package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/domain"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListCases(ctx context.Context, q backend.CaseQuery) ([]domain.Case, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockBackend) GetCase(ctx context.Context, id string) (*domain.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func cases(n int) []domain.Case {
	out := make([]domain.Case, n)
	for i := range out {
		out[i] = domain.Case{ID: string(rune('a' + i)), Name: "Case " + string(rune('A'+i))}
	}
	return out
}

func TestGet_CachesCase(t *testing.T) {
	mb := new(MockBackend)
	ctx := context.Background()
	cs := &domain.Case{ID: "c1", Name: "Awakening", Price: 1501, Contents: []domain.Item{{ID: "i1"}}}
	mb.On("GetCase", ctx, "c1").Return(cs, nil).Once()

	svc := NewService(mb, 4, time.Minute)

	first, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	second, err := svc.Get(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mb.AssertExpectations(t)

	svc.Invalidate("c1")
	mb.On("GetCase", ctx, "c1").Return(cs, nil).Once()
	_, err = svc.Get(ctx, "c1")
	require.NoError(t, err)
	mb.AssertNumberOfCalls(t, "GetCase", 2)
}

func TestGet_NotFound(t *testing.T) {
	mb := new(MockBackend)
	ctx := context.Background()
	mb.On("GetCase", ctx, "nope").Return(nil, &backend.APIError{Status: 404, Message: "missing"})

	svc := NewService(mb, 4, time.Minute)
	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCacheVersionMismatch(t *testing.T) {
	c := newCaseCache(2, time.Minute)
	c.Set("x", domain.Case{ID: "x"})
	entry, _ := c.lru.Get("x")
	entry.Version = "0.9"

	_, ok := c.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestList_DefaultsAndFilter(t *testing.T) {
	mb := new(MockBackend)
	ctx := context.Background()
	list := []domain.Case{
		{ID: "1", Name: "Crimson Web", Type: "premium"},
		{ID: "2", Name: "Awakening", Type: "regular"},
		{ID: "3", Name: "Crimson Night", IsPremium: true},
	}
	mb.On("ListCases", ctx, backend.CaseQuery{Limit: DefaultListLimit, Search: "crimson"}).Return(list, nil)

	svc := NewService(mb, 4, time.Minute)
	got, err := svc.List(ctx, Query{Search: " crimson ", Type: "all"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilter_Types(t *testing.T) {
	list := []domain.Case{
		{ID: "p1", Name: "One", Type: "premium"},
		{ID: "p2", Name: "Two", IsPremium: true},
		{ID: "r1", Name: "Three", Type: "regular"},
	}

	tests := []struct {
		kind string
		want []string
	}{
		{"", []string{"p1", "p2", "r1"}},
		{TypeAll, []string{"p1", "p2", "r1"}},
		{TypePremium, []string{"p1", "p2"}},
		{TypeRegular, []string{"r1"}},
	}
	for _, tt := range tests {
		t.Run("type="+tt.kind, func(t *testing.T) {
			var ids []string
			for _, c := range Filter(list, Query{Type: tt.kind}) {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFeaturedAndRecent(t *testing.T) {
	plain := cases(10)
	assert.Len(t, Featured(plain), FeaturedCount, "falls back to the first three")
	assert.Equal(t, "a", Featured(plain)[0].ID)
	assert.Len(t, Recent(plain), RecentCount)
	assert.Len(t, Recent(cases(2)), 2)
	assert.Empty(t, Featured(nil))

	flagged := cases(6)
	flagged[4].IsNew = true
	flagged[5].Featured = true
	got := Featured(flagged)
	require.Len(t, got, 2)
	assert.Equal(t, "e", got[0].ID)
	assert.Equal(t, "f", got[1].ID)
}

func TestHome(t *testing.T) {
	mb := new(MockBackend)
	ctx := context.Background()
	mb.On("ListCases", ctx, backend.CaseQuery{Limit: HomeListLimit}).Return(cases(12), nil)

	home, err := NewService(mb, 0, 0).Home(ctx)
	require.NoError(t, err)
	assert.Len(t, home.Featured, 3)
	assert.Len(t, home.Recent, 8)
}
