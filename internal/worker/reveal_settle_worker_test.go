package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/opening"
)

type MockCompleter struct {
	mock.Mock
	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *MockCompleter) Complete(ctx context.Context, id uuid.UUID) (*opening.View, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.mu.Unlock()
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opening.View), args.Error(1)
}

func (m *MockCompleter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func revealEvent(t event.Type, id uuid.UUID, spinMs int64) event.Event {
	return event.NewRevealEvent(t, event.RevealPayloadV1{RevealID: id.String(), SpinMs: spinMs})
}

func TestRevealSettleWorker_SettlesOnTimer(t *testing.T) {
	id := uuid.New()
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, id).Return(&opening.View{ID: id}, nil)

	w := NewRevealSettleWorker(completer)
	bus := event.NewMemoryBus()
	w.Subscribe(bus)

	require.NoError(t, bus.Publish(context.Background(), revealEvent(event.RevealAnimating, id, 10)))
	assert.Equal(t, 1, w.Pending())

	assert.Eventually(t, func() bool { return completer.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, w.Pending())
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestRevealSettleWorker_RendererSignalDisarms(t *testing.T) {
	id := uuid.New()
	completer := new(MockCompleter)

	w := NewRevealSettleWorker(completer)
	bus := event.NewMemoryBus()
	w.Subscribe(bus)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, revealEvent(event.RevealAnimating, id, 50)))
	require.NoError(t, bus.Publish(ctx, revealEvent(event.RevealSettled, id, 50)))
	assert.Equal(t, 0, w.Pending())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, completer.count())
}

func TestRevealSettleWorker_ShutdownCancelsTimers(t *testing.T) {
	completer := new(MockCompleter)
	w := NewRevealSettleWorker(completer)
	w.Schedule(uuid.New(), time.Hour)
	w.Schedule(uuid.New(), time.Hour)
	assert.Equal(t, 2, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, 0, w.Pending())

	w.Schedule(uuid.New(), time.Millisecond)
	assert.Equal(t, 0, w.Pending(), "no timers after shutdown")
}

type stubSyncer struct {
	err   error
	calls int
}

func (s *stubSyncer) SyncBalance(ctx context.Context) (domain.Money, error) {
	s.calls++
	return 0, s.err
}

func TestBalanceSyncJob_SwallowsErrors(t *testing.T) {
	for _, err := range []error{nil, domain.ErrNotLoggedIn, domain.ErrBackendUnavailable} {
		s := &stubSyncer{err: err}
		assert.NoError(t, BalanceSyncJob{Syncer: s}.Process(context.Background()))
		assert.Equal(t, 1, s.calls)
	}
}

func TestRevealSettleWorker_RetriesTransientFailure(t *testing.T) {
	id := uuid.New()
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, id).Return(nil, errors.New("disk full")).Once()
	completer.On("Complete", mock.Anything, id).Return(&opening.View{ID: id}, nil).Once()

	w := NewRevealSettleWorker(completer)
	w.retryDelay = 5 * time.Millisecond
	w.Schedule(id, time.Millisecond)

	assert.Eventually(t, func() bool { return completer.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return w.Pending() == 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))
	completer.AssertExpectations(t)
}

func TestRevealSettleWorker_RetriesAreBounded(t *testing.T) {
	id := uuid.New()
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, id).Return(nil, errors.New("disk full"))

	w := NewRevealSettleWorker(completer)
	w.retryDelay = time.Millisecond
	w.Schedule(id, time.Millisecond)

	assert.Eventually(t, func() bool { return completer.count() == SettleMaxAttempts }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, SettleMaxAttempts, completer.count())
	assert.Equal(t, 0, w.Pending())
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestRevealSettleWorker_NoRetryWhenSessionGone(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"logged out", domain.ErrNotLoggedIn},
		{"unknown reveal", fmt.Errorf("%w: gone", domain.ErrRevealNotFound)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			completer := new(MockCompleter)
			completer.On("Complete", mock.Anything, id).Return(nil, tt.err)

			w := NewRevealSettleWorker(completer)
			w.retryDelay = time.Millisecond
			w.Schedule(id, time.Millisecond)

			assert.Eventually(t, func() bool { return completer.count() == 1 }, time.Second, 5*time.Millisecond)
			time.Sleep(20 * time.Millisecond)
			assert.Equal(t, 1, completer.count())
			assert.Equal(t, 0, w.Pending())
			require.NoError(t, w.Shutdown(context.Background()))
		})
	}
}
