package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) closing() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// schedule runs fn after d in a tracked goroutine, replacing any timer
// already registered for id.
func (w *BaseWorker) schedule(id uuid.UUID, d time.Duration, fn func(ctx context.Context)) {
	w.init()
	if w.closing() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.timers[id]; ok {
		existing.Stop()
	}
	w.timers[id] = time.AfterFunc(d, func() {
		if w.closing() {
			return
		}
		w.removeTimer(id)

		w.wg.Add(1)
		defer w.wg.Done()
		fn(context.Background())
	})
}

func (w *BaseWorker) stopTimer(id uuid.UUID) bool {
	w.init()
	w.mu.Lock()
	defer w.mu.Unlock()
	timer, ok := w.timers[id]
	if ok {
		timer.Stop()
		delete(w.timers, id)
	}
	return ok
}

func (w *BaseWorker) removeTimer(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, id)
}

func (w *BaseWorker) pending() int {
	w.init()
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	w.init()
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	for id, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "id", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
