package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/opening"
)

// RevealCompleter settles a reveal. Repeated calls for a settled reveal are no-ops.
type RevealCompleter interface {
	Complete(ctx context.Context, id uuid.UUID) (*opening.View, error)
}

// RevealSettleWorker settles animating reveals when their spin duration
// elapses, for renderers that never send the completion signal.
type RevealSettleWorker struct {
	BaseWorker
	completer  RevealCompleter
	retryDelay time.Duration
}

// NewRevealSettleWorker creates a new RevealSettleWorker
func NewRevealSettleWorker(completer RevealCompleter) *RevealSettleWorker {
	w := &RevealSettleWorker{completer: completer, retryDelay: SettleRetryDelay}
	w.init()
	return w
}

// Subscribe arms a timer on reveal.animating and disarms it on reveal.settled.
func (w *RevealSettleWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RevealAnimating, w.handleAnimating)
	bus.Subscribe(event.RevealSettled, w.handleSettled)
}

func (w *RevealSettleWorker) handleAnimating(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[event.RevealPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(p.RevealID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidRevealID, "reveal_id", p.RevealID)
		return nil
	}
	w.Schedule(id, time.Duration(p.SpinMs)*time.Millisecond)
	return nil
}

func (w *RevealSettleWorker) handleSettled(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[event.RevealPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	if id, err := uuid.Parse(p.RevealID); err == nil {
		w.stopTimer(id)
	}
	return nil
}

// Schedule settles reveal id after d. Failures other than a lost session
// or an unknown reveal are retried up to SettleMaxAttempts times.
func (w *RevealSettleWorker) Schedule(id uuid.UUID, d time.Duration) {
	logger.Debug(LogMsgSchedulingRevealSettle, "reveal_id", id, "duration", d)
	w.settleAfter(id, d, 1)
}

func (w *RevealSettleWorker) settleAfter(id uuid.UUID, d time.Duration, attempt int) {
	w.schedule(id, d, func(ctx context.Context) {
		logger.Debug(LogMsgSettlingReveal, "reveal_id", id, "attempt", attempt)
		_, err := w.completer.Complete(ctx, id)
		if err == nil {
			return
		}
		if attempt >= SettleMaxAttempts || !retryable(err) {
			logger.FromContext(ctx).Error(LogMsgFailedToSettleReveal, "reveal_id", id, "attempt", attempt, "error", err)
			return
		}
		logger.FromContext(ctx).Warn(LogMsgRetryingRevealSettle, "reveal_id", id, "attempt", attempt, "error", err)
		w.settleAfter(id, w.retryDelay, attempt+1)
	})
}

func retryable(err error) bool {
	return !errors.Is(err, domain.ErrNotLoggedIn) && !errors.Is(err, domain.ErrRevealNotFound) &&
		!errors.Is(err, context.Canceled)
}

// Pending returns the number of armed timers.
func (w *RevealSettleWorker) Pending() int {
	return w.pending()
}

// Shutdown cancels armed timers and waits for running settles.
func (w *RevealSettleWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, "reveal settle worker")
}
