package bootstrap

import (
	"log/slog"

	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/metrics"
	"github.com/samigvnc/csgo-frontend/internal/sse"
	"github.com/samigvnc/csgo-frontend/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	Hub          *sse.Hub
	SettleWorker *worker.RevealSettleWorker
}

// RegisterEventHandlers sets up every in-process subscriber:
// - Metrics collector (event counters)
// - SSE subscriber (fans events out to connected renderers)
// - Reveal settle worker (auto-completes animating reveals)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.SettleWorker != nil {
		deps.SettleWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgSettleWorkerRegistered)
	}
}
