package sse

import (
	"context"
	"log/slog"

	"github.com/samigvnc/csgo-frontend/internal/event"
)

// StreamedTypes are the bus events forwarded to SSE clients.
var StreamedTypes = []event.Type{
	event.RevealStripBuilt,
	event.RevealAnimating,
	event.RevealSettled,
	event.BattleRoundStarted,
	event.BattleRoundSettled,
	event.BattleCompleted,
	event.ContractCompleted,
	event.ItemSold,
	event.BonusClaimed,
	event.BalanceSynced,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarder for every streamed type
func (s *Subscriber) Subscribe() {
	for _, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
	}
	slog.Info("SSE subscriber registered for event types", "count", len(StreamedTypes))
}

// forward passes the typed payload through; it is already JSON-shaped.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "event_id", evt.ID)
	return nil
}
