package metrics

import (
	"context"

	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.All, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RevealStripBuilt:
		var p event.RevealPayloadV1
		if p, err = event.DecodePayload[event.RevealPayloadV1](evt.Payload); err == nil {
			CasesOpened.WithLabelValues(p.CaseID).Inc()
			MoneySpent.Add(p.Price.Float())
		}

	case event.RevealSettled:
		var p event.RevealPayloadV1
		if p, err = event.DecodePayload[event.RevealPayloadV1](evt.Payload); err == nil {
			RevealsSettled.WithLabelValues(p.Source).Inc()
			if p.Winner != nil {
				MoneyWon.Add(p.Winner.Price.Float())
			}
		}

	case event.BattleCompleted:
		BattlesCompleted.Inc()

	case event.ContractCompleted:
		var p event.ContractCompletedPayloadV1
		if p, err = event.DecodePayload[event.ContractCompletedPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeFailure
			if p.Success {
				outcome = OutcomeSuccess
			}
			ContractsCompleted.WithLabelValues(string(p.From), outcome).Inc()
			MoneySpent.Add(p.Cost.Float())
		}

	case event.ItemSold:
		var p event.ItemSoldPayloadV1
		if p, err = event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(string(p.Item.Rarity)).Inc()
		}

	case event.BonusClaimed:
		BonusesClaimed.Inc()

	case event.BalanceSynced:
		BalanceSyncs.Inc()
	}

	if err != nil {
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
