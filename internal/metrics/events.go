package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/logger"
)

// EventMetricsCollector subscribes to garden events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all garden events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, event.GardenTypes, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.DayAdvanced:
		DaysAdvanced.Inc()

	case event.PlotAdvanced:
		var p event.PlotAdvancedPayloadV1
		if p, err = event.DecodePayload[event.PlotAdvancedPayloadV1](evt.Payload); err == nil {
			recordStage(p.Outcome)
		}

	case event.WeatherResolved:
		var p event.WeatherPayloadV1
		if p, err = event.DecodePayload[event.WeatherPayloadV1](evt.Payload); err == nil && p.Outcome.Occurred {
			WeatherEvents.WithLabelValues(string(p.Outcome.Kind)).Inc()
		}

	case event.AuctionEnded:
		var p event.AuctionEndedPayloadV1
		if p, err = event.DecodePayload[event.AuctionEndedPayloadV1](evt.Payload); err == nil {
			AuctionsCompleted.WithLabelValues(strconv.FormatBool(p.Early)).Inc()
			AuctionEarnings.Observe(p.Earnings)
		}

	case event.EarningsCollected:
		var p event.EarningsCollectedPayloadV1
		if p, err = event.DecodePayload[event.EarningsCollectedPayloadV1](evt.Payload); err == nil {
			EarningsCollected.Add(p.Amount)
		}

	case event.BouquetComposed:
		BouquetsComposed.Inc()

	case event.PlotPurchased:
		var p event.PlotPurchasedPayloadV1
		if p, err = event.DecodePayload[event.PlotPurchasedPayloadV1](evt.Payload); err == nil {
			kind := PlotKindField
			if p.Container {
				kind = PlotKindContainer
			}
			PlotsPurchased.WithLabelValues(kind).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordStage(o domain.PlotOutcome) {
	if o.StageAfter == "" || o.StageAfter == o.StageBefore {
		return
	}
	StageTransitions.WithLabelValues(string(o.StageAfter)).Inc()
}
