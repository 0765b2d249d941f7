package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Bouquet_Go/internal/event"
	"github.com/osse101/Bouquet_Go/internal/eventlog"
	"github.com/osse101/Bouquet_Go/internal/metrics"
	"github.com/osse101/Bouquet_Go/internal/narrative"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	// Renderer and Sink are optional; the headless runner prints the narrative, the
	// HTTP service returns it in responses instead.
	Renderer *narrative.Renderer
	Sink     narrative.Sink
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based counters)
// - Event logger (persists events to the journal)
// - Narrative renderer, when a sink is given
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.Renderer != nil && deps.Sink != nil {
		deps.Renderer.Subscribe(deps.EventBus, deps.Sink)
		slog.Info(LogMsgNarrativeSubscribed)
	}

	return nil
}
