package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Garden Metrics
var (
	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	WeatherEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherEvents,
			Help: HelpTextWeatherEvents,
		},
		[]string{LabelEvent},
	)

	StageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStageTransitions,
			Help: HelpTextStageTransitions,
		},
		[]string{LabelStage},
	)

	AuctionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuctionsCompleted,
			Help: HelpTextAuctionsCompleted,
		},
		[]string{LabelEarly},
	)

	AuctionEarnings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAuctionEarnings,
			Help:    HelpTextAuctionEarnings,
			Buckets: EarningsBuckets,
		},
	)

	BouquetsComposed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBouquetsComposed,
			Help: HelpTextBouquetsComposed,
		},
	)

	RefusedOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRefusedOperations,
			Help: HelpTextRefusedOperations,
		},
		[]string{LabelOperation},
	)

	EarningsCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEarningsCollected,
			Help: HelpTextEarningsCollected,
		},
	)

	PlotsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlotsPurchased,
			Help: HelpTextPlotsPurchased,
		},
		[]string{LabelKind},
	)

	DayAdvanceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDayAdvanceDuration,
			Help:    HelpTextDayAdvanceDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)
)
