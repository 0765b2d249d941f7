package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Garden metric names
const (
	MetricNameDaysAdvanced       = "garden_days_advanced_total"
	MetricNameWeatherEvents      = "garden_weather_events_total"
	MetricNameStageTransitions   = "garden_stage_transitions_total"
	MetricNameAuctionsCompleted  = "garden_auctions_completed_total"
	MetricNameAuctionEarnings    = "garden_auction_earnings"
	MetricNameBouquetsComposed   = "garden_bouquets_composed_total"
	MetricNameRefusedOperations  = "garden_refused_operations_total"
	MetricNameEarningsCollected  = "garden_earnings_collected_total"
	MetricNamePlotsPurchased     = "garden_plots_purchased_total"
	MetricNameDayAdvanceDuration = "garden_day_advance_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Garden metric help text
const (
	HelpTextDaysAdvanced       = "Total number of in-game days advanced"
	HelpTextWeatherEvents      = "Weather events that occurred, by kind"
	HelpTextStageTransitions   = "Plot stage transitions, by stage reached"
	HelpTextAuctionsCompleted  = "Total number of auctions that ended"
	HelpTextAuctionEarnings    = "Final bid of ended auctions"
	HelpTextBouquetsComposed   = "Total number of bouquets composed"
	HelpTextRefusedOperations  = "Player operations refused by a precondition, by operation"
	HelpTextEarningsCollected  = "Total coins collected from auctions"
	HelpTextPlotsPurchased     = "Plots purchased, by kind"
	HelpTextDayAdvanceDuration = "Wall time of a day advance including persistence"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelEvent     = "event"
	LabelStage     = "stage"
	LabelOperation = "operation"
	LabelKind      = "kind"
	LabelEarly     = "early"
)

// Plot kinds for MetricNamePlotsPurchased
const (
	PlotKindField     = "field"
	PlotKindContainer = "container"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EarningsBuckets spans a plain trio up to a royal dozen with every multiplier
var EarningsBuckets = []float64{10, 50, 100, 500, 1000, 5000, 10000, 100000, 1000000}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
