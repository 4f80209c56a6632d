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
	MetricNameSSEClients         = "sse_clients"
	MetricNameSSEEventsDropped   = "sse_events_dropped_total"
)

// Business metric names
const (
	MetricNameCasesOpened        = "cases_opened_total"
	MetricNameRevealsSettled     = "reveals_settled_total"
	MetricNameMoneySpent         = "money_spent_total"
	MetricNameMoneyWon           = "money_won_total"
	MetricNameBattlesCompleted   = "battles_completed_total"
	MetricNameContractsCompleted = "contracts_completed_total"
	MetricNameItemsSold          = "items_sold_total"
	MetricNameBonusesClaimed     = "bonuses_claimed_total"
	MetricNameBalanceSyncs       = "balance_syncs_total"
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
	HelpTextSSEClients         = "Current number of connected SSE clients"
	HelpTextSSEEventsDropped   = "Events not delivered because a buffer was full, by stage"
)

// Business metric help text
const (
	HelpTextCasesOpened        = "Total number of cases opened"
	HelpTextRevealsSettled     = "Total number of reveals settled by winner source"
	HelpTextMoneySpent         = "Total money spent opening cases and contracts"
	HelpTextMoneyWon           = "Total value of items won"
	HelpTextBattlesCompleted   = "Total number of battle playbacks completed"
	HelpTextContractsCompleted = "Total number of contracts by tier and outcome"
	HelpTextItemsSold          = "Total number of items sold by rarity"
	HelpTextBonusesClaimed     = "Total number of daily bonuses claimed"
	HelpTextBalanceSyncs       = "Total number of balance syncs adopted from the backend"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCase    = "case"
	LabelSource  = "source"
	LabelRarity  = "rarity"
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
