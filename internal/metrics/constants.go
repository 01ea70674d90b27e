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

// Game metric names
const (
	MetricNameXPGranted         = "xp_granted_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNameStaminaRegenerated = "stamina_regenerated_total"
	MetricNameDungeonsCommitted = "dungeons_committed_total"
	MetricNameDungeonsResolved  = "dungeons_resolved_total"
	MetricNameItemsDropped      = "items_dropped_total"
	MetricNameShopPurchases     = "shop_purchases_total"
	MetricNameShopRestocks      = "shop_restocks_total"
	MetricNameSweepDuration     = "sweep_duration_seconds"
	MetricNameSweepErrors       = "sweep_errors_total"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
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

// Game metric help text
const (
	HelpTextXPGranted          = "Total experience points granted"
	HelpTextLevelUps           = "Total number of level-ups"
	HelpTextStaminaRegenerated = "Total stamina points credited by the regeneration sweep"
	HelpTextDungeonsCommitted  = "Total number of dungeon runs started"
	HelpTextDungeonsResolved   = "Total number of dungeon runs resolved"
	HelpTextItemsDropped       = "Total number of items dropped"
	HelpTextShopPurchases      = "Total number of shop purchases"
	HelpTextShopRestocks       = "Total number of global shop restock entries touched"
	HelpTextSweepDuration      = "Background sweep duration in seconds"
	HelpTextSweepErrors        = "Total number of per-entity errors during background sweeps"
)

// Discord metric help text
const (
	HelpTextDiscordCommands = "Total number of Discord slash commands handled"
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
	LabelSource  = "source"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
	LabelItem    = "item"
	LabelSweep   = "sweep"
	LabelCommand = "command"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SweepDurationBuckets covers the expected range of background sweep runtimes,
// from a handful of rows (ms) to large backlogs (tens of seconds)
var SweepDurationBuckets = []float64{.005, .01, .05, .1, .5, 1, 5, 10, 30}
