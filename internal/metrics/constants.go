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

// Generation metric names
const (
	MetricNameGenerationsTotal     = "generations_total"
	MetricNameGenerationDuration   = "generation_duration_seconds"
	MetricNameCombinationsChecked  = "combinations_checked_total"
	MetricNameBuildsRejected       = "builds_rejected_total"
	MetricNameGenerationsTruncated = "generations_truncated_total"
	MetricNameBuildsReturned       = "builds_returned_total"
)

// Catalog metric names
const (
	MetricNameCatalogItems       = "catalog_items"
	MetricNameCatalogReloads     = "catalog_reloads_total"
	MetricNameItemSearches       = "item_searches_total"
	MetricNameSearchCacheHits    = "item_search_cache_hits_total"
	MetricNameSearchCacheMisses  = "item_search_cache_misses_total"
	MetricNameItemLookups        = "item_lookups_total"
)

// Export metric names
const (
	MetricNameBuildsExported = "builds_exported_total"
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

// Generation metric help text
const (
	HelpTextGenerationsTotal     = "Total number of build generation requests"
	HelpTextGenerationDuration   = "Build generation latency in seconds"
	HelpTextCombinationsChecked  = "Total number of equipment combinations evaluated"
	HelpTextBuildsRejected       = "Total number of builds rejected, by reason"
	HelpTextGenerationsTruncated = "Total number of generations stopped at the combination cap"
	HelpTextBuildsReturned       = "Total number of builds returned to callers"
)

// Catalog metric help text
const (
	HelpTextCatalogItems      = "Number of items in the loaded catalog"
	HelpTextCatalogReloads    = "Total number of catalog reloads, by outcome"
	HelpTextItemSearches      = "Total number of item searches"
	HelpTextSearchCacheHits   = "Total number of item search cache hits"
	HelpTextSearchCacheMisses = "Total number of item search cache misses"
	HelpTextItemLookups       = "Total number of exact item lookups, by outcome"
)

// Export metric help text
const (
	HelpTextBuildsExported = "Total number of build exports, by format"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelClass   = "class"
	LabelReason  = "reason"
	LabelOutcome = "outcome"
	LabelFormat  = "format"
)

// Label values for outcome-style labels
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeNotFound = "not_found"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// GenerationLatencyBuckets covers build generation runs, which range from
// sub-millisecond single-slot searches to multi-second capped walks
var GenerationLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
