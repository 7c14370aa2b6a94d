package catalog

import "time"

// ============================================================================
// Cache Settings
// ============================================================================

// SnapshotCacheVersion tags cached search results. Bump it whenever the
// normalized item shape changes so stale entries self-invalidate.
const SnapshotCacheVersion = "1.0"

// DefaultSearchCacheSize bounds the search-result LRU
const DefaultSearchCacheSize = 256

// DefaultSearchCacheTTL expires cached search results even without a reload
const DefaultSearchCacheTTL = 10 * time.Minute

// ============================================================================
// Search Settings
// ============================================================================

// DefaultSearchLimit is the result count when the caller does not set one
const DefaultSearchLimit = 10

// MaxSearchLimit caps how many items a single search may return
const MaxSearchLimit = 50

// ============================================================================
// Ingest Settings
// ============================================================================

// LevelBandWidth is the decade size used when bucketing items by level
// for catalog statistics
const LevelBandWidth = 10

// MaxReportedIssues bounds how many per-record issues one ingest keeps.
// Past the cap only the counters keep growing.
const MaxReportedIssues = 100

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgParseCatalogFailed = "failed to parse catalog document: %w"
	ErrMsgReadCatalogFailed  = "failed to read catalog file %s: %w"
	ErrMsgSchemaInvalid      = "catalog file %s rejected by schema: %w"
	ErrMsgFetchFailed        = "failed to fetch catalog from %s: %w"
	ErrMsgFetchStatus        = "catalog endpoint %s returned status %d"
	ErrMsgAllSourcesFailed   = "all catalog sources failed"
	ErrMsgNoFetcher          = "catalog service has no fetcher configured"
	ErrMsgNoUsableItems      = "catalog document contained no usable items"
	ErrMsgNoSnapshot         = "no catalog snapshot stored"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCatalogLoaded        = "Item catalog loaded"
	LogMsgCatalogFetchStarted  = "Fetching item catalog"
	LogMsgCatalogFetchFallback = "Primary catalog source failed, trying fallback"
	LogMsgCatalogFetchCached   = "All catalog endpoints failed, using cached file"
	LogMsgCatalogCacheWritten  = "Catalog cache file written"
	LogMsgCatalogCacheSkipped  = "Catalog cache file not written"
	LogMsgDuplicateItem        = "Duplicate item name in catalog, keeping last occurrence"
	LogMsgRecordSkipped        = "Catalog record skipped"
)
