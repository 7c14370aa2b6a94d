package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Catalog Refresh Job
// ============================================================================

// Log messages for the periodic catalog refresh
const (
	LogMsgCatalogRefreshStarted   = "Catalog refresh starting"
	LogMsgCatalogRefreshCompleted = "Catalog refresh completed"
	LogMsgSnapshotSynced          = "Catalog snapshot synced to database"
	LogMsgSnapshotSyncSkipped     = "Catalog snapshot sync skipped"
)

// Pool sizing for the catalog refresh pool. One worker with a queue of
// one: a tick that lands while a refresh is running is dropped.
const (
	RefreshWorkerCount = 1
	RefreshQueueSize   = 1
)

// ============================================================================
// Test Configuration
// ============================================================================

// Pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
