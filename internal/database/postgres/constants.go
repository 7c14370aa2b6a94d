package postgres

// Error message formats for snapshot persistence
const (
	ErrMsgBeginTxFailed       = "failed to begin transaction: %w"
	ErrMsgInsertSnapshot      = "failed to insert catalog snapshot: %w"
	ErrMsgInsertItems         = "failed to insert catalog items: %w"
	ErrMsgCommitFailed        = "failed to commit snapshot: %w"
	ErrMsgQuerySnapshot       = "failed to query latest snapshot: %w"
	ErrMsgQueryItems          = "failed to query snapshot items: %w"
	ErrMsgDecodeItem          = "failed to decode stored item %q: %w"
	ErrMsgPruneSnapshots      = "failed to prune old snapshots: %w"
	ErrMsgRollbackTransaction = "Failed to rollback transaction"
)

// Log messages
const (
	LogMsgSnapshotWritten   = "Catalog snapshot written"
	LogMsgSnapshotUnchanged = "Catalog unchanged, snapshot skipped"
	LogMsgSnapshotsPruned   = "Old catalog snapshots pruned"
)

// KeepSnapshots bounds how many historical snapshots survive a sync
const KeepSnapshots = 5
