package database

import "time"

// Pool sizing shared by every binary that opens a connection pool
const (
	// DefaultMinConnections keeps a few warm connections around so the
	// first query after an idle stretch does not pay the dial cost
	DefaultMinConnections = 2

	// DefaultConnectTimeout bounds the startup ping. The API server can
	// run without a database, so an unreachable one has to fail fast
	// instead of stalling boot.
	DefaultConnectTimeout = 5 * time.Second

	// DefaultHealthCheckPeriod is how often pgxpool probes idle
	// connections in the background
	DefaultHealthCheckPeriod = time.Minute
)

// Error messages
const (
	ErrMsgParseConnString = "failed to parse connection string: %w"
	ErrMsgCreatePool      = "failed to create connection pool: %w"
	ErrMsgPingDatabase    = "database unreachable after %s: %w"
)

// Log messages
const (
	LogMsgDatabaseConnected = "Database connection established"
)
