package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// SourceDatabase labels a catalog snapshot restored from the database
const SourceDatabase = "database"

// Log messages for startup
const (
	LogMsgLoggingInitialized    = "Logging initialized"
	LogMsgStartingService       = "Starting wynnforge"
	LogMsgConfigurationLoaded   = "Configuration loaded"
	LogMsgCatalogFetchFailed    = "Catalog fetch failed, trying database snapshot"
	LogMsgCatalogRestoredFromDB = "Catalog restored from database snapshot"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)
