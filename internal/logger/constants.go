package logger

// ContextKeyRequestID is the context key under which the request id and
// its scoped logger travel
const ContextKeyRequestID = "request_id"

// Accepted LOG_LEVEL values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks used when the build carries no version information
const (
	DefaultServiceName = "wynnforge"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment names that change logger defaults
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
