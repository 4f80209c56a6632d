package logger

const ContextKeyRequestID = "request_id"

// Accepted level and format spellings
const (
	LogLevelDebug   = "debug"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
	LogFormatJSON   = "json"
)

// DefaultServiceName tags records when the caller leaves ServiceName empty.
const DefaultServiceName = "csgo-frontend"

// Attribute keys on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
