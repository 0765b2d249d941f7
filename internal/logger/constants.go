package logger

// Level and format names accepted from LOG_LEVEL / LOG_FORMAT
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "bouquet"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys stamped on records
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeySlot        = "slot"
)
