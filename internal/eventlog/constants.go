package eventlog

// Log messages - service events
const (
	LogMsgPayloadNotEncodable = "Event payload could not be flattened, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldSlot          = "slot"
	LogFieldDay           = "day"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// DefaultHistoryLimit caps history queries that do not set a limit
const DefaultHistoryLimit = 500
