package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingBouquet     = "Starting Bouquet"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 3

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/deadletter.jsonl"

	// EventLogCleanupInterval is how often old journal entries are pruned
	EventLogCleanupInterval = 24 * time.Hour
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage and Catalog Messages
// =============================================================================

const (
	LogMsgSaveBackendSelected = "Save backend selected"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgSyncingFlowers      = "Syncing flowers from CSV catalog..."
	LogMsgFlowersSynced       = "Flowers synced successfully"
	LogMsgBalanceLoaded       = "Balance loaded"
	LogMsgBalanceDefaults     = "Balance file not found, using defaults"
	LogMsgGardenLoaded        = "Garden loaded"

	ErrMsgFailedOpenSaves      = "failed to open save store"
	ErrMsgFailedOpenJournal    = "failed to open event journal"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to apply migrations"
	ErrMsgFailedLoadFlowers    = "failed to load flower catalog"
	ErrMsgFailedSyncFlowers    = "failed to sync flowers to database"
	ErrMsgFailedLoadBalance    = "failed to load balance"
	ErrMsgFailedBuildEngines   = "failed to build engines"
	ErrMsgFailedLoadGarden     = "failed to load garden"
	ErrMsgUnknownSaveBackend   = "unknown save backend"
	ErrMsgFailedRegisterEvents = "failed to register event handlers"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgNarrativeSubscribed        = "Narrative renderer subscribed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgFinalSaveFailed            = "Final save failed"
	LogMsgDatabaseClosed             = "Database pool closed"
)
