package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new one is opened
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGateway     = "Starting case-opening gateway"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event delivery
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	LogMsgFailedOpenDeadLetter      = "failed to open dead-letter file"
)

// =============================================================================
// Game Config Loading
// =============================================================================

const (
	LogMsgLoadingRevealBands  = "Loading reveal odds bands..."
	LogMsgLoadingContracts    = "Loading contract rules..."
	LogMsgRevealBandsLoaded   = "Reveal odds bands loaded"
	LogMsgContractsLoaded     = "Contract rules loaded"
	LogMsgGameConfigDefaulted = "Game config file missing, using built-in defaults"

	ErrMsgFailedLoadRevealBands = "failed to load reveal bands"
	ErrMsgFailedLoadContracts   = "failed to load contract rules"
	ErrMsgFailedBuildEngine     = "failed to build reveal engine"
)

// =============================================================================
// Store Initialization
// =============================================================================

const (
	LogMsgSessionRestored = "Session mirror restored"
	LogMsgSessionEmpty    = "No saved session, starting signed out"
	ErrMsgFailedOpenStore = "failed to open session store"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgSettleWorkerRegistered     = "Reveal settle worker registered"
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
	LogMsgDeadLetterCloseFailed      = "Dead-letter file close failed"

	// Component names for shutdown logging
	ComponentNameBattle       = "battle"
	ComponentNameSettleWorker = "reveal settle worker"
	ComponentNameScheduler    = "scheduler"
)

// Shutdown log message suffix (component name will be prepended)
const (
	LogMsgServiceShutdownFailed = " shutdown failed"
)
