package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgWorkerQueueFull   = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Reveal Settle Worker
// ============================================================================

const (
	LogMsgSchedulingRevealSettle = "Scheduling reveal settle"
	LogMsgSettlingReveal         = "Settling reveal on timer"
	LogMsgFailedToSettleReveal   = "Failed to settle reveal"
	LogMsgRetryingRevealSettle   = "Settle failed, retrying"
	LogMsgInvalidRevealID        = "Reveal event carried an invalid id"
)

const (
	SettleMaxAttempts = 3
	SettleRetryDelay  = time.Second
)

// ============================================================================
// Log Messages - Balance Sync
// ============================================================================

const (
	LogMsgBalanceSyncFailed  = "Balance sync failed"
	LogMsgBalanceSyncSkipped = "Balance sync skipped, no session"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
