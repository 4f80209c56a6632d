package event

import "time"

// EventSchemaVersion is stamped on every event
const EventSchemaVersion = "1.0"

// Retry defaults for the ResilientPublisher
const (
	RetryInitialDelaySeconds = 2
	RetryMaxAttempts         = 5

	// RetryMaxDelay caps a single backoff step
	RetryMaxDelay = 30 * time.Second
)

// DeadLetterFilePermissions is the mode of the JSON-lines dead-letter file
const DeadLetterFilePermissions = 0o644

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"

	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %w"
)

// CalculateRetryDelay doubles baseDelay per attempt (attempt 1 waits baseDelay)
// and never exceeds RetryMaxDelay.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= RetryMaxDelay {
			return RetryMaxDelay
		}
	}
	if delay > RetryMaxDelay {
		return RetryMaxDelay
	}
	return delay
}
