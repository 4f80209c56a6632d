package opening

import "time"

// Progression awarded per opened case.
const XPPerOpening = 10

// Settled reveals stay readable for late pollers.
const (
	SettledCacheSize = 128
	SettledCacheTTL  = 15 * time.Minute
)

// Log messages
const (
	LogMsgRevealOpened       = "Reveal opened"
	LogMsgRevealSpinning     = "Reveal spinning"
	LogMsgRevealSettled      = "Reveal settled"
	LogMsgDebitFailed        = "Case debit failed"
	LogMsgMirrorWriteFailed  = "Failed to persist mirror after debit"
	LogMsgCommitFailed       = "Failed to commit reveal winner"
	LogMsgRevealAbandoned    = "Reveal abandoned, session ended before settle"
	LogMsgPublishFailed      = "Failed to publish reveal event"
)
