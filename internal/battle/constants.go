package battle

import "time"

// SettleGap is added to the spin duration before a round settles.
const SettleGap = 50 * time.Millisecond

// Finished playbacks stay readable for a while.
const (
	PlaybackCacheSize = 64
	PlaybackCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgPlaybackStarted  = "Battle playback started"
	LogMsgPlaybackFinished = "Battle playback finished"
	LogMsgPlaybackAborted  = "Battle playback aborted"
	LogMsgRoundSkipped     = "Battle round has no drawable contents"
	LogMsgPublishFailed    = "Failed to publish battle event"
	LogMsgRecordWinFailed  = "Failed to record battle win"
)
