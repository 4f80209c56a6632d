package reveal

import "time"

// Strip defaults used by both the case opening and battle views.
const (
	DefaultStripLength  = 120
	DefaultWinIndex     = 90
	DefaultSpinDuration = 5 * time.Second
)

// RollScale is the width of the probability space bands are expressed in (percent).
const RollScale = 100.0

// Default band ceilings, in percent. A roll lands in the first band whose ceiling exceeds it.
const (
	KnifeBandUpper      = 0.5
	CovertBandUpper     = 2.0
	ClassifiedBandUpper = 7.0
	RestrictedBandUpper = 20.0
	MilspecBandUpper    = 50.0
	CommonBandUpper     = RollScale
)

// Winner sources recorded on a strip.
const (
	SourceServer Source = "server"
	SourceLocal  Source = "local"
)

// Log messages
const (
	LogMsgBandsLoaded      = "Reveal band table loaded"
	LogMsgBandsFallback    = "Reveal band table file missing, using defaults"
	LogMsgEmptyContents    = "Strip requested for empty contents"
	LogMsgOverrideNotInSet = "Winner override is not part of the case contents"
)
