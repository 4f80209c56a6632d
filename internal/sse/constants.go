package sse

import "time"

// Channel capacities. The hub drops rather than blocks when one is full.
const (
	BroadcastBufferSize = 256
	ClientEventBuffer   = 64
	ClientChannelBuffer = 10
)

const (
	// KeepaliveInterval keeps idle proxies from closing the stream.
	KeepaliveInterval = 30 * time.Second
	// ReconnectDelay is sent as the stream's retry hint.
	ReconnectDelay = 3 * time.Second
)

// QueryParamTypes narrows a stream, e.g. ?types=reveal.*,battle.completed
const QueryParamTypes = "types"

// Stream-level events that do not come from the game bus.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

const (
	ContentTypeEventStream = "text/event-stream"
	ErrMsgStreamingUnsup   = "streaming not supported"
)

const (
	LogMsgClientConnected    = "Event stream opened"
	LogMsgClientDisconnected = "Event stream closed"
	LogMsgEventBroadcast     = "Forwarding event to streams"
	LogMsgEventDropped       = "Event hub buffer full, dropping event"
	LogMsgWriteError         = "Failed to write stream event"
)
