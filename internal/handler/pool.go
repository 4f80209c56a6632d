package handler

import (
	"bytes"
	"sync"
)

// Catalog pages and inventories are the largest bodies we encode; anything
// above maxPooledBuffer is left to the GC instead of pinning memory.
const (
	initialBufferSize = 1 << 10
	maxPooledBuffer   = 64 << 10
)

var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	encodeBuffers.Put(buf)
}
