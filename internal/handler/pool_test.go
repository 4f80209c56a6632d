package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	t.Run("Buffers Come Back Empty", func(t *testing.T) {
		buf := getBuffer()
		buf.WriteString(`{"balance":12.00}`)
		putBuffer(buf)

		assert.Zero(t, getBuffer().Len())
	})

	t.Run("Oversized And Nil Are Dropped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			putBuffer(nil)
			putBuffer(bytes.NewBuffer(make([]byte, 0, maxPooledBuffer+1)))
		})
	})
}
