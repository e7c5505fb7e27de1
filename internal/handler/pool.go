package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a single equipment record or a small raw-cost bill
	initialBufferSize = 512

	// maxPooledBufferSize keeps large catalog pages from pinning memory in the pool
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf and returns it to the pool unless it grew too large
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
