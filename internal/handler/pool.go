package handler

import (
	"bytes"
	"sync"
)

// Buffers above this size are not returned to the pool, so one oversized
// export response cannot pin memory for the life of the process.
const maxPooledBufferBytes = 64 << 10

// bufferPool reuses encode buffers across JSON responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferBytes {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
