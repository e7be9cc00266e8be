package pool

import (
	"sync"
	"unicode/utf8"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse.
// Oversized buffers are dropped so one huge input does not pin memory.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > bp.size*64 {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// AppendRune appends the UTF-8 encoding of r to the buffer.
func AppendRune(buffer *[]byte, r rune) {
	*buffer = utf8.AppendRune(*buffer, r)
}
