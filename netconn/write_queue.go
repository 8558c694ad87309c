package netconn

import (
	"sync"

	"github.com/asynctls/asynctls"
	"github.com/asynctls/asynctls/internal/utils/ringbuffer"
)

type writeRequest struct {
	cb   asynctls.WriteCallback
	data []byte
}

// writeQueue passes writes from the event loop to the writer goroutine.
type writeQueue struct {
	mu      sync.Mutex
	queue   ringbuffer.RingBuffer[writeRequest]
	closing bool // no more writes will be added

	notify chan struct{}
}

func newWriteQueue() *writeQueue {
	return &writeQueue{notify: make(chan struct{}, 1)}
}

func (q *writeQueue) push(w writeRequest) {
	q.mu.Lock()
	q.queue.PushBack(w)
	q.mu.Unlock()
	q.signal()
}

// shutdown makes the writer goroutine return once all queued writes were written.
func (q *writeQueue) shutdown() {
	q.mu.Lock()
	q.closing = true
	q.mu.Unlock()
	q.signal()
}

func (q *writeQueue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// pop returns the next write.
// If the queue is empty, ok is false, and done reports whether shutdown was called.
func (q *writeQueue) pop() (w writeRequest, ok, done bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.queue.Empty() {
		return writeRequest{}, false, q.closing
	}
	return q.queue.PopFront(), true, false
}

func (q *writeQueue) drain() []writeRequest {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closing = true
	if q.queue.Empty() {
		return nil
	}
	ws := make([]writeRequest, 0, q.queue.Len())
	for !q.queue.Empty() {
		ws = append(ws, q.queue.PopFront())
	}
	return ws
}
