package ringbuffer

// A RingBuffer is a growable FIFO queue.
// The zero value is an empty queue ready to use.
type RingBuffer[T any] struct {
	ring             []T
	headPos, tailPos int
	full             bool
}

const minSize = 4

// Init preallocates space for size elements.
func (r *RingBuffer[T]) Init(size int) {
	r.ring = make([]T, size)
	r.headPos, r.tailPos, r.full = 0, 0, false
}

func (r *RingBuffer[T]) Len() int {
	if r.full {
		return len(r.ring)
	}
	if r.tailPos >= r.headPos {
		return r.tailPos - r.headPos
	}
	return r.tailPos - r.headPos + len(r.ring)
}

func (r *RingBuffer[T]) Empty() bool {
	return !r.full && r.headPos == r.tailPos
}

func (r *RingBuffer[T]) PushBack(t T) {
	if r.full || len(r.ring) == 0 {
		r.grow()
	}
	r.ring[r.tailPos] = t
	r.tailPos = r.next(r.tailPos)
	r.full = r.tailPos == r.headPos
}

// PeekFront returns the oldest element without removing it.
// It panics if the queue is empty.
func (r *RingBuffer[T]) PeekFront() T {
	if r.Empty() {
		panic("ringbuffer: peek from an empty queue")
	}
	return r.ring[r.headPos]
}

// PopFront removes and returns the oldest element.
// It panics if the queue is empty.
func (r *RingBuffer[T]) PopFront() T {
	if r.Empty() {
		panic("ringbuffer: pop from an empty queue")
	}
	r.full = false
	t := r.ring[r.headPos]
	r.ring[r.headPos] = *new(T)
	r.headPos = r.next(r.headPos)
	return t
}

// Drain pops every element in FIFO order and passes it to f.
// Elements pushed by f are drained as well.
func (r *RingBuffer[T]) Drain(f func(T)) {
	for !r.Empty() {
		f(r.PopFront())
	}
}

func (r *RingBuffer[T]) Clear() {
	clear(r.ring)
	r.headPos, r.tailPos, r.full = 0, 0, false
}

func (r *RingBuffer[T]) next(pos int) int {
	pos++
	if pos == len(r.ring) {
		return 0
	}
	return pos
}

// grow doubles the capacity. It must only be called when the queue is full or unallocated.
func (r *RingBuffer[T]) grow() {
	oldRing := r.ring
	newSize := max(2*len(oldRing), minSize)
	r.ring = make([]T, newSize)
	headLen := copy(r.ring, oldRing[r.headPos:])
	copy(r.ring[headLen:], oldRing[:r.headPos])
	r.headPos, r.tailPos, r.full = 0, len(oldRing), false
}
