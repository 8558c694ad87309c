package eventloop

import (
	"container/heap"
	"time"
)

// Timer is a callback scheduled with Loop.AfterFunc.
type Timer struct {
	loop *Loop
	f    func()

	deadline time.Time
	seq      uint64 // orders timers with the same deadline
	index    int    // position in the heap, -1 if not scheduled
}

// Stop cancels the timer.
// It returns false if the timer already fired or was stopped before.
func (t *Timer) Stop() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.loop.timers, t.index)
	return true
}

type timerHeap []*Timer

var _ heap.Interface = &timerHeap{}

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// wakeupTimer wraps a time.Timer so that it can be re-armed
// regardless of whether its channel was drained.
type wakeupTimer struct {
	t        *time.Timer
	fired    bool // the value was read from the channel
	deadline time.Time
}

func newWakeupTimer() *wakeupTimer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return &wakeupTimer{t: t, fired: true}
}

func (t *wakeupTimer) Chan() <-chan time.Time { return t.t.C }

// SetFired must be called after a value was received from Chan.
func (t *wakeupTimer) SetFired() { t.fired = true }

// Reset arms the timer for deadline. A zero deadline disarms it.
func (t *wakeupTimer) Reset(deadline time.Time) {
	if deadline.Equal(t.deadline) && !t.fired {
		return
	}
	if !t.t.Stop() && !t.fired {
		<-t.t.C
	}
	t.fired = true
	t.deadline = deadline
	if !deadline.IsZero() {
		t.t.Reset(time.Until(deadline))
		t.fired = false
	}
}

func (t *wakeupTimer) Stop() {
	t.t.Stop()
}
