// Package eventloop provides a single goroutine executor that drives a Client.
package eventloop

import (
	"container/heap"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/asynctls/asynctls"
	islog "github.com/asynctls/asynctls/internal/slog"
)

// ErrStopped is returned by Run after Stop was called.
var ErrStopped = errors.New("eventloop: stopped")

var errAlreadyRunning = errors.New("eventloop: already running")

// A Loop runs functions and timers sequentially, on the goroutine that calls Run.
// RunInLoop and AfterFunc are safe for concurrent use.
type Loop struct {
	logger *slog.Logger

	mu       sync.Mutex
	tasks    []func()
	timers   timerHeap
	timerSeq uint64

	wake     chan struct{}
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	running  atomic.Bool
}

var _ asynctls.EventBase = &Loop{}

// New creates a new Loop. The logger may be nil.
func New(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = islog.Discard()
	}
	return &Loop{
		logger: islog.Component(logger, islog.ComponentEventLoop),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RunInLoop schedules f to run on the loop goroutine.
// Functions run in the order they were scheduled.
// When called from the loop goroutine, f runs after the current function returned.
func (l *Loop) RunInLoop(f func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, f)
	l.mu.Unlock()
	l.signal()
}

// AfterFunc schedules f to run on the loop goroutine once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) asynctls.Timer {
	l.mu.Lock()
	l.timerSeq++
	t := &Timer{loop: l, f: f, deadline: time.Now().Add(d), seq: l.timerSeq}
	heap.Push(&l.timers, t)
	isFirst := l.timers[0] == t
	l.mu.Unlock()
	if isFirst {
		l.signal()
	}
	return t
}

// Stop makes Run return.
// Functions and timers that have not run yet are dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Done is closed when Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Run runs the loop until Stop is called or the context is canceled.
// It must only be called once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errAlreadyRunning
	}
	defer close(l.done)

	timer := newWakeupTimer()
	defer timer.Stop()

	l.logger.Debug("event loop started")
	for {
		select {
		case <-l.stop:
			l.logger.Debug("event loop stopped")
			return ErrStopped
		default:
		}

		l.runTasks()
		next := l.runTimers(time.Now())

		l.mu.Lock()
		pending := len(l.tasks) > 0
		l.mu.Unlock()
		if pending {
			continue
		}

		timer.Reset(next)
		select {
		case <-ctx.Done():
			l.logger.Debug("event loop canceled", "error", ctx.Err())
			return ctx.Err()
		case <-l.stop:
		case <-l.wake:
		case <-timer.Chan():
			timer.SetFired()
		}
	}
}

func (l *Loop) runTasks() {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for i, f := range tasks {
		select {
		case <-l.stop:
			return
		default:
		}
		tasks[i] = nil
		f()
	}
}

// runTimers runs all timers that expired at now.
// It returns the deadline of the next timer, or the zero value if none is scheduled.
func (l *Loop) runTimers(now time.Time) time.Time {
	for {
		l.mu.Lock()
		if len(l.timers) == 0 {
			l.mu.Unlock()
			return time.Time{}
		}
		t := l.timers[0]
		if t.deadline.After(now) {
			l.mu.Unlock()
			return t.deadline
		}
		heap.Pop(&l.timers)
		l.mu.Unlock()
		t.f()
	}
}
