package utils

// DelayedDestruction defers a teardown function while guards are held.
//
// Entry points that may invoke user callbacks acquire a guard for their duration.
// If a callback requests destruction, teardown runs once the outermost guard is released,
// so the entry point can keep using its receiver until it returns.
// It is not safe for concurrent use.
type DelayedDestruction struct {
	guards    int
	destroyed bool
	pending   bool
	onDestroy func()
}

// NewDelayedDestruction creates a DelayedDestruction that calls onDestroy exactly once.
func NewDelayedDestruction(onDestroy func()) *DelayedDestruction {
	return &DelayedDestruction{onDestroy: onDestroy}
}

// Guard acquires a guard. The returned function releases it and must be called exactly once.
// Usage: defer d.Guard()()
func (d *DelayedDestruction) Guard() (release func()) {
	d.guards++
	var released bool
	return func() {
		if released {
			panic("DelayedDestruction: guard released twice")
		}
		released = true
		d.guards--
		if d.guards == 0 && d.pending {
			d.destroyNow()
		}
	}
}

// Destroy runs the teardown function, or schedules it for when the last guard is released.
// Calling Destroy more than once has no effect.
func (d *DelayedDestruction) Destroy() {
	if d.destroyed || d.pending {
		return
	}
	if d.guards > 0 {
		d.pending = true
		return
	}
	d.destroyNow()
}

func (d *DelayedDestruction) destroyNow() {
	d.pending = false
	d.destroyed = true
	if d.onDestroy != nil {
		d.onDestroy()
	}
}

// Destroyed reports whether teardown has run.
func (d *DelayedDestruction) Destroyed() bool { return d.destroyed }

// DestroyPending reports whether teardown was requested and is waiting for guards to be released.
func (d *DelayedDestruction) DestroyPending() bool { return d.pending }

// Guarded reports whether a guard is currently held.
func (d *DelayedDestruction) Guarded() bool { return d.guards > 0 }
