package asynctls

import "github.com/asynctls/asynctls/internal/utils/ringbuffer"

type engineOp struct {
	run func(Engine) []Action
	// failWrite is set for write operations.
	// It is called instead of run if the engine is in error state by the time the write is processed.
	failWrite func(*TransportError)
}

// engineDriver serializes calls into the Engine.
// A call made while the actions of another call are applied (e.g. from a callback)
// is queued, and runs once all earlier calls were processed.
type engineDriver struct {
	engine Engine
	// apply applies a single action.
	// If it returns false, the remaining actions of the batch are dropped.
	apply func(Action) bool

	busy  bool
	queue ringbuffer.RingBuffer[engineOp]
}

func newEngineDriver(engine Engine, apply func(Action) bool) *engineDriver {
	return &engineDriver{engine: engine, apply: apply}
}

func (d *engineDriver) connect(params ConnectParams) {
	d.do(engineOp{run: func(e Engine) []Action { return e.Connect(params) }})
}

func (d *engineDriver) newTransportData(data []byte) {
	d.do(engineOp{run: func(e Engine) []Action { return e.NewTransportData(data) }})
}

func (d *engineDriver) appClose() {
	d.do(engineOp{run: func(e Engine) []Action { return e.AppClose() }})
}

func (d *engineDriver) appWrite(w AppWrite) {
	d.do(engineOp{
		run:       func(e Engine) []Action { return e.AppWrite(w) },
		failWrite: failWriteCallback(w.Callback),
	})
}

func (d *engineDriver) earlyAppWrite(w EarlyAppWrite) {
	d.do(engineOp{
		run:       func(e Engine) []Action { return e.EarlyAppWrite(w) },
		failWrite: failWriteCallback(w.Callback),
	})
}

func failWriteCallback(cb WriteCallback) func(*TransportError) {
	return func(err *TransportError) {
		if cb != nil {
			cb.WriteErr(0, err)
		}
	}
}

func (d *engineDriver) do(op engineOp) {
	d.queue.PushBack(op)
	if d.busy {
		return
	}
	d.busy = true
	defer func() { d.busy = false }()

	for !d.queue.Empty() {
		op := d.queue.PopFront()
		if op.failWrite != nil && d.engine.InErrorState() {
			op.failWrite(errWriteInErrorState)
			continue
		}
		for _, a := range op.run(d.engine) {
			if !d.apply(a) {
				break
			}
		}
	}
}
