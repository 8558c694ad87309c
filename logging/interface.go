// Package logging defines a tracing interface for client sessions.
// It is used by the qlog and metrics packages, and can be implemented by applications.
package logging

// A SessionTracer records events for a single client session.
// All fields are optional; nil fields are skipped.
// The functions are called on the event loop of the session.
type SessionTracer struct {
	StartedHandshake        func(sni, pskIdentity string, resumption bool)
	EarlyHandshakeSucceeded func(maxEarlyDataSize uint32)
	HandshakeSucceeded      func(earlyDataAccepted bool)
	// WroteEarlyData is called for every write sent as early data.
	WroteEarlyData func(n int)
	// QueuedAppData is called for every write held back until the handshake completes.
	QueuedAppData func(n int)
	// FlushedAppData is called for every queued write released after the handshake.
	FlushedAppData func(n int)
	// ResentEarlyData is called when rejected early data is resent as regular data.
	ResentEarlyData   func(n int)
	EarlyDataRejected func(outcome RejectionOutcome)
	StoredPSK         func(identity string)
	RemovedPSK        func(identity string)
	ClosedSession     func(err error)
	// Close is called once the session is destroyed.
	Close func()
}
