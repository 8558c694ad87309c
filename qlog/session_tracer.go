// Package qlog records client sessions in the qlog format (JSON-SEQ).
package qlog

import (
	"io"
	"time"

	"github.com/asynctls/asynctls/logging"
)

// NewSessionTracer creates a tracer that writes a qlog to w.
// w is closed when the session is destroyed.
func NewSessionTracer(w io.WriteCloser, id logging.SessionID) *logging.SessionTracer {
	wr := newWriter(w, trace{SessionID: id, ReferenceTime: time.Now()})
	go wr.Run()

	record := func(details eventDetails) { wr.RecordEvent(time.Now(), details) }
	return &logging.SessionTracer{
		StartedHandshake: func(sni, pskIdentity string, resumption bool) {
			record(eventHandshakeStarted{SNI: sni, PSKIdentity: pskIdentity, Resumption: resumption})
		},
		EarlyHandshakeSucceeded: func(maxEarlyDataSize uint32) {
			record(eventEarlyHandshakeSucceeded{MaxEarlyDataSize: maxEarlyDataSize})
		},
		HandshakeSucceeded: func(earlyDataAccepted bool) {
			record(eventHandshakeSucceeded{EarlyDataAccepted: earlyDataAccepted})
		},
		WroteEarlyData: func(n int) { record(eventAppData{name: "early_data_written", Length: n}) },
		QueuedAppData:  func(n int) { record(eventAppData{name: "app_data_queued", Length: n}) },
		FlushedAppData: func(n int) { record(eventAppData{name: "app_data_flushed", Length: n}) },
		ResentEarlyData: func(n int) {
			record(eventAppData{name: "early_data_resent", Length: n})
		},
		EarlyDataRejected: func(o logging.RejectionOutcome) { record(eventEarlyDataRejected{Outcome: o}) },
		StoredPSK:         func(identity string) { record(eventPSKUpdated{Identity: identity}) },
		RemovedPSK:        func(identity string) { record(eventPSKUpdated{Identity: identity, Removed: true}) },
		ClosedSession:     func(err error) { record(eventSessionClosed{Err: err}) },
		Close:             wr.Close,
	}
}
