package logging

// NewMultiplexedSessionTracer creates a session tracer that multiplexes events to multiple tracers.
// Nil tracers are ignored.
func NewMultiplexedSessionTracer(tracers ...*SessionTracer) *SessionTracer {
	var ts []*SessionTracer
	for _, t := range tracers {
		if t != nil {
			ts = append(ts, t)
		}
	}
	switch len(ts) {
	case 0:
		return nil
	case 1:
		return ts[0]
	}
	return &SessionTracer{
		StartedHandshake: func(sni, pskIdentity string, resumption bool) {
			for _, t := range ts {
				if t.StartedHandshake != nil {
					t.StartedHandshake(sni, pskIdentity, resumption)
				}
			}
		},
		EarlyHandshakeSucceeded: func(maxEarlyDataSize uint32) {
			for _, t := range ts {
				if t.EarlyHandshakeSucceeded != nil {
					t.EarlyHandshakeSucceeded(maxEarlyDataSize)
				}
			}
		},
		HandshakeSucceeded: func(earlyDataAccepted bool) {
			for _, t := range ts {
				if t.HandshakeSucceeded != nil {
					t.HandshakeSucceeded(earlyDataAccepted)
				}
			}
		},
		WroteEarlyData: func(n int) {
			for _, t := range ts {
				if t.WroteEarlyData != nil {
					t.WroteEarlyData(n)
				}
			}
		},
		QueuedAppData: func(n int) {
			for _, t := range ts {
				if t.QueuedAppData != nil {
					t.QueuedAppData(n)
				}
			}
		},
		FlushedAppData: func(n int) {
			for _, t := range ts {
				if t.FlushedAppData != nil {
					t.FlushedAppData(n)
				}
			}
		},
		ResentEarlyData: func(n int) {
			for _, t := range ts {
				if t.ResentEarlyData != nil {
					t.ResentEarlyData(n)
				}
			}
		},
		EarlyDataRejected: func(outcome RejectionOutcome) {
			for _, t := range ts {
				if t.EarlyDataRejected != nil {
					t.EarlyDataRejected(outcome)
				}
			}
		},
		StoredPSK: func(identity string) {
			for _, t := range ts {
				if t.StoredPSK != nil {
					t.StoredPSK(identity)
				}
			}
		},
		RemovedPSK: func(identity string) {
			for _, t := range ts {
				if t.RemovedPSK != nil {
					t.RemovedPSK(identity)
				}
			}
		},
		ClosedSession: func(err error) {
			for _, t := range ts {
				if t.ClosedSession != nil {
					t.ClosedSession(err)
				}
			}
		},
		Close: func() {
			for _, t := range ts {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
