package asynctls

import (
	"bytes"
	"crypto/x509"

	"github.com/asynctls/asynctls/internal/utils/ringbuffer"
	"github.com/asynctls/asynctls/logging"
)

// earlyDataState exists while the early data window is open:
// from ReportEarlyHandshakeSuccess until the full handshake settled acceptance or rejection.
type earlyDataState struct {
	// remaining is the early data budget. Once a write was queued, it is 0.
	remaining uint64
	// pendingAppWrites holds writes that couldn't be sent as early data.
	// They are sent as regular data once the handshake completes.
	pendingAppWrites ringbuffer.RingBuffer[AppWrite]
	// resendBuffer holds a copy of all early data sent, if the AutomaticResend policy is used.
	resendBuffer bytes.Buffer
}

func newEarlyDataState(maxEarlyDataSize uint32) *earlyDataState {
	return &earlyDataState{remaining: uint64(maxEarlyDataSize)}
}

// canSendEarly says if a write of n bytes can be sent as early data.
// Writes are never reordered: once a write was queued, all subsequent writes are queued as well.
func (s *earlyDataState) canSendEarly(n int) bool {
	return s.pendingAppWrites.Empty() && uint64(n) <= s.remaining
}

func (c *Client) writeEarlyData(cb WriteCallback, data []byte, flags WriteFlags) {
	ed := c.earlyData
	if !ed.canSendEarly(len(data)) {
		ed.remaining = 0
		ed.pendingAppWrites.PushBack(AppWrite{Callback: cb, Data: data, Flags: flags})
		c.earlyLogger.Debug("queueing write until handshake completion", "len", len(data), "queued", ed.pendingAppWrites.Len())
		if c.tracer != nil && c.tracer.QueuedAppData != nil {
			c.tracer.QueuedAppData(len(data))
		}
		return
	}

	if c.config.EarlyDataRejectionPolicy == AutomaticResend {
		// The caller may reuse data as soon as the write callback was called,
		// which can happen before the server decided on early data.
		ed.resendBuffer.Write(data)
	}
	ed.remaining -= uint64(len(data))
	if c.tracer != nil && c.tracer.WroteEarlyData != nil {
		c.tracer.WroteEarlyData(len(data))
	}
	c.driver.earlyAppWrite(EarlyAppWrite{Callback: cb, Data: data, Flags: flags})
}

// handleEarlyReject applies the rejection policy.
// It returns the error that the connection has to be failed with, if any.
func (c *Client) handleEarlyReject() *TransportError {
	switch c.config.EarlyDataRejectionPolicy {
	case FatalConnectionError:
		c.earlyLogger.Debug("early data rejected")
		c.traceRejection(logging.RejectionFatal)
		return errEarlyDataRejected
	case AutomaticResend:
		if !c.driver.engine.EarlyParametersMatch(&c.state) {
			c.earlyLogger.Debug("early data rejected, parameters changed")
			c.traceRejection(logging.RejectionNotResent)
			return errEarlyDataNotResent
		}
		ed := c.earlyData
		if n := ed.resendBuffer.Len(); n > 0 {
			data := bytes.Clone(ed.resendBuffer.Bytes())
			ed.resendBuffer.Reset()
			c.earlyLogger.Debug("resending rejected early data", "len", n)
			if c.tracer != nil && c.tracer.ResentEarlyData != nil {
				c.tracer.ResentEarlyData(n)
			}
			c.driver.appWrite(AppWrite{Data: data})
		}
		c.traceRejection(logging.RejectionResent)
		return nil
	default:
		panic("unknown early data rejection policy")
	}
}

func (c *Client) traceRejection(o logging.RejectionOutcome) {
	if c.tracer != nil && c.tracer.EarlyDataRejected != nil {
		c.tracer.EarlyDataRejected(o)
	}
}

// DefaultEarlyParametersMatch reports whether the parameters negotiated by the full handshake
// are the ones early data was sent under: the protocol version, cipher suite, ALPN,
// and the server and client certificate chains.
// Engines can use it to implement Engine.EarlyParametersMatch.
func DefaultEarlyParametersMatch(state *State) bool {
	params := state.EarlyDataParams
	if params == nil {
		return false
	}
	return params.Version == state.Version &&
		params.CipherSuite == state.CipherSuite &&
		params.ALPN == state.ALPN &&
		certChainsEqual(params.ServerCertificates, state.ServerCertificates) &&
		certChainsEqual(params.ClientCertificates, state.ClientCertificates)
}

func certChainsEqual(a, b []*x509.Certificate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if a[i] == nil || b[i] == nil || !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
