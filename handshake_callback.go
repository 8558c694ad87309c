package asynctls

import "github.com/asynctls/asynctls/internal/tlserr"

// pendingCallback is the callback waiting for the result of a connect attempt.
// It is implemented by handshakeCallback and connectCallback.
type pendingCallback interface {
	success(c *Client)
	fail(c *Client, err error)
}

type handshakeCallback struct{ HandshakeCallback }

func (cb handshakeCallback) success(c *Client)         { cb.HandshakeSuccess(c) }
func (cb handshakeCallback) fail(c *Client, err error) { cb.HandshakeError(c, err) }

type connectCallback struct{ ConnectCallback }

func (cb connectCallback) success(*Client) { cb.ConnectSuccess() }

func (cb connectCallback) fail(_ *Client, err error) {
	if err == nil {
		cb.ConnectErr(tlserr.New(tlserr.SSLError, "unknown error"))
		return
	}
	cb.ConnectErr(tlserr.FromError(err, tlserr.SSLError))
}

// callbackSlot holds at most one pending callback.
type callbackSlot struct {
	cb pendingCallback
}

func (s *callbackSlot) set(cb pendingCallback) {
	if s.cb != nil {
		panic("asynctls: connect called while a connect attempt is outstanding")
	}
	s.cb = cb
}

func (s *callbackSlot) pending() bool { return s.cb != nil }

// take removes the callback from the slot.
// The slot is empty before the callback is invoked, so a callback may start a new connect attempt.
func (s *callbackSlot) take() pendingCallback {
	cb := s.cb
	s.cb = nil
	return cb
}
