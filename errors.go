package asynctls

import "github.com/asynctls/asynctls/internal/tlserr"

type (
	TransportError = tlserr.TransportError
	ErrorKind      = tlserr.ErrorKind
)

const (
	ErrorUnknown           = tlserr.Unknown
	ErrorNotOpen           = tlserr.NotOpen
	ErrorAlreadyOpen       = tlserr.AlreadyOpen
	ErrorBadArgs           = tlserr.BadArgs
	ErrorEndOfFile         = tlserr.EndOfFile
	ErrorInvalidState      = tlserr.InvalidState
	ErrorTimedOut          = tlserr.TimedOut
	ErrorInternal          = tlserr.InternalError
	ErrorNetwork           = tlserr.NetworkError
	ErrorSSL               = tlserr.SSLError
	ErrorEarlyDataRejected = tlserr.EarlyDataRejected
)

var (
	errEarlyDataRejected       = tlserr.New(tlserr.EarlyDataRejected, "early data rejected")
	errEarlyDataNotResent      = tlserr.New(tlserr.EarlyDataRejected, "early data rejected, could not be resent")
	errSocketClosedLocally     = tlserr.New(tlserr.EndOfFile, "socket closed locally")
	errReadEOF                 = tlserr.New(tlserr.EndOfFile, "end of file")
	errHandshakeTimeout        = tlserr.New(tlserr.TimedOut, "handshake timed out")
	errWriteInErrorState       = tlserr.New(tlserr.InvalidState, "app write in error state")
	errNoUnderlyingConnect     = tlserr.New(tlserr.BadArgs, "could not find underlying socket")
	errConnectWithClosedSocket = tlserr.New(tlserr.NotOpen, "handshake connect called but socket isn't open")
)

// wrapEngineError converts an error reported by the engine into the error
// delivered to writes and the read callback.
func wrapEngineError(err error) *TransportError {
	if err == nil {
		return tlserr.New(tlserr.SSLError, "unknown error")
	}
	return tlserr.Wrap(tlserr.SSLError, err.Error(), err)
}
