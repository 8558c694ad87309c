package tlserr

import "fmt"

// ErrorKind classifies a TransportError.
type ErrorKind uint8

// The error kinds surfaced to callers.
const (
	Unknown ErrorKind = iota
	NotOpen
	AlreadyOpen
	BadArgs
	EndOfFile
	InvalidState
	TimedOut
	InternalError
	NetworkError
	// SSLError is used for failures reported by the protocol engine.
	SSLError
	// EarlyDataRejected is used when the server declined early data
	// and the rejection could not be recovered from.
	EarlyDataRejected
)

func (k ErrorKind) String() string {
	switch k {
	case Unknown:
		return "UNKNOWN"
	case NotOpen:
		return "NOT_OPEN"
	case AlreadyOpen:
		return "ALREADY_OPEN"
	case BadArgs:
		return "BAD_ARGS"
	case EndOfFile:
		return "END_OF_FILE"
	case InvalidState:
		return "INVALID_STATE"
	case TimedOut:
		return "TIMED_OUT"
	case InternalError:
		return "INTERNAL_ERROR"
	case NetworkError:
		return "NETWORK_ERROR"
	case SSLError:
		return "SSL_ERROR"
	case EarlyDataRejected:
		return "EARLY_DATA_REJECTED"
	default:
		return fmt.Sprintf("unknown error kind: %d", uint8(k))
	}
}
