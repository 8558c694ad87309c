package tlserr

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// A TransportError is the error value delivered to caller callbacks.
type TransportError struct {
	Kind    ErrorKind
	Message string
	// Err is the underlying cause, if any.
	Err error
}

var _ error = &TransportError{}

// New creates a TransportError without an underlying cause.
func New(kind ErrorKind, msg string) *TransportError {
	return &TransportError{Kind: kind, Message: msg}
}

// Wrap creates a TransportError that wraps err.
func Wrap(kind ErrorKind, msg string, err error) *TransportError {
	return &TransportError{Kind: kind, Message: msg, Err: err}
}

func (e *TransportError) Error() string {
	str := e.Kind.String()
	if len(e.Message) > 0 {
		str += ": " + e.Message
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		str += fmt.Sprintf(" (%s)", e.Err)
	}
	return str
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is matches any TransportError of the same kind.
// End-of-file errors also match io.EOF, network errors match net.ErrClosed.
func (e *TransportError) Is(target error) bool {
	if t, ok := target.(*TransportError); ok {
		return t.Kind == e.Kind
	}
	switch e.Kind {
	case EndOfFile:
		return target == io.EOF
	case NetworkError:
		return target == net.ErrClosed
	}
	return false
}

// FromError converts an arbitrary error into a TransportError.
// TransportErrors are returned as is, any other error is classified with kind.
func FromError(err error, kind ErrorKind) *TransportError {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	return &TransportError{Kind: kind, Message: err.Error(), Err: err}
}
