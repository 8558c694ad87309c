package logging

import "github.com/google/uuid"

// A SessionID identifies a client session in logs and traces.
type SessionID uuid.UUID

// NewSessionID creates a random session ID.
func NewSessionID() SessionID { return SessionID(uuid.New()) }

func (id SessionID) String() string { return uuid.UUID(id).String() }

// ParseSessionID parses the string representation of a SessionID.
func ParseSessionID(s string) (SessionID, error) {
	id, err := uuid.Parse(s)
	return SessionID(id), err
}

// RejectionOutcome is what happened after the server rejected early data.
type RejectionOutcome uint8

const (
	// RejectionFatal means the rejection closed the session.
	RejectionFatal RejectionOutcome = iota
	// RejectionResent means the early data was resent as regular data.
	RejectionResent
	// RejectionNotResent means the early data could not be resent, and the session was closed.
	RejectionNotResent
)

func (o RejectionOutcome) String() string {
	switch o {
	case RejectionFatal:
		return "fatal"
	case RejectionResent:
		return "resent"
	case RejectionNotResent:
		return "not_resent"
	default:
		return "unknown"
	}
}
