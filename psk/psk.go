// Package psk holds resumption credentials (pre-shared keys) for client sessions.
package psk

import (
	"bytes"
	"time"
)

// A CachedPSK is a resumption credential obtained from a previous session.
// Its contents are opaque to the client: they are produced and consumed by the protocol engine.
type CachedPSK struct {
	// Identity is the ticket presented to the server.
	Identity []byte
	// Secret is the resumption secret.
	Secret []byte

	Version     uint16
	CipherSuite uint16
	Group       uint16

	ServerName string
	ALPN       string

	// MaxEarlyDataSize is the early data budget the server granted with this ticket.
	// Zero means early data is not allowed.
	MaxEarlyDataSize uint32
	TicketAgeAdd     uint32

	TicketIssueTime      time.Time
	TicketExpirationTime time.Time

	// ServerCertificates is the DER-encoded server certificate chain of the original session.
	ServerCertificates [][]byte
}

// Expired reports whether the ticket is no longer valid at time now.
// A zero expiration time never expires.
func (p *CachedPSK) Expired(now time.Time) bool {
	return !p.TicketExpirationTime.IsZero() && !now.Before(p.TicketExpirationTime)
}

// AllowsEarlyData reports whether the ticket can be used for early data.
func (p *CachedPSK) AllowsEarlyData() bool {
	return p.MaxEarlyDataSize > 0
}

// Equal reports whether two PSKs carry the same credential.
func (p *CachedPSK) Equal(other *CachedPSK) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.ServerCertificates) != len(other.ServerCertificates) {
		return false
	}
	for i := range p.ServerCertificates {
		if !bytes.Equal(p.ServerCertificates[i], other.ServerCertificates[i]) {
			return false
		}
	}
	return bytes.Equal(p.Identity, other.Identity) &&
		bytes.Equal(p.Secret, other.Secret) &&
		p.Version == other.Version &&
		p.CipherSuite == other.CipherSuite &&
		p.Group == other.Group &&
		p.ServerName == other.ServerName &&
		p.ALPN == other.ALPN &&
		p.MaxEarlyDataSize == other.MaxEarlyDataSize &&
		p.TicketAgeAdd == other.TicketAgeAdd &&
		p.TicketIssueTime.Equal(other.TicketIssueTime) &&
		p.TicketExpirationTime.Equal(other.TicketExpirationTime)
}

// A Store persists PSKs keyed by PSK identity (usually the server name).
// Implementations shared between clients running on different goroutines must be safe for concurrent use.
type Store interface {
	GetPSK(identity string) (*CachedPSK, bool)
	PutPSK(identity string, psk *CachedPSK)
	RemovePSK(identity string)
}
