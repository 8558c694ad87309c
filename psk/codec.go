package psk

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/cryptobyte"
)

const pskRevision = 1

var errTruncated = errors.New("psk: truncated encoding")

func appendTime(b *cryptobyte.Builder, t time.Time) {
	if t.IsZero() {
		b.AddUint64(0)
		return
	}
	b.AddUint64(uint64(t.UnixMilli()))
}

func readTime(s *cryptobyte.String, t *time.Time) bool {
	var ms uint64
	if !s.ReadUint64(&ms) {
		return false
	}
	if ms == 0 {
		*t = time.Time{}
	} else {
		*t = time.UnixMilli(int64(ms))
	}
	return true
}

func (p *CachedPSK) marshal(b *cryptobyte.Builder) {
	b.AddUint8(pskRevision)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.Identity) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.Secret) })
	b.AddUint16(p.Version)
	b.AddUint16(p.CipherSuite)
	b.AddUint16(p.Group)
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes([]byte(p.ServerName)) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes([]byte(p.ALPN)) })
	b.AddUint32(p.MaxEarlyDataSize)
	b.AddUint32(p.TicketAgeAdd)
	appendTime(b, p.TicketIssueTime)
	appendTime(b, p.TicketExpirationTime)
	b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, cert := range p.ServerCertificates {
			b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(cert) })
		}
	})
}

// MarshalBinary encodes the PSK.
func (p *CachedPSK) MarshalBinary() ([]byte, error) {
	b := cryptobyte.NewBuilder(make([]byte, 0, 128+len(p.Identity)))
	p.marshal(b)
	return b.Bytes()
}

func (p *CachedPSK) unmarshal(s *cryptobyte.String) error {
	var rev uint8
	if !s.ReadUint8(&rev) {
		return errTruncated
	}
	if rev != pskRevision {
		return fmt.Errorf("psk: unknown revision %d", rev)
	}
	var identity, secret, serverName, alpn, certs cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&identity) ||
		!s.ReadUint8LengthPrefixed(&secret) ||
		!s.ReadUint16(&p.Version) ||
		!s.ReadUint16(&p.CipherSuite) ||
		!s.ReadUint16(&p.Group) ||
		!s.ReadUint8LengthPrefixed(&serverName) ||
		!s.ReadUint8LengthPrefixed(&alpn) ||
		!s.ReadUint32(&p.MaxEarlyDataSize) ||
		!s.ReadUint32(&p.TicketAgeAdd) ||
		!readTime(s, &p.TicketIssueTime) ||
		!readTime(s, &p.TicketExpirationTime) ||
		!s.ReadUint24LengthPrefixed(&certs) {
		return errTruncated
	}
	p.Identity = append([]byte(nil), identity...)
	p.Secret = append([]byte(nil), secret...)
	p.ServerName = string(serverName)
	p.ALPN = string(alpn)
	p.ServerCertificates = nil
	for !certs.Empty() {
		var cert cryptobyte.String
		if !certs.ReadUint24LengthPrefixed(&cert) {
			return errTruncated
		}
		p.ServerCertificates = append(p.ServerCertificates, append([]byte(nil), cert...))
	}
	return nil
}

// UnmarshalBinary decodes a PSK encoded by MarshalBinary.
func (p *CachedPSK) UnmarshalBinary(data []byte) error {
	s := cryptobyte.String(data)
	if err := p.unmarshal(&s); err != nil {
		return err
	}
	if !s.Empty() {
		return errors.New("psk: trailing data")
	}
	return nil
}
