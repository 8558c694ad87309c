package netconn

import (
	"log/slog"

	"github.com/asynctls/asynctls/internal/protocol"

	"golang.org/x/time/rate"
)

// Options configure a Transport.
type Options struct {
	// WriteRate limits the egress rate, in bytes per second.
	// Zero means unlimited.
	WriteRate rate.Limit
	// WriteBurst is the maximum number of bytes written at once when WriteRate is set.
	// If zero, it defaults to DefaultWriteBurst.
	WriteBurst int
	// ReadBufferSize is the size of the buffer used for reads from the connection.
	// If zero, it defaults to DefaultReadBufferSize.
	ReadBufferSize int
	Logger         *slog.Logger
}

const (
	DefaultWriteBurst     = protocol.WriteBurst
	DefaultReadBufferSize = protocol.ReadBufferSize
)

func (o *Options) populate() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.WriteBurst <= 0 {
		opts.WriteBurst = DefaultWriteBurst
	}
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = DefaultReadBufferSize
	}
	return opts
}

func (o *Options) newLimiter() *rate.Limiter {
	if o.WriteRate <= 0 || o.WriteRate == rate.Inf {
		return nil
	}
	return rate.NewLimiter(o.WriteRate, o.WriteBurst)
}
