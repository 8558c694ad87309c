package protocol

import "time"

// DefaultHandshakeTimeout is the handshake timeout used by ConnectHost if none is configured.
const DefaultHandshakeTimeout = 10 * time.Second

// DefaultSocketTimeout is the timeout for establishing the underlying connection.
const DefaultSocketTimeout = 5 * time.Second

// DefaultPSKCacheSize is the number of resumption PSKs kept by the default in-memory store.
const DefaultPSKCacheSize = 64

// MaxSnapshotPSKs is the maximum number of PSKs loaded from a store snapshot by the tooling.
const MaxSnapshotPSKs = 1 << 16

// ReadBufferSize is the size of the buffer used by the net.Conn transport for reads.
const ReadBufferSize = 16 * 1024

// WriteBurst is the burst size used when pacing writes of the net.Conn transport.
const WriteBurst = 16 * 1024
