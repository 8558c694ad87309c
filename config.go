package asynctls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/asynctls/asynctls/internal/protocol"
	ilog "github.com/asynctls/asynctls/internal/slog"
	"github.com/asynctls/asynctls/logging"
	"github.com/asynctls/asynctls/psk"
)

// EarlyDataRejectionPolicy selects what happens when the server rejects early data.
type EarlyDataRejectionPolicy uint8

const (
	// FatalConnectionError fails the connection when early data is rejected.
	FatalConnectionError EarlyDataRejectionPolicy = iota
	// AutomaticResend resends all early data as regular application data,
	// if the parameters negotiated by the full handshake allow it.
	AutomaticResend
)

func (p EarlyDataRejectionPolicy) String() string {
	switch p {
	case FatalConnectionError:
		return "fatal"
	case AutomaticResend:
		return "resend"
	default:
		return fmt.Sprintf("unknown policy: %d", uint8(p))
	}
}

// Config contains all configuration data needed for a Client.
type Config struct {
	// HandshakeTimeout is the timeout used by ConnectHost.
	// If not set, it defaults to 10 seconds.
	HandshakeTimeout time.Duration
	// SocketTimeout is the timeout for establishing the underlying connection,
	// used by ConnectHostAddr.
	// If not set, it defaults to 5 seconds.
	SocketTimeout time.Duration
	// EarlyDataRejectionPolicy is applied when the server rejects early data.
	EarlyDataRejectionPolicy EarlyDataRejectionPolicy
	// PSKStore stores resumption PSKs.
	// If not set, an in-memory store shared by all clients is used.
	PSKStore PSKStore
	// Verifier is used by ConnectHost.
	// If nil, the engine's default verifier is used.
	Verifier CertificateVerifier
	// Extensions is passed to the engine on every connect.
	Extensions ClientExtensions
	// Tracer creates a tracer for every session. It may be nil, as may its return value.
	Tracer func(context.Context, logging.SessionID) *logging.SessionTracer
	// Logger receives debug logs. If not set, logs are written to stderr,
	// filtered by the ASYNCTLS_LOG_LEVEL environment variable.
	Logger *slog.Logger
}

// Clone clones a Config.
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

var (
	defaultPSKStoreOnce sync.Once
	defaultPSKStore     *psk.LRUStore
	defaultLoggerOnce   sync.Once
	defaultLogger       *slog.Logger
)

func getDefaultPSKStore() *psk.LRUStore {
	defaultPSKStoreOnce.Do(func() { defaultPSKStore = psk.NewLRUStore(protocol.DefaultPSKCacheSize) })
	return defaultPSKStore
}

func getDefaultLogger() *slog.Logger {
	defaultLoggerOnce.Do(func() { defaultLogger = ilog.NewLogger(os.Stderr) })
	return defaultLogger
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.HandshakeTimeout < 0 {
		return errors.New("invalid value for Config.HandshakeTimeout")
	}
	if config.SocketTimeout < 0 {
		return errors.New("invalid value for Config.SocketTimeout")
	}
	switch config.EarlyDataRejectionPolicy {
	case FatalConnectionError, AutomaticResend:
	default:
		return fmt.Errorf("invalid value for Config.EarlyDataRejectionPolicy: %s", config.EarlyDataRejectionPolicy)
	}
	return nil
}

// populateConfig populates fields in the Config with their default values, if none are set.
// It may be called with nil.
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	handshakeTimeout := protocol.DefaultHandshakeTimeout
	if config.HandshakeTimeout != 0 {
		handshakeTimeout = config.HandshakeTimeout
	}
	socketTimeout := protocol.DefaultSocketTimeout
	if config.SocketTimeout != 0 {
		socketTimeout = config.SocketTimeout
	}
	var store PSKStore = getDefaultPSKStore()
	if config.PSKStore != nil {
		store = config.PSKStore
	}
	logger := config.Logger
	if logger == nil {
		logger = getDefaultLogger()
	}

	return &Config{
		HandshakeTimeout:         handshakeTimeout,
		SocketTimeout:            socketTimeout,
		EarlyDataRejectionPolicy: config.EarlyDataRejectionPolicy,
		PSKStore:                 store,
		Verifier:                 config.Verifier,
		Extensions:               config.Extensions,
		Tracer:                   config.Tracer,
		Logger:                   logger,
	}
}
