package asynctls

import (
	"crypto/x509"
	"time"

	"github.com/asynctls/asynctls/internal/protocol"
	"github.com/asynctls/asynctls/psk"
)

// WriteFlags are hints passed along with a write.
type WriteFlags = protocol.WriteFlags

const (
	WriteFlagNone = protocol.WriteFlagNone
	WriteFlagCork = protocol.WriteFlagCork
	WriteFlagEOR  = protocol.WriteFlagEOR
)

// CachedPSK is a resumption credential.
type CachedPSK = psk.CachedPSK

// PSKStore stores resumption credentials keyed by PSK identity.
type PSKStore = psk.Store

// A HandshakeCallback receives the result of Connect.
type HandshakeCallback interface {
	// HandshakeSuccess is called once the connection is usable.
	// If early data is possible, this happens before the handshake is complete,
	// and Client.IsReplaySafe reports false.
	HandshakeSuccess(c *Client)
	HandshakeError(c *Client, err error)
}

// A ConnectCallback receives the result of ConnectAddr.
type ConnectCallback interface {
	ConnectSuccess()
	ConnectErr(err *TransportError)
}

// A ReplaySafetyCallback is notified once data written to the client can no longer be replayed.
type ReplaySafetyCallback interface {
	OnReplaySafe()
}

// A WriteCallback is notified when a write completes.
// Exactly one of its methods is called per write.
type WriteCallback interface {
	WriteSuccess()
	WriteErr(bytesWritten int, err *TransportError)
}

// A ReadCallback receives decrypted application data.
type ReadCallback interface {
	ReadDataAvailable(data []byte)
	ReadErr(err *TransportError)
}

// TransportReadCallback receives events from the underlying transport.
type TransportReadCallback interface {
	ReadDataAvailable(data []byte)
	ReadEOF()
	ReadErr(err *TransportError)
}

// TransportConnectCallback receives the result of ConnectingTransport.Connect.
type TransportConnectCallback interface {
	ConnectSuccess()
	ConnectErr(err *TransportError)
}

// A Transport is the byte stream the handshake runs on.
// All methods are called on the event loop, and all callbacks must be invoked on the event loop.
type Transport interface {
	// WriteChain writes data. The callback may be nil.
	WriteChain(cb WriteCallback, data []byte, flags WriteFlags)
	// SetReadCallback installs the read callback. Setting nil pauses reads.
	SetReadCallback(cb TransportReadCallback)

	// Close closes the transport after pending writes were flushed.
	Close()
	// CloseWithReset closes the transport and resets the connection.
	CloseWithReset()
	// CloseNow closes the transport immediately, dropping pending writes.
	CloseNow()

	Good() bool
	Readable() bool
	Connecting() bool
	Error() bool
}

// ConnectOptions are passed to ConnectingTransport.Connect.
type ConnectOptions struct {
	// BindAddr is the local address to bind to, if any.
	BindAddr string
	// KeepAlive is the TCP keep-alive period. Zero uses the system default.
	KeepAlive time.Duration
}

// A ConnectingTransport is a Transport that can establish the underlying connection.
type ConnectingTransport interface {
	Transport
	Connect(cb TransportConnectCallback, addr string, timeout time.Duration, opts ConnectOptions)
}

// A Timer is a pending timeout.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer already fired or was stopped.
	Stop() bool
}

// An EventBase runs callbacks on the goroutine that drives a Client.
type EventBase interface {
	RunInLoop(f func())
	AfterFunc(d time.Duration, f func()) Timer
}

// A CertificateVerifier verifies the server's certificate chain.
// The client passes it to the engine and never calls it itself.
type CertificateVerifier interface {
	Verify(chain []*x509.Certificate) error
}

// An Extension is an opaque TLS extension.
type Extension struct {
	Type uint16
	Data []byte
}

// ClientExtensions lets the application add extensions to the ClientHello
// and inspect the server's response. It is used by the engine only.
type ClientExtensions interface {
	ClientHelloExtensions() []Extension
	OnEncryptedExtensions(exts []Extension) error
}

// ConnectParams are passed to Engine.Connect.
type ConnectParams struct {
	Verifier   CertificateVerifier // nil selects the engine's default verifier
	SNI        string
	CachedPSK  *CachedPSK // nil if no PSK is available
	Extensions ClientExtensions
}

// AppWrite is an application write forwarded to the engine.
type AppWrite struct {
	Callback WriteCallback
	Data     []byte
	Flags    WriteFlags
}

// EarlyAppWrite is an application write that is to be sent as early data.
type EarlyAppWrite struct {
	Callback WriteCallback
	Data     []byte
	Flags    WriteFlags
}

// The Engine runs the handshake state machine and record layer.
// Every method that can make progress returns the actions the client has to apply, in order.
type Engine interface {
	Connect(params ConnectParams) []Action
	AppWrite(w AppWrite) []Action
	EarlyAppWrite(w EarlyAppWrite) []Action
	// NewTransportData feeds bytes read from the transport.
	NewTransportData(data []byte) []Action
	// WaitForData tells the engine that the client is waiting for more transport data.
	WaitForData()
	// AppClose asks the engine to send a close notification.
	AppClose() []Action
	// MoveToErrorState makes the engine reject all further input.
	MoveToErrorState(err error)
	InErrorState() bool

	// EarlyParametersMatch reports whether the parameters negotiated by the full handshake
	// match those early data was sent under. DefaultEarlyParametersMatch can be used.
	EarlyParametersMatch(state *State) bool

	ExportKeyingMaterial(label string, context []byte, length int) ([]byte, error)
	ExportEarlyKeyingMaterial(label string, context []byte, length int) ([]byte, error)
}

// EarlyDataParams are the parameters early data is sent under.
type EarlyDataParams struct {
	Version            uint16
	CipherSuite        uint16
	ALPN               string
	ServerCertificates []*x509.Certificate
	ClientCertificates []*x509.Certificate
}

// State is the handshake state published by the engine through MutateState actions.
// The client only reads it.
type State struct {
	Version            uint16
	CipherSuite        uint16
	ALPN               string
	ServerCertificates []*x509.Certificate
	ClientCertificates []*x509.Certificate
	// PSKResumed is set if the handshake resumed a session.
	PSKResumed bool
	// EarlyDataParams is set while the engine attempts early data.
	EarlyDataParams *EarlyDataParams
}
