package asynctls

import (
	"context"
	"crypto/x509"
	"log/slog"
	"time"

	ilog "github.com/asynctls/asynctls/internal/slog"
	"github.com/asynctls/asynctls/internal/utils"
	"github.com/asynctls/asynctls/logging"
)

// A Client runs the client side of a TLS handshake over a Transport,
// and provides the application data stream once the handshake succeeded.
//
// If a PSK allowing early data is available, the connection becomes usable
// before the handshake completes. Data written during that window is sent as early data,
// and is subject to replay until IsReplaySafe reports true.
//
// A Client is not safe for concurrent use. All methods must be called on the goroutine
// of its EventBase.
type Client struct {
	transport Transport
	evb       EventBase
	config    *Config
	driver    *engineDriver
	dd        *utils.DelayedDestruction

	callback    callbackSlot
	verifier    CertificateVerifier
	sni         string
	pskIdentity string

	state                State
	earlyData            *earlyDataState // nil unless the early data window is open
	replaySafetyCallback ReplaySafetyCallback

	handshakeTimer      Timer
	handshakeTimerEpoch uint64

	readCallback     ReadCallback
	pendingAppData   [][]byte
	readErr          *TransportError
	transportReading bool

	closeErr *TransportError // the first error delivered

	sessionID   logging.SessionID
	tracer      *logging.SessionTracer
	logger      *slog.Logger
	earlyLogger *slog.Logger
}

// NewClient creates a new Client.
// The transport doesn't need to be connected yet, see ConnectAddr.
func NewClient(transport Transport, engine Engine, evb EventBase, conf *Config) (*Client, error) {
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	conf = populateConfig(conf)
	c := &Client{
		transport: transport,
		evb:       evb,
		config:    conf,
		sessionID: logging.NewSessionID(),
	}
	c.driver = newEngineDriver(engine, c.applyAction)
	c.dd = utils.NewDelayedDestruction(c.destroy)
	if conf.Tracer != nil {
		c.tracer = conf.Tracer(context.Background(), c.sessionID)
	}
	c.logger = ilog.Component(conf.Logger, ilog.ComponentClient).With("session", c.sessionID.String())
	c.earlyLogger = ilog.Component(conf.Logger, ilog.ComponentEarlyData).With("session", c.sessionID.String())
	return c, nil
}

// Connect starts the handshake on an open transport.
// The callback is called exactly once: on success, or when the handshake failed.
// sni and pskIdentity may be empty. If pskIdentity is set, it is used to look up a PSK for resumption,
// and new PSKs issued by the server are stored under it.
// A timeout of 0 disables the handshake timeout.
//
// It panics if another connect attempt is outstanding.
func (c *Client) Connect(cb HandshakeCallback, verifier CertificateVerifier, sni, pskIdentity string, timeout time.Duration) {
	if cb == nil {
		panic("asynctls: nil HandshakeCallback")
	}
	defer c.dd.Guard()()

	c.callback.set(handshakeCallback{cb})
	c.verifier = verifier
	c.sni = sni
	c.pskIdentity = pskIdentity

	c.cancelHandshakeTimeout()
	if timeout != 0 {
		c.startHandshakeTimeout(timeout)
	}

	if !c.transport.Good() {
		c.deliverAllErrors(errConnectWithClosedSocket, false)
		return
	}
	c.startHandshake()
}

// ConnectHost calls Connect using the configured verifier and handshake timeout.
// The hostname is used as the SNI and as the PSK identity.
// If Config.Verifier is nil, the engine verifies the server with its default verifier.
func (c *Client) ConnectHost(cb HandshakeCallback, hostname string) {
	c.Connect(cb, c.config.Verifier, hostname, hostname, c.config.HandshakeTimeout)
}

// ConnectAddr connects the underlying transport to addr, and then starts the handshake.
// The transport must implement ConnectingTransport.
// totalTimeout limits the connection establishment and the handshake, socketTimeout
// only the connection establishment. Zero disables the respective timeout.
//
// It panics if another connect attempt is outstanding.
func (c *Client) ConnectAddr(
	addr string,
	cb ConnectCallback,
	verifier CertificateVerifier,
	sni, pskIdentity string,
	totalTimeout, socketTimeout time.Duration,
	opts ConnectOptions,
) {
	if cb == nil {
		panic("asynctls: nil ConnectCallback")
	}
	defer c.dd.Guard()()

	c.callback.set(connectCallback{cb})
	c.verifier = verifier
	c.sni = sni
	c.pskIdentity = pskIdentity

	c.cancelHandshakeTimeout()
	if totalTimeout != 0 {
		c.startHandshakeTimeout(totalTimeout)
	}

	ct, ok := c.transport.(ConnectingTransport)
	if !ok {
		c.deliverAllErrors(errNoUnderlyingConnect, false)
		return
	}
	c.logger.Debug("connecting transport", "addr", addr, "timeout", socketTimeout)
	ct.Connect((*transportCallbacks)(c), addr, socketTimeout, opts)
}

// ConnectHostAddr calls ConnectAddr using the configured verifier and timeouts.
// The hostname is used as the SNI and as the PSK identity.
func (c *Client) ConnectHostAddr(cb ConnectCallback, addr, hostname string) {
	c.ConnectAddr(addr, cb, c.config.Verifier, hostname, hostname, c.config.HandshakeTimeout, c.config.SocketTimeout, ConnectOptions{})
}

func (c *Client) startHandshake() {
	c.startTransportReads()

	var cachedPSK *CachedPSK
	if c.pskIdentity != "" {
		if p, ok := c.config.PSKStore.GetPSK(c.pskIdentity); ok {
			cachedPSK = p
		}
	}
	c.logger.Debug("starting handshake", "sni", c.sni, "resumption", cachedPSK != nil)
	if c.tracer != nil && c.tracer.StartedHandshake != nil {
		c.tracer.StartedHandshake(c.sni, c.pskIdentity, cachedPSK != nil)
	}

	params := ConnectParams{
		Verifier:   c.verifier,
		SNI:        c.sni,
		CachedPSK:  cachedPSK,
		Extensions: c.config.Extensions,
	}
	c.verifier = nil
	c.driver.connect(params)
}

func (c *Client) startTransportReads() {
	if c.transportReading {
		return
	}
	c.transportReading = true
	c.transport.SetReadCallback((*transportCallbacks)(c))
}

func (c *Client) startHandshakeTimeout(d time.Duration) {
	c.handshakeTimerEpoch++
	epoch := c.handshakeTimerEpoch
	c.handshakeTimer = c.evb.AfterFunc(d, func() {
		// The timer might have been stopped after it already fired.
		if c.handshakeTimer == nil || c.handshakeTimerEpoch != epoch {
			return
		}
		c.handshakeTimer = nil
		c.handshakeTimeoutExpired()
	})
}

func (c *Client) cancelHandshakeTimeout() {
	if c.handshakeTimer == nil {
		return
	}
	c.handshakeTimer.Stop()
	c.handshakeTimer = nil
	c.handshakeTimerEpoch++
}

func (c *Client) handshakeTimeoutExpired() {
	defer c.dd.Guard()()
	c.logger.Debug("handshake timed out")
	c.deliverAllErrors(errHandshakeTimeout, true)
}

// Good reports whether the client can be used for reading and writing.
func (c *Client) Good() bool { return !c.Error() && c.transport.Good() }

// Readable reports whether the transport has data that can be read without blocking.
func (c *Client) Readable() bool { return c.transport.Readable() }

// Connecting reports whether a connect attempt is outstanding.
func (c *Client) Connecting() bool { return c.callback.pending() || c.transport.Connecting() }

// Error reports whether the transport or the handshake failed.
func (c *Client) Error() bool { return c.transport.Error() || c.driver.engine.InErrorState() }

// IsReplaySafe reports whether data written can no longer be replayed.
// It is false while the early data window is open.
func (c *Client) IsReplaySafe() bool { return c.earlyData == nil }

// SetReplaySafetyCallback sets a callback that is called once the connection becomes replay safe.
// It may only be called while IsReplaySafe reports false. If the connection fails first,
// the callback is dropped without being called.
func (c *Client) SetReplaySafetyCallback(cb ReplaySafetyCallback) {
	if cb != nil && c.IsReplaySafe() {
		panic("asynctls: replay safety callback set on a replay safe connection")
	}
	c.replaySafetyCallback = cb
}

// WriteAppData writes application data.
// The callback may be nil. While the early data window is open, data is sent as early data
// as long as the server's budget allows it. Subsequent writes are held back until the handshake
// completes.
func (c *Client) WriteAppData(cb WriteCallback, data []byte, flags WriteFlags) {
	defer c.dd.Guard()()

	if c.Error() {
		if cb != nil {
			cb.WriteErr(0, errWriteInErrorState)
		}
		return
	}
	if c.earlyData != nil {
		c.writeEarlyData(cb, data, flags)
		return
	}
	c.driver.appWrite(AppWrite{Callback: cb, Data: data, Flags: flags})
}

// Write writes application data without write flags.
func (c *Client) Write(cb WriteCallback, data []byte) {
	c.WriteAppData(cb, data, WriteFlagNone)
}

// SetReadCallback sets the callback that receives application data.
// Data received before a read callback was set is delivered right away.
// Setting nil pauses delivery.
func (c *Client) SetReadCallback(cb ReadCallback) {
	defer c.dd.Guard()()

	c.readCallback = cb
	for len(c.pendingAppData) > 0 && c.readCallback != nil {
		data := c.pendingAppData[0]
		c.pendingAppData[0] = nil
		c.pendingAppData = c.pendingAppData[1:]
		c.readCallback.ReadDataAvailable(data)
	}
	if c.readCallback != nil && c.readErr != nil {
		rcb := c.readCallback
		c.readCallback = nil
		rcb.ReadErr(c.readErr)
	}
}

// Close sends a close notification and closes the transport after pending writes were flushed.
// An outstanding connect attempt and writes queued until handshake completion
// fail with a locally closed error.
func (c *Client) Close() {
	defer c.dd.Guard()()

	if c.transport.Good() {
		c.driver.appClose()
		if c.callback.pending() || (c.earlyData != nil && !c.earlyData.pendingAppWrites.Empty()) {
			c.deliverAllErrors(errSocketClosedLocally, false)
		}
	} else {
		c.deliverAllErrors(errSocketClosedLocally, false)
	}
	c.transport.Close()
}

// CloseWithReset sends a close notification, fails all outstanding callbacks, and resets the connection.
func (c *Client) CloseWithReset() {
	defer c.dd.Guard()()

	if c.transport.Good() {
		c.driver.appClose()
	}
	c.deliverAllErrors(errSocketClosedLocally, false)
	c.transport.CloseWithReset()
}

// CloseNow sends a close notification, fails all outstanding callbacks, and closes the transport immediately.
func (c *Client) CloseNow() {
	defer c.dd.Guard()()

	if c.transport.Good() {
		c.driver.appClose()
	}
	c.deliverAllErrors(errSocketClosedLocally, false)
	c.transport.CloseNow()
}

// Destroy closes the client immediately.
// When called from a callback, teardown is deferred until the client's call into the callback returned.
func (c *Client) Destroy() { c.dd.Destroy() }

func (c *Client) destroy() {
	c.cancelHandshakeTimeout()
	c.CloseNow()
	if c.tracer != nil && c.tracer.Close != nil {
		c.tracer.Close()
	}
}

// deliverAllErrors fails every outstanding callback and moves the engine into error state.
// It may be called multiple times: callbacks that were already resolved are not called again.
func (c *Client) deliverAllErrors(err *TransportError, closeTransport bool) {
	defer c.dd.Guard()()

	if c.closeErr == nil {
		c.closeErr = err
		c.logger.Debug("closing session", "error", err, "close_transport", closeTransport)
		if c.tracer != nil && c.tracer.ClosedSession != nil {
			c.tracer.ClosedSession(err)
		}
	}

	c.cancelHandshakeTimeout()
	c.deliverHandshakeError(err)
	c.replaySafetyCallback = nil
	if ed := c.earlyData; ed != nil {
		c.earlyData = nil
		ed.pendingAppWrites.Drain(func(w AppWrite) {
			if w.Callback != nil {
				w.Callback.WriteErr(0, err)
			}
		})
	}
	c.driver.engine.MoveToErrorState(err)
	c.deliverError(err, closeTransport)
}

// deliverHandshakeError fails the outstanding connect attempt, if any.
func (c *Client) deliverHandshakeError(err error) {
	if !c.callback.pending() {
		return
	}
	c.cancelHandshakeTimeout()
	c.callback.take().fail(c, err)
}

// deliverError fails the read callback.
func (c *Client) deliverError(err *TransportError, closeTransport bool) {
	if c.readErr == nil {
		c.readErr = err
	}
	if cb := c.readCallback; cb != nil {
		c.readCallback = nil
		cb.ReadErr(err)
	}
	if closeTransport {
		c.transport.CloseNow()
	}
}

func (c *Client) deliverAppData(data []byte) {
	if c.readCallback == nil {
		c.pendingAppData = append(c.pendingAppData, data)
		return
	}
	c.readCallback.ReadDataAvailable(data)
}

func (c *Client) transportDataAvailable(data []byte) {
	defer c.dd.Guard()()
	c.driver.newTransportData(data)
}

func (c *Client) transportError(err *TransportError) {
	defer c.dd.Guard()()
	c.deliverAllErrors(err, true)
}

func (c *Client) connectSuccess() {
	defer c.dd.Guard()()
	c.logger.Debug("transport connected")
	c.startHandshake()
}

func (c *Client) connectErr(err *TransportError) {
	defer c.dd.Guard()()
	c.deliverAllErrors(err, false)
}

// PeerCertificates returns the server's certificate chain.
// While the early data window is open, this is the chain early data was sent under.
func (c *Client) PeerCertificates() []*x509.Certificate {
	if c.earlyData != nil && c.state.EarlyDataParams != nil {
		return c.state.EarlyDataParams.ServerCertificates
	}
	return c.state.ServerCertificates
}

// SelfCertificates returns the client's certificate chain, if the server requested one.
func (c *Client) SelfCertificates() []*x509.Certificate {
	if c.earlyData != nil && c.state.EarlyDataParams != nil {
		return c.state.EarlyDataParams.ClientCertificates
	}
	return c.state.ClientCertificates
}

// ApplicationProtocol returns the negotiated ALPN protocol, or an empty string.
func (c *Client) ApplicationProtocol() string {
	if c.earlyData != nil && c.state.EarlyDataParams != nil {
		return c.state.EarlyDataParams.ALPN
	}
	return c.state.ALPN
}

// PSKResumed reports whether the handshake resumed a session.
func (c *Client) PSKResumed() bool { return c.state.PSKResumed }

// ExportKeyingMaterial exports keying material from the handshake, see RFC 5705.
func (c *Client) ExportKeyingMaterial(label string, context []byte, length int) ([]byte, error) {
	return c.driver.engine.ExportKeyingMaterial(label, context, length)
}

// ExportEarlyKeyingMaterial exports keying material from the early secret.
func (c *Client) ExportEarlyKeyingMaterial(label string, context []byte, length int) ([]byte, error) {
	return c.driver.engine.ExportEarlyKeyingMaterial(label, context, length)
}

// SessionID returns the ID used for this client in logs and traces.
func (c *Client) SessionID() logging.SessionID { return c.sessionID }

// transportCallbacks receives events from the transport.
// It keeps these methods out of the Client's API.
type transportCallbacks Client

var (
	_ TransportReadCallback    = &transportCallbacks{}
	_ TransportConnectCallback = &transportCallbacks{}
)

func (t *transportCallbacks) ReadDataAvailable(data []byte) {
	(*Client)(t).transportDataAvailable(data)
}

func (t *transportCallbacks) ReadEOF() { (*Client)(t).transportError(errReadEOF) }

func (t *transportCallbacks) ReadErr(err *TransportError) { (*Client)(t).transportError(err) }

func (t *transportCallbacks) ConnectSuccess() { (*Client)(t).connectSuccess() }

func (t *transportCallbacks) ConnectErr(err *TransportError) { (*Client)(t).connectErr(err) }
