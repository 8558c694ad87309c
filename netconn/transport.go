// Package netconn implements an asynctls.ConnectingTransport on top of a net.Conn.
//
// All methods must be called on the event loop, and all callbacks are invoked on the event loop.
// I/O happens on a reader and a writer goroutine per connection.
package netconn

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/asynctls/asynctls"
	islog "github.com/asynctls/asynctls/internal/slog"
	"github.com/asynctls/asynctls/internal/tlserr"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type state uint8

const (
	stateIdle state = iota
	stateConnecting
	stateOpen
	stateClosing // Close was called, pending writes are being flushed
	stateClosed
	stateError
)

var (
	errClosedLocally = errors.New("closed locally")
	errNotOpen       = tlserr.New(tlserr.NotOpen, "transport is not open")
	errAlreadyOpen   = tlserr.New(tlserr.AlreadyOpen, "connect called on an open transport")
)

// Transport is an asynctls.ConnectingTransport over a net.Conn.
type Transport struct {
	evb     asynctls.EventBase
	opts    Options
	limiter *rate.Limiter
	logger  *slog.Logger

	state  state
	conn   net.Conn
	writes *writeQueue
	cancel context.CancelFunc

	readCB      asynctls.TransportReadCallback
	pendingData [][]byte
	pendingEOF  bool
	pendingErr  *tlserr.TransportError
}

var _ asynctls.ConnectingTransport = &Transport{}

// New creates a Transport that is not connected yet.
// Connect establishes the connection.
func New(evb asynctls.EventBase, opts *Options) *Transport {
	o := opts.populate()
	logger := o.Logger
	if logger == nil {
		logger = islog.Discard()
	}
	return &Transport{
		evb:     evb,
		opts:    o,
		limiter: o.newLimiter(),
		logger:  islog.Component(logger, islog.ComponentTransport),
	}
}

// NewFromConn creates a Transport for an established connection.
// It must be called on the event loop.
func NewFromConn(evb asynctls.EventBase, conn net.Conn, opts *Options) *Transport {
	t := New(evb, opts)
	t.start(conn)
	return t
}

// Connect dials addr. The timeout covers connection establishment only.
func (t *Transport) Connect(cb asynctls.TransportConnectCallback, addr string, timeout time.Duration, opts asynctls.ConnectOptions) {
	if t.state != stateIdle {
		cb.ConnectErr(errAlreadyOpen)
		return
	}
	dialer := &net.Dialer{KeepAlive: opts.KeepAlive}
	if opts.BindAddr != "" {
		laddr, err := net.ResolveTCPAddr("tcp", opts.BindAddr)
		if err != nil {
			t.state = stateError
			cb.ConnectErr(tlserr.Wrap(tlserr.BadArgs, "invalid bind address", err))
			return
		}
		dialer.LocalAddr = laddr
		dialer.Control = reuseAddrControl
	}
	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}
	t.state = stateConnecting
	t.cancel = cancel
	t.logger.Debug("connecting", "addr", addr, "timeout", timeout)

	go func() {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
		cancel()
		t.evb.RunInLoop(func() { t.connectDone(cb, conn, err, timedOut) })
	}()
}

func (t *Transport) connectDone(cb asynctls.TransportConnectCallback, conn net.Conn, err error, timedOut bool) {
	if t.state != stateConnecting {
		// closed while connecting
		if conn != nil {
			conn.Close()
		}
		cb.ConnectErr(errNotOpen)
		return
	}
	t.cancel = nil
	if err != nil {
		t.state = stateError
		t.logger.Debug("connect failed", "error", err)
		if timedOut {
			cb.ConnectErr(tlserr.Wrap(tlserr.TimedOut, "connect timed out", err))
			return
		}
		cb.ConnectErr(tlserr.Wrap(tlserr.NetworkError, "connect failed", err))
		return
	}
	t.start(conn)
	cb.ConnectSuccess()
}

func (t *Transport) start(conn net.Conn) {
	t.conn = conn
	t.state = stateOpen
	t.writes = newWriteQueue()
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.logger.Debug("connection established", "local", conn.LocalAddr(), "remote", conn.RemoteAddr())

	g, gctx := errgroup.WithContext(ctx)
	writes := t.writes
	g.Go(func() error { return t.runReader(conn) })
	g.Go(func() error { return t.runWriter(gctx, conn, writes) })
	g.Go(func() error {
		// unblocks the reader
		<-gctx.Done()
		conn.Close()
		return nil
	})
	go func() {
		err := g.Wait()
		cancel()
		t.evb.RunInLoop(func() { t.ioDone(conn, writes, err) })
	}()
}

// runReader reads from conn until an error occurs.
func (t *Transport) runReader(conn net.Conn) error {
	for {
		buf := make([]byte, t.opts.ReadBufferSize)
		n, err := conn.Read(buf)
		if n > 0 {
			data := buf[:n]
			t.evb.RunInLoop(func() { t.dataAvailable(conn, data) })
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.evb.RunInLoop(func() { t.readEOF(conn) })
			} else {
				t.evb.RunInLoop(func() { t.readErr(conn, tlserr.Wrap(tlserr.NetworkError, "read failed", err)) })
			}
			return err
		}
	}
}

// runWriter writes queued data to conn.
// It returns errClosedLocally once Close was called and all writes were flushed.
func (t *Transport) runWriter(ctx context.Context, conn net.Conn, q *writeQueue) error {
	for {
		w, ok, done := q.pop()
		if !ok {
			if done {
				return errClosedLocally
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.notify:
			}
			continue
		}
		if err := t.pace(ctx, len(w.data)); err != nil {
			t.evb.RunInLoop(func() { t.writeFailed(w, 0, tlserr.Wrap(tlserr.NetworkError, "write canceled", err)) })
			return err
		}
		n, err := conn.Write(w.data)
		if err != nil {
			t.evb.RunInLoop(func() { t.writeFailed(w, n, tlserr.Wrap(tlserr.NetworkError, "write failed", err)) })
			return err
		}
		if w.cb != nil {
			cb := w.cb
			t.evb.RunInLoop(cb.WriteSuccess)
		}
	}
}

func (t *Transport) pace(ctx context.Context, n int) error {
	if t.limiter == nil {
		return nil
	}
	for n > 0 {
		k := min(n, t.limiter.Burst())
		if err := t.limiter.WaitN(ctx, k); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

func (t *Transport) dataAvailable(conn net.Conn, data []byte) {
	if conn != t.conn || !t.readable() {
		return
	}
	if t.readCB == nil {
		t.pendingData = append(t.pendingData, data)
		return
	}
	t.readCB.ReadDataAvailable(data)
}

func (t *Transport) readEOF(conn net.Conn) {
	if conn != t.conn || !t.readable() {
		return
	}
	t.logger.Debug("peer closed the connection")
	t.state = stateClosed
	if t.readCB == nil {
		t.pendingEOF = true
		return
	}
	cb := t.readCB
	t.readCB = nil
	cb.ReadEOF()
}

func (t *Transport) readErr(conn net.Conn, err *tlserr.TransportError) {
	if conn != t.conn || !t.readable() {
		return
	}
	t.logger.Debug("read failed", "error", err)
	t.state = stateError
	if t.readCB == nil {
		t.pendingErr = err
		return
	}
	cb := t.readCB
	t.readCB = nil
	cb.ReadErr(err)
}

// writeFailed fails the write, and moves the transport to the error state.
// The read callback is notified as well.
func (t *Transport) writeFailed(w writeRequest, n int, err *tlserr.TransportError) {
	readCB := t.readCB
	if t.state == stateOpen || t.state == stateClosing {
		t.logger.Debug("write failed", "error", err)
		t.state = stateError
		t.readCB = nil
	} else {
		readCB = nil
	}
	if w.cb != nil {
		w.cb.WriteErr(n, err)
	}
	if readCB != nil {
		readCB.ReadErr(err)
	}
}

// ioDone is called once both I/O goroutines returned.
// Writes that were not written by then are failed.
func (t *Transport) ioDone(conn net.Conn, q *writeQueue, err error) {
	for _, w := range q.drain() {
		if w.cb != nil {
			w.cb.WriteErr(0, errNotOpen)
		}
	}
	if conn != t.conn {
		return
	}
	if t.state == stateOpen || t.state == stateClosing {
		t.state = stateClosed
	}
	if err != nil && !errors.Is(err, errClosedLocally) {
		t.logger.Debug("connection closed", "error", err)
	}
}

func (t *Transport) readable() bool { return t.state == stateOpen }

// WriteChain queues data to be written.
func (t *Transport) WriteChain(cb asynctls.WriteCallback, data []byte, _ asynctls.WriteFlags) {
	if t.state != stateOpen {
		if cb != nil {
			cb.WriteErr(0, errNotOpen)
		}
		return
	}
	t.writes.push(writeRequest{cb: cb, data: data})
}

// SetReadCallback installs the read callback.
// Data, EOF and errors that occurred while no callback was installed are delivered to cb.
func (t *Transport) SetReadCallback(cb asynctls.TransportReadCallback) {
	t.readCB = cb
	if cb == nil {
		return
	}
	for len(t.pendingData) > 0 && t.readCB == cb {
		data := t.pendingData[0]
		t.pendingData = t.pendingData[1:]
		cb.ReadDataAvailable(data)
	}
	if t.readCB != cb {
		return
	}
	switch {
	case t.pendingEOF:
		t.pendingEOF = false
		t.readCB = nil
		cb.ReadEOF()
	case t.pendingErr != nil:
		err := t.pendingErr
		t.pendingErr = nil
		t.readCB = nil
		cb.ReadErr(err)
	}
}

// Close closes the connection once all pending writes were written.
// No read events are delivered after Close.
func (t *Transport) Close() {
	switch t.state {
	case stateOpen:
		t.logger.Debug("closing")
		t.state = stateClosing
		t.readCB = nil
		t.writes.shutdown()
	case stateConnecting:
		t.CloseNow()
	}
}

// CloseWithReset closes the connection and sends a TCP RST.
func (t *Transport) CloseWithReset() {
	if tc, ok := t.conn.(*net.TCPConn); ok {
		tc.SetLinger(0)
	}
	t.CloseNow()
}

// CloseNow closes the connection immediately. Pending writes fail.
func (t *Transport) CloseNow() {
	switch t.state {
	case stateIdle, stateClosed, stateError:
		return
	}
	t.logger.Debug("closing immediately")
	t.state = stateClosed
	t.readCB = nil
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.conn != nil {
		t.conn.Close()
	}
}

func (t *Transport) Good() bool       { return t.state == stateOpen }
func (t *Transport) Readable() bool   { return t.readable() }
func (t *Transport) Connecting() bool { return t.state == stateConnecting }
func (t *Transport) Error() bool      { return t.state == stateError }

// LocalAddr returns the local address, or nil if not connected.
func (t *Transport) LocalAddr() net.Addr {
	if t.conn == nil {
		return nil
	}
	return t.conn.LocalAddr()
}

// RemoteAddr returns the remote address, or nil if not connected.
func (t *Transport) RemoteAddr() net.Addr {
	if t.conn == nil {
		return nil
	}
	return t.conn.RemoteAddr()
}
