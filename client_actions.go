package asynctls

import "fmt"

// applyAction applies a single action emitted by the engine.
// It returns false if the connection failed, and the remaining actions must not be applied.
func (c *Client) applyAction(a Action) bool {
	switch a := a.(type) {
	case DeliverAppData:
		c.deliverAppData(a.Data)
	case WriteToSocket:
		c.transport.WriteChain(a.Callback, a.Data, a.Flags)
	case ReportEarlyHandshakeSuccess:
		c.handleEarlyHandshakeSuccess(a)
	case ReportHandshakeSuccess:
		return c.handleHandshakeSuccess(a)
	case ReportEarlyWriteFailed:
		// The early write raced with the rejection of early data.
		// Whether the data is lost or resent is decided when the handshake completes.
		if a.Write.Callback != nil {
			a.Write.Callback.WriteSuccess()
		}
	case ReportError:
		c.handleError(a.Err)
		return false
	case WaitForData:
		c.driver.engine.WaitForData()
		if c.callback.pending() {
			c.startTransportReads()
		}
	case MutateState:
		a(&c.state)
	case NewCachedPSK:
		c.handleNewCachedPSK(a)
	default:
		panic(fmt.Sprintf("asynctls: unexpected action %T", a))
	}
	return true
}

func (c *Client) handleEarlyHandshakeSuccess(a ReportEarlyHandshakeSuccess) {
	c.earlyData = newEarlyDataState(a.MaxEarlyDataSize)
	c.earlyLogger.Debug("early data window opened", "max_early_data_size", a.MaxEarlyDataSize)
	if c.tracer != nil && c.tracer.EarlyHandshakeSucceeded != nil {
		c.tracer.EarlyHandshakeSucceeded(a.MaxEarlyDataSize)
	}
	if c.callback.pending() {
		c.callback.take().success(c)
	}
}

func (c *Client) handleHandshakeSuccess(a ReportHandshakeSuccess) bool {
	c.cancelHandshakeTimeout()
	if ed := c.earlyData; ed != nil {
		if !a.EarlyDataAccepted {
			if err := c.handleEarlyReject(); err != nil {
				// The server won't accept early data for this PSK again.
				if c.pskIdentity != "" {
					c.config.PSKStore.RemovePSK(c.pskIdentity)
					if c.tracer != nil && c.tracer.RemovedPSK != nil {
						c.tracer.RemovedPSK(c.pskIdentity)
					}
				}
				c.deliverAllErrors(err, false)
				c.transport.CloseNow()
				return false
			}
		}
		ed.pendingAppWrites.Drain(func(w AppWrite) {
			if c.tracer != nil && c.tracer.FlushedAppData != nil {
				c.tracer.FlushedAppData(len(w.Data))
			}
			c.driver.appWrite(w)
		})
		c.earlyData = nil
	}

	c.logger.Debug("handshake completed", "early_data_accepted", a.EarlyDataAccepted, "resumed", c.state.PSKResumed)
	if c.tracer != nil && c.tracer.HandshakeSucceeded != nil {
		c.tracer.HandshakeSucceeded(a.EarlyDataAccepted)
	}
	if c.callback.pending() {
		c.callback.take().success(c)
	}
	if cb := c.replaySafetyCallback; cb != nil {
		c.replaySafetyCallback = nil
		cb.OnReplaySafe()
	}
	return true
}

func (c *Client) handleError(err error) {
	terr := wrapEngineError(err)
	if err == nil {
		err = terr
	}
	c.logger.Debug("handshake failed", "error", err)
	// The handshake callback receives the engine's error as is.
	c.deliverHandshakeError(err)
	c.deliverAllErrors(terr, true)
}

func (c *Client) handleNewCachedPSK(a NewCachedPSK) {
	if c.pskIdentity == "" || a.PSK == nil {
		return
	}
	c.config.PSKStore.PutPSK(c.pskIdentity, a.PSK)
	if c.tracer != nil && c.tracer.StoredPSK != nil {
		c.tracer.StoredPSK(c.pskIdentity)
	}
}
