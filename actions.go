package asynctls

// An Action is an effect emitted by the Engine.
// The set of actions is closed: it is implemented by the types in this file only.
type Action interface {
	isAction()
}

// DeliverAppData passes decrypted application data to the read callback.
type DeliverAppData struct {
	Data []byte
}

// WriteToSocket writes encrypted records to the transport.
type WriteToSocket struct {
	Callback WriteCallback
	Data     []byte
	Flags    WriteFlags
}

// ReportEarlyHandshakeSuccess signals that the handshake can proceed with early data.
type ReportEarlyHandshakeSuccess struct {
	MaxEarlyDataSize uint32
}

// ReportHandshakeSuccess signals that the handshake completed.
type ReportHandshakeSuccess struct {
	EarlyDataAccepted bool
}

// ReportEarlyWriteFailed returns an early write the engine could not send,
// because early data was rejected before the write reached it.
type ReportEarlyWriteFailed struct {
	Write EarlyAppWrite
}

// ReportError signals a fatal handshake or record layer error.
type ReportError struct {
	Err error
}

// WaitForData signals that the engine needs more transport data.
type WaitForData struct{}

// MutateState updates the handshake state held by the client.
type MutateState func(*State)

// NewCachedPSK hands out a resumption credential to be stored.
type NewCachedPSK struct {
	PSK *CachedPSK
}

func (DeliverAppData) isAction()              {}
func (WriteToSocket) isAction()               {}
func (ReportEarlyHandshakeSuccess) isAction() {}
func (ReportHandshakeSuccess) isAction()      {}
func (ReportEarlyWriteFailed) isAction()      {}
func (ReportError) isAction()                 {}
func (WaitForData) isAction()                 {}
func (MutateState) isAction()                 {}
func (NewCachedPSK) isAction()                {}
