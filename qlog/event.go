package qlog

import (
	"errors"
	"time"

	"github.com/asynctls/asynctls/internal/tlserr"
	"github.com/asynctls/asynctls/logging"

	"github.com/francoispqt/gojay"
)

type eventDetails interface {
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", float64(e.RelativeTime.Nanoseconds())/1e6)
	enc.StringKey("name", "tls:"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

type eventHandshakeStarted struct {
	SNI         string
	PSKIdentity string
	Resumption  bool
}

func (e eventHandshakeStarted) Name() string { return "handshake_started" }
func (e eventHandshakeStarted) IsNil() bool  { return false }

func (e eventHandshakeStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("sni", e.SNI)
	enc.StringKeyOmitEmpty("psk_identity", e.PSKIdentity)
	enc.BoolKey("resumption", e.Resumption)
}

type eventEarlyHandshakeSucceeded struct {
	MaxEarlyDataSize uint32
}

func (e eventEarlyHandshakeSucceeded) Name() string { return "early_handshake_succeeded" }
func (e eventEarlyHandshakeSucceeded) IsNil() bool  { return false }

func (e eventEarlyHandshakeSucceeded) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("max_early_data_size", uint64(e.MaxEarlyDataSize))
}

type eventHandshakeSucceeded struct {
	EarlyDataAccepted bool
}

func (e eventHandshakeSucceeded) Name() string { return "handshake_succeeded" }
func (e eventHandshakeSucceeded) IsNil() bool  { return false }

func (e eventHandshakeSucceeded) MarshalJSONObject(enc *gojay.Encoder) {
	enc.BoolKey("early_data_accepted", e.EarlyDataAccepted)
}

// eventAppData is used for all events that move application data during the early data window.
type eventAppData struct {
	name   string
	Length int
}

func (e eventAppData) Name() string { return e.name }
func (e eventAppData) IsNil() bool  { return false }

func (e eventAppData) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("length", e.Length)
}

type eventEarlyDataRejected struct {
	Outcome logging.RejectionOutcome
}

func (e eventEarlyDataRejected) Name() string { return "early_data_rejected" }
func (e eventEarlyDataRejected) IsNil() bool  { return false }

func (e eventEarlyDataRejected) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("outcome", e.Outcome.String())
}

type eventPSKUpdated struct {
	Identity string
	Removed  bool
}

func (e eventPSKUpdated) Name() string {
	if e.Removed {
		return "psk_removed"
	}
	return "psk_stored"
}
func (e eventPSKUpdated) IsNil() bool { return false }

func (e eventPSKUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("identity", e.Identity)
}

type eventSessionClosed struct {
	Err error
}

func (e eventSessionClosed) Name() string { return "session_closed" }
func (e eventSessionClosed) IsNil() bool  { return false }

func (e eventSessionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	var terr *tlserr.TransportError
	if errors.As(e.Err, &terr) {
		enc.StringKey("error_kind", terr.Kind.String())
		enc.StringKeyOmitEmpty("reason", terr.Message)
		return
	}
	if e.Err != nil {
		enc.StringKey("error_kind", tlserr.Unknown.String())
		enc.StringKey("reason", e.Err.Error())
	}
}
