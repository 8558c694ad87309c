package qlog

import (
	"runtime/debug"
	"time"

	"github.com/asynctls/asynctls/logging"

	"github.com/francoispqt/gojay"
)

// Setting of this only works when asynctls is used as a library.
// When building a binary from this repository, the version can be set using the following go build flag:
// -ldflags="-X github.com/asynctls/asynctls/qlog.moduleVersion=foobar"
var moduleVersion = "(devel)"

func init() {
	if moduleVersion != "(devel)" { // variable set by ldflags
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, d := range info.Deps {
		if d.Path == "github.com/asynctls/asynctls" {
			moduleVersion = d.Version
			if d.Replace != nil && len(d.Replace.Version) == 0 {
				moduleVersion += " (replaced)"
			}
			break
		}
	}
}

type topLevel struct {
	trace trace
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_format", "JSON-SEQ")
	enc.StringKey("qlog_version", "0.3")
	enc.StringKey("title", "asynctls qlog")
	enc.ObjectKey("configuration", configuration{Version: moduleVersion})
	enc.ObjectKey("trace", l.trace)
}

type configuration struct {
	Version string
}

func (configuration) IsNil() bool { return false }
func (c configuration) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("code_version", c.Version)
}

type trace struct {
	SessionID     logging.SessionID
	ReferenceTime time.Time
}

func (trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", vantagePoint{})
	enc.ObjectKey("common_fields", commonFields{SessionID: t.SessionID, ReferenceTime: t.ReferenceTime})
}

type vantagePoint struct{}

func (vantagePoint) IsNil() bool { return false }
func (vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("type", "client")
}

type commonFields struct {
	SessionID     logging.SessionID
	ReferenceTime time.Time
}

func (commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("group_id", f.SessionID.String())
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}
