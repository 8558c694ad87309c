package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/asynctls/asynctls/internal/tlserr"
	"github.com/asynctls/asynctls/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "asynctls"

var (
	sessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handshakes_started_total",
			Help:      "Handshakes Started",
		},
		[]string{"resumption"},
	)
	sessionsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sessions_closed_total",
			Help:      "Sessions Closed",
		},
		[]string{"error_kind"},
	)
	handshakeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "handshake_duration_seconds",
			Help:      "Duration of the Handshake",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.3, 35),
		},
		[]string{"resumption", "early_data"},
	)
	earlyDataBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "early_data_bytes_total",
			Help:      "Application data written while the early data window was open",
		},
		[]string{"disposition"},
	)
	earlyDataRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "early_data_rejections_total",
			Help:      "Early Data Rejected by the Server",
		},
		[]string{"outcome"},
	)
)

func register(registerer prometheus.Registerer, collectors ...prometheus.Collector) {
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}
}

// DefaultTracer returns a callback that creates a metrics SessionTracer.
// It can be set on the Tracer field of asynctls.Config.
func DefaultTracer() func(context.Context, logging.SessionID) *logging.SessionTracer {
	return DefaultTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// DefaultTracerWithRegisterer returns a callback that creates a metrics SessionTracer
// using a given Prometheus registerer.
func DefaultTracerWithRegisterer(registerer prometheus.Registerer) func(context.Context, logging.SessionID) *logging.SessionTracer {
	return func(context.Context, logging.SessionID) *logging.SessionTracer {
		return NewSessionTracerWithRegisterer(registerer)
	}
}

// NewSessionTracerWithRegisterer creates a new session tracer with a given Prometheus registerer.
func NewSessionTracerWithRegisterer(registerer prometheus.Registerer) *logging.SessionTracer {
	register(registerer,
		sessionsStarted,
		sessionsClosed,
		handshakeDuration,
		earlyDataBytes,
		earlyDataRejections,
	)

	var (
		startTime  time.Time
		resumption bool
		closed     bool
	)
	return &logging.SessionTracer{
		StartedHandshake: func(_, _ string, resumed bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			startTime = time.Now()
			resumption = resumed

			*tags = append(*tags, strconv.FormatBool(resumed))
			sessionsStarted.WithLabelValues(*tags...).Inc()
		},
		HandshakeSucceeded: func(earlyDataAccepted bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, strconv.FormatBool(resumption), strconv.FormatBool(earlyDataAccepted))
			handshakeDuration.WithLabelValues(*tags...).Observe(time.Since(startTime).Seconds())
		},
		WroteEarlyData: func(n int) {
			earlyDataBytes.WithLabelValues("early").Add(float64(n))
		},
		QueuedAppData: func(n int) {
			earlyDataBytes.WithLabelValues("queued").Add(float64(n))
		},
		ResentEarlyData: func(n int) {
			earlyDataBytes.WithLabelValues("resent").Add(float64(n))
		},
		EarlyDataRejected: func(o logging.RejectionOutcome) {
			earlyDataRejections.WithLabelValues(o.String()).Inc()
		},
		ClosedSession: func(err error) {
			if closed {
				return
			}
			closed = true

			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, errorKind(err))
			sessionsClosed.WithLabelValues(*tags...).Inc()
		},
	}
}

func errorKind(err error) string {
	var terr *tlserr.TransportError
	if errors.As(err, &terr) {
		return terr.Kind.String()
	}
	return tlserr.Unknown.String()
}
