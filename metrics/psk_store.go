package metrics

import (
	"github.com/asynctls/asynctls/psk"

	"github.com/prometheus/client_golang/prometheus"
)

var pskOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "psk_store_operations_total",
		Help:      "PSK Store Operations",
	},
	[]string{"op", "result"},
)

type pskStore struct {
	psk.Store
}

// InstrumentPSKStore wraps a PSK store, counting lookups, insertions and removals,
// using the default Prometheus registerer.
func InstrumentPSKStore(store psk.Store) psk.Store {
	return InstrumentPSKStoreWithRegisterer(store, prometheus.DefaultRegisterer)
}

// InstrumentPSKStoreWithRegisterer wraps a PSK store using a given Prometheus registerer.
func InstrumentPSKStoreWithRegisterer(store psk.Store, registerer prometheus.Registerer) psk.Store {
	register(registerer, pskOperations)
	return &pskStore{Store: store}
}

func (s *pskStore) GetPSK(identity string) (*psk.CachedPSK, bool) {
	p, ok := s.Store.GetPSK(identity)
	result := "miss"
	if ok {
		result = "hit"
	}
	pskOperations.WithLabelValues("get", result).Inc()
	return p, ok
}

func (s *pskStore) PutPSK(identity string, p *psk.CachedPSK) {
	s.Store.PutPSK(identity, p)
	pskOperations.WithLabelValues("put", "ok").Inc()
}

func (s *pskStore) RemovePSK(identity string) {
	s.Store.RemovePSK(identity)
	pskOperations.WithLabelValues("remove", "ok").Inc()
}
