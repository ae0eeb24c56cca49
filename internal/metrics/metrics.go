// Package metrics exposes Prometheus counters for the key-value store.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts store operations and the failures the store swallows.
type Collector struct {
	ops      *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewCollector registers the store counters on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskflow_store_operations_total",
			Help: "Key-value store operations by kind.",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskflow_store_failures_total",
			Help: "Store failures that were logged and swallowed, by kind.",
		}, []string{"op"}),
	}
	reg.MustRegister(c.ops, c.failures)
	return c
}

func (c *Collector) RecordStoreOp(op string) {
	c.ops.WithLabelValues(op).Inc()
}

func (c *Collector) RecordStoreFailure(op string) {
	c.failures.WithLabelValues(op).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
