package jemi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics instruments one arena. A nil *PrometheusMetrics is a
// valid no-op.
type PrometheusMetrics struct {
	allocations prometheus.Counter
	exhaustions prometheus.Counter
	resets      prometheus.Counter
	capacity    prometheus.Gauge
	inUse       prometheus.Gauge
}

// NewPrometheusMetrics registers arena metrics with r. A nil r creates
// unregistered metrics.
func NewPrometheusMetrics(r prometheus.Registerer) *PrometheusMetrics {
	return &PrometheusMetrics{
		allocations: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "jemi_arena_allocations_total",
			Help: "Total number of nodes allocated from the arena.",
		}),
		exhaustions: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "jemi_arena_exhaustions_total",
			Help: "Total number of allocations refused because the arena was full.",
		}),
		resets: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "jemi_arena_resets_total",
			Help: "Total number of arena resets.",
		}),
		capacity: promauto.With(r).NewGauge(prometheus.GaugeOpts{
			Name: "jemi_arena_capacity_nodes",
			Help: "Number of node slots in the arena.",
		}),
		inUse: promauto.With(r).NewGauge(prometheus.GaugeOpts{
			Name: "jemi_arena_nodes_in_use",
			Help: "Number of node slots allocated since the last reset.",
		}),
	}
}

func (m *PrometheusMetrics) observeAlloc(inUse int) {
	if m == nil {
		return
	}
	m.allocations.Inc()
	m.inUse.Set(float64(inUse))
}

func (m *PrometheusMetrics) observeExhaustion() {
	if m == nil {
		return
	}
	m.exhaustions.Inc()
}

func (m *PrometheusMetrics) observeReset() {
	if m == nil {
		return
	}
	m.resets.Inc()
	m.inUse.Set(0)
}

func (m *PrometheusMetrics) setCapacity(n int) {
	if m == nil {
		return
	}
	m.capacity.Set(float64(n))
}
