package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceBundle   = "bundle"
	SourceConsume  = "consume"
	SourceExplicit = "explicit"
)

type Metrics struct {
	OneTimePreKeysConsumed *prometheus.CounterVec
	PoolExhausted          prometheus.Counter
	BundlesServed          *prometheus.CounterVec
	StorageLatency         *prometheus.HistogramVec
}

// New registers the broker's collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OneTimePreKeysConsumed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "keybroker_one_time_prekeys_consumed_total",
			Help: "One-time prekeys transitioned to used.",
		}, []string{"source"}),
		PoolExhausted: f.NewCounter(prometheus.CounterOpts{
			Name: "keybroker_one_time_prekey_pool_exhausted_total",
			Help: "Consumption attempts that found no unused one-time prekey.",
		}),
		BundlesServed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "keybroker_key_bundles_served_total",
			Help: "Key bundles returned to requesters.",
		}, []string{"one_time"}),
		StorageLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keybroker_storage_latency_seconds",
			Help:    "Latency of prekey storage operations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"operation"}),
	}
}

// Instrument starts a timer for operation; call the result when done.
func (m *Metrics) Instrument(operation string) func() time.Duration {
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		m.StorageLatency.WithLabelValues(operation).Observe(v)
	}))
	return timer.ObserveDuration
}

func (m *Metrics) Consumed(source string) {
	m.OneTimePreKeysConsumed.WithLabelValues(source).Inc()
}

func (m *Metrics) BundleServed(withOneTime bool) {
	label := "false"
	if withOneTime {
		label = "true"
	}
	m.BundlesServed.WithLabelValues(label).Inc()
}
