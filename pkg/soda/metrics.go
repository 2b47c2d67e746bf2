package soda

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the renderer collectors. A nil *metrics records nothing.
type metrics struct {
	mounts         prometheus.Counter
	updates        prometheus.Counter
	updateErrors   prometheus.Counter
	unmounts       prometheus.Counter
	instances      prometheus.Gauge
	updateDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	if reg == nil {
		return nil
	}
	factory := promauto.With(reg)

	return &metrics{
		mounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mounts_total",
			Help:      "Total number of component instances mounted.",
		}),
		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Total number of instance updates.",
		}),
		updateErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "update_errors_total",
			Help:      "Total number of updates that returned an error.",
		}),
		unmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmounts_total",
			Help:      "Total number of component instances disposed.",
		}),
		instances: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "instances",
			Help:      "Number of live component instances.",
		}),
		updateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_duration_seconds",
			Help:      "Duration of instance updates, including patch and sweep.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		}),
	}
}

func (m *metrics) mounted() {
	if m == nil {
		return
	}
	m.mounts.Inc()
	m.instances.Inc()
}

func (m *metrics) disposed() {
	if m == nil {
		return
	}
	m.unmounts.Inc()
	m.instances.Dec()
}

func (m *metrics) updated(start time.Time, err error) {
	if m == nil {
		return
	}
	m.updates.Inc()
	if err != nil {
		m.updateErrors.Inc()
	}
	m.updateDuration.Observe(time.Since(start).Seconds())
}
