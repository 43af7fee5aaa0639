package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the progress of prediction runs.
type Metrics struct {
	prometheus Prometheus
}

// New creates the run metrics and registers them with the given registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	p := NewPrometheusMetrics()
	for _, c := range p.collectors() {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("could not register collector: %w", err)
		}
	}
	return &Metrics{
		prometheus: p,
	}, nil
}

// Track records the number of predictions tracked by a run.
func (m *Metrics) Track(run string, predictions int) {
	m.prometheus.Predictions.WithLabelValues(run).Set(float64(predictions))
}

// Round records a completed round with the given number of samples and the resulting error.
func (m *Metrics) Round(run string, samples int, rmse float64) {
	m.prometheus.Samples.WithLabelValues(run).Add(float64(samples))
	m.prometheus.Rounds.WithLabelValues(run).Inc()
	m.prometheus.RMSE.WithLabelValues(run).Set(rmse)
}
