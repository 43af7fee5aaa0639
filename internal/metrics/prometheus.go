package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "predict"

// Prometheus holds the collectors for the prediction runs, labelled by run id.
type Prometheus struct {
	Samples     *prometheus.CounterVec
	Rounds      *prometheus.CounterVec
	Predictions *prometheus.GaugeVec
	RMSE        *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the collectors, without registering them.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "samples_total",
				Help:      "Number of samples added to the predictions.",
			}, []string{"run"}),
		Rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rounds_total",
				Help:      "Number of completed sampling rounds.",
			}, []string{"run"}),
		Predictions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "predictions",
				Help:      "Number of tracked coordinates.",
			}, []string{"run"}),
		RMSE: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rmse",
				Help:      "Root mean squared error of the average predictions after the last round.",
			}, []string{"run"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Samples, p.Rounds, p.Predictions, p.RMSE}
}
