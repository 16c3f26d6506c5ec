package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the prometheus collectors.
type Prometheus struct {
	Documents   *prometheus.CounterVec
	Predictions *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stylo",
				Name:      "documents_total",
				Help:      "Segmented documents per author.",
			}, []string{"author"}),
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stylo",
				Name:      "predictions_total",
				Help:      "Attributions per true and predicted author.",
			}, []string{"author", "predicted"}),
	}
}
