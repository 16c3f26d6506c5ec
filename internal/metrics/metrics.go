package metrics

import "github.com/prometheus/client_golang/prometheus"

// Observer is the process wide metrics collector.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Documents, Observer.prometheus.Predictions)
}

// Metrics tracks the documents going through the attribution pipeline.
type Metrics struct {
	prometheus Prometheus
}

// Document counts a segmented document of the given author.
func (m *Metrics) Document(author string) {
	m.prometheus.Documents.WithLabelValues(author).Inc()
}

// Prediction counts an attribution of a document by author to the predicted author.
func (m *Metrics) Prediction(author, predicted string) {
	m.prometheus.Predictions.WithLabelValues(author, predicted).Inc()
}
