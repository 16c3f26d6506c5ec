package ml

import (
	"fmt"
	"math"
	"strings"

	"github.com/drakos74/stylo/internal/model"
	"gonum.org/v1/gonum/floats"
)

// Metric is a distance between two feature vectors.
type Metric int

const (
	// CityBlock is the L1 distance. On standardized frequencies this is Burrows' Delta times the feature count.
	CityBlock Metric = iota
	// Cosine is one minus the cosine similarity.
	Cosine
	// Euclidean is the L2 distance.
	Euclidean
)

var metricNames = map[Metric]string{
	CityBlock: "cityblock",
	Cosine:    "cosine",
	Euclidean: "euclidean",
}

var metricAliases = map[string]Metric{
	"cityblock": CityBlock,
	"manhattan": CityBlock,
	"l1":        CityBlock,
	"delta":     CityBlock,
	"cosine":    Cosine,
	"euclidean": Euclidean,
	"l2":        Euclidean,
}

// Metrics returns all registered metrics.
func Metrics() []Metric {
	return []Metric{CityBlock, Cosine, Euclidean}
}

// ParseMetric resolves a metric by name.
func ParseMetric(name string) (Metric, error) {
	if m, ok := metricAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown metric '%s': %w", name, model.ConfigurationErr)
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// Valid reports whether the metric is registered.
func (m Metric) Valid() bool {
	_, ok := metricNames[m]
	return ok
}

// Distance returns the non-negative distance between a and b.
// Both vectors must have the same length.
func (m Metric) Distance(a, b []float64) float64 {
	switch m {
	case Cosine:
		return cosine(a, b)
	case Euclidean:
		return floats.Distance(a, b, 2)
	default:
		return floats.Distance(a, b, 1)
	}
}

// cosine treats a zero vector as orthogonal to everything.
func cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	d := 1 - floats.Dot(a, b)/(na*nb)
	return math.Max(0, d)
}
