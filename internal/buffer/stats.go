package buffer

import (
	"fmt"
	"math"

	"github.com/drakos74/stylo/internal/model"
)

// epsilon is the float64 machine epsilon.
const epsilon = 2.220446049250313e-16

// Stats is a set of statistical properties of a set of numbers.
// Mean and variance are tracked with Welford's streaming update.
type Stats struct {
	count          int
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Variance is the population variance of the set.
func (s Stats) Variance() float64 {
	if s.count == 0 {
		return 0
	}
	return s.dSquared / float64(s.count)
}

// StDev is the population standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// Constant reports whether the variance is within the rounding error of the streaming update,
// i.e. var <= n*eps*var + (n*mean*eps)^2.
// Values that are equal in exact arithmetic but differ in their last bits count as constant.
func (s Stats) Constant() bool {
	v := s.Variance()
	if math.IsNaN(v) {
		return true
	}
	n := float64(s.count)
	bound := n*epsilon*v + math.Pow(n*s.mean*epsilon, 2)
	return v <= bound
}

// StatsCollector is a collection of Stats variables.
// This enables tracking every column of a feature matrix.
type StatsCollector struct {
	dim   int
	stats []*Stats
}

// NewStatsCollector creates a new Stats collector.
func NewStatsCollector(dim int) *StatsCollector {
	stats := make([]*Stats, dim)
	for i := 0; i < dim; i++ {
		stats[i] = NewStats()
	}
	return &StatsCollector{
		dim:   dim,
		stats: stats,
	}
}

// Push pushes each value to the corresponding dimension.
func (sc *StatsCollector) Push(v ...float64) error {
	if len(v) != sc.dim {
		return fmt.Errorf("inconsistent dimensions %d vs %d: %w", len(v), sc.dim, model.DimensionErr)
	}
	for i := 0; i < len(sc.stats); i++ {
		sc.stats[i].Push(v[i])
	}
	return nil
}

// Dim returns the number of dimensions.
func (sc StatsCollector) Dim() int {
	return sc.dim
}

// Means returns the average of every dimension.
func (sc StatsCollector) Means() []float64 {
	means := make([]float64, sc.dim)
	for i, s := range sc.stats {
		means[i] = s.Avg()
	}
	return means
}

// StDevs returns the population standard deviation of every dimension.
func (sc StatsCollector) StDevs() []float64 {
	stDevs := make([]float64, sc.dim)
	for i, s := range sc.stats {
		stDevs[i] = s.StDev()
	}
	return stDevs
}

// Constant flags the dimensions without variance.
func (sc StatsCollector) Constant() []bool {
	constant := make([]bool, sc.dim)
	for i, s := range sc.stats {
		constant[i] = s.Constant()
	}
	return constant
}
