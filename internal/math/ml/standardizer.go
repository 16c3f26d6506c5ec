package ml

import (
	"fmt"

	"github.com/drakos74/stylo/internal/buffer"
	"github.com/drakos74/stylo/internal/model"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// Standardizer rescales every feature to unit variance.
// With WithMean the features are also centered around zero.
// The zero value is the scale-only standardizer used for Delta.
type Standardizer struct {
	WithMean bool
}

// Scaler holds the per-feature statistics of a fitted Standardizer.
// It is never modified after Fit, transforming data only reads it.
type Scaler struct {
	withMean bool
	mean     []float64
	scale    []float64
}

// Fit computes the population standard deviation (and mean) of every column of x.
// Columns without variance beyond rounding error get a scale of 1, so they pass through unchanged.
func (s Standardizer) Fit(x *mat.Dense) (Scaler, error) {
	if x == nil || x.IsEmpty() {
		return Scaler{}, fmt.Errorf("cannot fit standardizer on empty matrix: %w", model.ConfigurationErr)
	}
	rows, cols := x.Dims()

	collector := buffer.NewStatsCollector(cols)
	for i := 0; i < rows; i++ {
		if err := collector.Push(x.RawRowView(i)...); err != nil {
			return Scaler{}, fmt.Errorf("could not collect row %d: %w", i, err)
		}
	}

	scale := collector.StDevs()
	for j, constant := range collector.Constant() {
		if constant {
			log.Debug().Int("feature", j).Float64("std", scale[j]).Msg("constant feature kept at scale 1")
			scale[j] = 1
		}
	}

	scaler := Scaler{
		withMean: s.WithMean,
		scale:    scale,
	}
	if s.WithMean {
		scaler.mean = collector.Means()
	}
	return scaler, nil
}

// Dim returns the number of features the scaler was fitted on.
func (s Scaler) Dim() int {
	return len(s.scale)
}

// Scale returns a copy of the fitted per-feature scale.
func (s Scaler) Scale() []float64 {
	scale := make([]float64, len(s.scale))
	copy(scale, s.scale)
	return scale
}

// Mean returns a copy of the fitted per-feature mean.
// It is all zeros for a scale-only scaler.
func (s Scaler) Mean() []float64 {
	mean := make([]float64, len(s.scale))
	copy(mean, s.mean)
	return mean
}

// Transform returns a new matrix with every column rescaled by the fitted statistics.
func (s Scaler) Transform(x *mat.Dense) (*mat.Dense, error) {
	if s.Dim() == 0 {
		return nil, fmt.Errorf("scaler: %w", model.StateErr)
	}
	if x == nil || x.IsEmpty() {
		return nil, fmt.Errorf("cannot transform empty matrix: %w", model.ConfigurationErr)
	}
	rows, cols := x.Dims()
	if cols != s.Dim() {
		return nil, fmt.Errorf("scaler fitted on %d features got %d: %w", s.Dim(), cols, model.DimensionErr)
	}

	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(i, j int, v float64) float64 {
		if s.withMean {
			v -= s.mean[j]
		}
		return v / s.scale[j]
	}, x)
	return out, nil
}
