package ml

import (
	"fmt"
	"math"
	"runtime"

	"github.com/drakos74/stylo/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Delta is a nearest neighbour classifier on standardized feature vectors.
// With the CityBlock metric on L1 normalized frequencies this is Burrows' Delta.
type Delta struct {
	Standardizer Standardizer
}

// NewDelta creates a scale-only Delta classifier.
func NewDelta() Delta {
	return Delta{Standardizer: Standardizer{}}
}

// DeltaModel is the fitted state of a Delta classifier.
// The reference set is read-only once fitted, so a model can serve concurrent predictions.
type DeltaModel struct {
	scaler    Scaler
	reference *mat.Dense
	labels    []model.Label
}

// Neighbour is the closest reference vector of a query.
type Neighbour struct {
	Index    int         `json:"index"`
	Label    model.Label `json:"label"`
	Distance float64     `json:"distance"`
}

// Fit standardizes x and keeps it, along with the labels, as the reference set.
// Fitting again creates a new model and leaves any previous one untouched.
func (d Delta) Fit(x *mat.Dense, y []model.Label) (*DeltaModel, error) {
	if x == nil || x.IsEmpty() {
		return nil, fmt.Errorf("no training vectors: %w", model.ConfigurationErr)
	}
	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("%d training vectors but %d labels: %w", rows, len(y), model.ConfigurationErr)
	}

	scaler, err := d.Standardizer.Fit(x)
	if err != nil {
		return nil, fmt.Errorf("could not fit standardizer: %w", err)
	}
	reference, err := scaler.Transform(x)
	if err != nil {
		return nil, fmt.Errorf("could not standardize training vectors: %w", err)
	}

	labels := make([]model.Label, len(y))
	copy(labels, y)

	log.Debug().
		Int("vectors", rows).
		Int("features", cols).
		Bool("with-mean", d.Standardizer.WithMean).
		Msg("fitted delta model")

	return &DeltaModel{
		scaler:    scaler,
		reference: reference,
		labels:    labels,
	}, nil
}

// Dim returns the feature width of the reference set.
func (dm *DeltaModel) Dim() int {
	if dm == nil {
		return 0
	}
	return dm.scaler.Dim()
}

// Size returns the number of reference vectors.
func (dm *DeltaModel) Size() int {
	if dm == nil {
		return 0
	}
	return len(dm.labels)
}

// Labels returns a copy of the reference labels.
func (dm *DeltaModel) Labels() []model.Label {
	labels := make([]model.Label, dm.Size())
	if dm != nil {
		copy(labels, dm.labels)
	}
	return labels
}

// Scaler returns the fitted standardization.
func (dm *DeltaModel) Scaler() Scaler {
	return dm.scaler
}

// Predict returns, for every row of x, the label of the closest reference vector.
func (dm *DeltaModel) Predict(x *mat.Dense, metric Metric) ([]model.Label, error) {
	neighbours, err := dm.Neighbours(x, metric)
	if err != nil {
		return nil, err
	}
	labels := make([]model.Label, len(neighbours))
	for i, n := range neighbours {
		labels[i] = n.Label
	}
	return labels, nil
}

// Neighbours returns the closest reference vector for every row of x.
// Equidistant reference vectors resolve to the lowest index.
func (dm *DeltaModel) Neighbours(x *mat.Dense, metric Metric) ([]Neighbour, error) {
	distances, err := dm.Distances(x, metric)
	if err != nil {
		return nil, err
	}
	rows, _ := distances.Dims()
	neighbours := make([]Neighbour, rows)
	for i := 0; i < rows; i++ {
		j := argmin(distances.RawRowView(i))
		neighbours[i] = Neighbour{
			Index:    j,
			Label:    dm.labels[j],
			Distance: distances.At(i, j),
		}
	}
	return neighbours, nil
}

// Distances standardizes x with the fitted scaler and returns the M×N matrix
// of distances between the rows of x and the reference vectors.
func (dm *DeltaModel) Distances(x *mat.Dense, metric Metric) (*mat.Dense, error) {
	if dm == nil || dm.reference == nil {
		return nil, fmt.Errorf("delta model: %w", model.StateErr)
	}
	if !metric.Valid() {
		return nil, fmt.Errorf("unknown metric %v: %w", metric, model.ConfigurationErr)
	}
	if x == nil || x.IsEmpty() {
		return nil, fmt.Errorf("no query vectors: %w", model.ConfigurationErr)
	}
	if _, cols := x.Dims(); cols != dm.Dim() {
		return nil, fmt.Errorf("query has %d features, model has %d: %w", cols, dm.Dim(), model.DimensionErr)
	}

	query, err := dm.scaler.Transform(x)
	if err != nil {
		return nil, fmt.Errorf("could not standardize query vectors: %w", err)
	}
	return dm.pairwise(query, metric)
}

// pairwise spreads the query rows over the available cpus.
// Every worker writes its own rows, so the output order matches the input.
func (dm *DeltaModel) pairwise(query *mat.Dense, metric Metric) (*mat.Dense, error) {
	rows, _ := query.Dims()
	n, _ := dm.reference.Dims()
	distances := mat.NewDense(rows, n, nil)

	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < rows; i += workers {
				q := query.RawRowView(i)
				out := distances.RawRowView(i)
				for j := 0; j < n; j++ {
					d := metric.Distance(q, dm.reference.RawRowView(j))
					if math.IsNaN(d) || math.IsInf(d, 0) {
						return fmt.Errorf("non-finite %v distance between query %d and reference %d: %w", metric, i, j, model.DegenerateInputErr)
					}
					out[j] = d
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return distances, nil
}

// argmin returns the index of the first minimum.
func argmin(values []float64) int {
	best := 0
	for j := 1; j < len(values); j++ {
		if values[j] < values[best] {
			best = j
		}
	}
	return best
}
