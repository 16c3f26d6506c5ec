package math

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// L1Normalize returns a copy of v scaled so that its entries sum to 1.
// A vector summing to zero, e.g. the counts of an empty document, is returned as all zeros.
func L1Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	sum := floats.Sum(v)
	if sum == 0 {
		return out
	}
	floats.ScaleTo(out, 1/sum, v)
	return out
}

// NormalizeRows returns a new matrix with every row L1 normalized.
func NormalizeRows(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		row := mat.Row(nil, i, m)
		if floats.Sum(row) == 0 {
			log.Debug().Int("row", i).Msg("zero sum row left as zeros")
		}
		out.SetRow(i, L1Normalize(row))
	}
	return out
}
