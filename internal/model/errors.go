package model

import "errors"

var (
	// ConfigurationErr flags invalid input that a caller has to fix, e.g. an empty vocabulary.
	ConfigurationErr = errors.New("invalid configuration")
	// StateErr flags a call on a component that has not been fitted.
	StateErr = errors.New("not fitted")
	// DimensionErr flags a feature width that does not match the fitted width.
	DimensionErr = errors.New("dimension mismatch")
	// DegenerateInputErr flags numeric input that cannot produce a finite result.
	DegenerateInputErr = errors.New("degenerate input")
)
