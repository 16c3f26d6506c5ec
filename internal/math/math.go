package math

import (
	"strconv"
)

// Format formats a float with the given number of decimals.
func Format(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// Percent formats a ratio in [0,1] as a percentage.
func Percent(f float64) string {
	return Format(100*f, 1) + "%"
}
