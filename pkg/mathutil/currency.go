// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// SameCents reports whether two currency amounts agree to the cent.
func SameCents(val1, val2 float64) bool {
	return WithinTolerance(val1, val2, constants.CurrencyTolerance)
}
