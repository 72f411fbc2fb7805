package utils

import "math"

// ToMinorUnits converts a decimal currency amount to integer minor units.
// Rounding (not truncation) keeps 0.1 cent artifacts of float math from
// systematically underbilling.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
