package random

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/kbukum/genc/errors"
)

// ValidateRange checks max > min. Unordered values (NaN) fail.
func ValidateRange[T cmp.Ordered](min, max T) error {
	if max > min {
		return nil
	}
	return errors.OutOfRange("max", fmt.Sprintf("max (%v) must be greater than min (%v)", max, min)).
		WithDetails(map[string]any{"min": min, "max": max})
}

// ValidateFloatRange checks max > min and that the width max-min is finite.
func ValidateFloatRange(min, max float64) error {
	if err := ValidateRange(min, max); err != nil {
		return err
	}
	if math.IsInf(max-min, 0) {
		return errors.OutOfRange("max", "range width is not finite").
			WithDetails(map[string]any{"min": min, "max": max})
	}
	return nil
}

// Int32Range returns a uniform value in [min, max). It requires max > min.
func Int32Range(r *rand.Rand, min, max int32) int32 {
	width := int64(max) - int64(min)
	return int32(int64(min) + r.Int64N(width))
}

// RejectionThreshold returns the largest raw draw accepted for width n > 0.
// Draws in [0, threshold] cover a whole multiple of n.
func RejectionThreshold(n uint64) uint64 {
	return math.MaxUint64 - (math.MaxUint64%n+1)%n
}

// Width64 returns max-min as an unsigned value. It is exact for any
// max > min, including ranges wider than math.MaxInt64.
func Width64(min, max int64) uint64 {
	return uint64(max) - uint64(min)
}

// Int64Range returns a uniform value in [min, max). It requires max > min.
// Raw draws above RejectionThreshold are discarded and redrawn; the expected
// number of draws is below 2 for any range.
func Int64Range(src rand.Source, min, max int64) int64 {
	n := Width64(min, max)
	limit := RejectionThreshold(n)
	for {
		draw := src.Uint64()
		if draw <= limit {
			return int64(draw%n) + min
		}
	}
}

// Float64Range returns a value in [min, max). It requires a range accepted
// by ValidateFloatRange.
func Float64Range(r *rand.Rand, min, max float64) float64 {
	v := min + r.Float64()*(max-min)
	if v >= max {
		v = math.Nextafter(max, math.Inf(-1))
	}
	return v
}
