package numeric

import (
	"golang.org/x/exp/constraints"

	"github.com/kbukum/genc/errors"
)

// Increment returns v+1, or an overflow error when v is the maximum of T.
func Increment[T constraints.Signed](v T) (T, error) {
	if v == MaxOf[T]() {
		return v, errors.Overflow(v, Bits[T]())
	}
	return v + 1, nil
}

// Decrement returns v-1, or an overflow error when v is the minimum of T.
func Decrement[T constraints.Signed](v T) (T, error) {
	if v == MinOf[T]() {
		return v, errors.Overflow(v, Bits[T]())
	}
	return v - 1, nil
}

// Direction selects which way a Counter steps.
type Direction int8

const (
	Up   Direction = 1
	Down Direction = -1
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Step applies one step in direction d to v.
func Step[T constraints.Signed](d Direction, v T) (T, error) {
	if d == Down {
		return Decrement(v)
	}
	return Increment(v)
}
