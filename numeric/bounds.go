package numeric

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the width of T in bits.
func Bits[T constraints.Signed]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// MinOf returns the smallest value representable by T.
func MinOf[T constraints.Signed]() T {
	return T(1) << (Bits[T]() - 1)
}

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Signed]() T {
	return ^MinOf[T]()
}
