// Package limits exposes numeric limits of unsigned fixed-width integer
// types: bit width, maximum value, and the largest representable power of
// two. Every result is derived from the type alone, so the compiler folds
// these into constants per instantiation.
package limits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Digits returns the bit width W of T.
func Digits[T constraints.Unsigned]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// Max returns the all-ones value of T.
func Max[T constraints.Unsigned]() T {
	return ^T(0)
}

// MaxPow2 returns the largest power of two representable in T, i.e.
// 1 << (W-1).
func MaxPow2[T constraints.Unsigned]() T {
	return T(1) << (Digits[T]() - 1)
}
