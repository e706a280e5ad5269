package bit

import (
	"golang.org/x/exp/constraints"

	"github.com/IvanBrykalov/bitops/internal/limits"
)

// IsPowerOfTwo reports whether exactly one bit of v is set, i.e. whether v is
// a power of two (> 0).
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// Len returns the minimum number of bits required to represent v: 0 for
// v == 0, k+1 for a single bit at position k. Ex: Len(uint32(5)) == 3.
func Len[T constraints.Unsigned](v T) int {
	return limits.Digits[T]() - LeadingZeros(v)
}

// Floor returns the largest power of two <= v, or 0 for v == 0.
// Ex: Floor(uint32(5)) == 4.
func Floor[T constraints.Unsigned](v T) T {
	if v == 0 {
		return 0
	}
	return T(1) << (Len(v) - 1)
}

// Ceil returns the smallest power of two >= v, or 1 for v < 2.
// Ex: Ceil(uint32(5)) == 8.
//
// If that power of two is not representable in T (v > 1<<(W-1)), Ceil
// saturates and returns 1<<(W-1), the largest representable power of two.
func Ceil[T constraints.Unsigned](v T) T {
	if v < 2 {
		return 1
	}
	n := Len(v - 1)
	if n == limits.Digits[T]() {
		return limits.MaxPow2[T]()
	}
	return T(1) << n
}
