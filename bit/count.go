package bit

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/IvanBrykalov/bitops/internal/limits"
)

// TrailingZeros returns the number of consecutive 0 bits in v starting at
// bit 0, stopping at the first 1. It returns the full width W for v == 0.
func TrailingZeros[T constraints.Unsigned](v T) int {
	if v == 0 {
		return limits.Digits[T]()
	}
	// Width-keyed fast path: the switch condition is a per-instantiation
	// constant, so only one arm survives compilation. math/bits calls are
	// compiler intrinsics on the platforms that matter.
	switch unsafe.Sizeof(v) {
	case 1:
		return bits.TrailingZeros8(uint8(v))
	case 2:
		return bits.TrailingZeros16(uint16(v))
	case 4:
		return bits.TrailingZeros32(uint32(v))
	case 8:
		return bits.TrailingZeros64(uint64(v))
	}
	return trailingZerosBisect(v)
}

// LeadingZeros returns the number of consecutive 0 bits in v starting at the
// most significant bit, stopping at the first 1. It returns W for v == 0.
func LeadingZeros[T constraints.Unsigned](v T) int {
	if v == 0 {
		return limits.Digits[T]()
	}
	switch unsafe.Sizeof(v) {
	case 1:
		return bits.LeadingZeros8(uint8(v))
	case 2:
		return bits.LeadingZeros16(uint16(v))
	case 4:
		return bits.LeadingZeros32(uint32(v))
	case 8:
		return bits.LeadingZeros64(uint64(v))
	}
	return leadingZerosBisect(v)
}

// TrailingOnes returns the number of consecutive 1 bits starting at bit 0.
// Defined as TrailingZeros of the complement; returns W for all-ones input.
func TrailingOnes[T constraints.Unsigned](v T) int {
	return TrailingZeros(^v)
}

// LeadingOnes returns the number of consecutive 1 bits starting at the most
// significant bit. Ex: LeadingOnes(uint8(0xFF)) == 8.
func LeadingOnes[T constraints.Unsigned](v T) int {
	return LeadingZeros(^v)
}

// trailingZerosBisect is the portable O(log W) path: test whether the low
// half of a shrinking window is all-zero, discard it if so, and accumulate
// the discarded width. Must agree with the intrinsic path for every value.
func trailingZerosBisect[T constraints.Unsigned](v T) int {
	if v == 0 {
		return limits.Digits[T]()
	}
	if v&1 != 0 {
		return 0
	}
	zeros := 0
	shift := limits.Digits[T]() >> 1
	mask := limits.Max[T]() >> shift
	for shift != 0 {
		if v&mask == 0 {
			v >>= shift
			zeros |= shift
		}
		shift >>= 1
		mask >>= shift
	}
	return zeros
}

// leadingZerosBisect halves from the top instead: if the high half is empty
// the run extends by the window width, otherwise the search continues inside
// the high half.
func leadingZerosBisect[T constraints.Unsigned](v T) int {
	if v == 0 {
		return limits.Digits[T]()
	}
	zeros := 0
	for shift := limits.Digits[T]() >> 1; shift != 0; shift >>= 1 {
		if tmp := v >> shift; tmp != 0 {
			v = tmp
		} else {
			zeros |= shift
		}
	}
	return zeros
}
