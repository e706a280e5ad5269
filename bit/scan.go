package bit

import (
	"golang.org/x/exp/constraints"

	"github.com/IvanBrykalov/bitops/internal/limits"
)

// FirstLeadingZero returns the 1-based position, counted from the most
// significant bit, of the first 0 bit in v. It returns 0 when v is all ones
// (the 1-based convention would otherwise land at W+1).
func FirstLeadingZero[T constraints.Unsigned](v T) int {
	if v == limits.Max[T]() {
		return 0
	}
	return LeadingOnes(v) + 1
}

// FirstLeadingOne returns the 1-based position, counted from the most
// significant bit, of the first 1 bit in v, or 0 when v == 0.
func FirstLeadingOne[T constraints.Unsigned](v T) int {
	return FirstLeadingZero(^v)
}
