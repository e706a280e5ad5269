package bit

import (
	"golang.org/x/exp/constraints"

	"github.com/IvanBrykalov/bitops/internal/limits"
)

// Rotation follows "Safe, Efficient, and Portable Rotate in C/C++"
// (https://blog.regehr.org/archives/1063): the rotate amount is reduced
// modulo W up front, a reduced amount of 0 returns the value unchanged, and
// the two-shift formulation only ever shifts by amounts strictly inside
// (0, W). Negative amounts delegate to the opposite direction, which makes
// RotateLeft(v, n) == RotateRight(v, -n) hold for every n.

// RotateLeft returns v rotated left by k bit positions.
// Ex: RotateLeft(uint8(0b1000_0001), 1) == 0b0000_0011.
func RotateLeft[T constraints.Unsigned](v T, k int) T {
	w := limits.Digits[T]()
	k %= w
	if k == 0 {
		return v
	}
	if k < 0 {
		return RotateRight(v, -k)
	}
	return v<<k | v>>(w-k)
}

// RotateRight returns v rotated right by k bit positions.
func RotateRight[T constraints.Unsigned](v T, k int) T {
	w := limits.Digits[T]()
	k %= w
	if k == 0 {
		return v
	}
	if k < 0 {
		return RotateLeft(v, -k)
	}
	return v>>k | v<<(w-k)
}
