package bit

import (
	"math/bits"
	"testing"

	"github.com/IvanBrykalov/bitops/internal/limits"
)

// Spot checks from the 8-bit examples, then exhaustive cross-checks below.
func TestCounts_Examples8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      uint8
		tz, lz int
	}{
		{0b0000_0000, 8, 8},
		{0b0000_0001, 0, 7},
		{0b0000_1000, 3, 4},
		{0b1000_0000, 7, 0},
		{0b1111_1111, 0, 0},
		{0b0101_0000, 4, 1},
	}
	for _, tt := range tests {
		if got := TrailingZeros(tt.v); got != tt.tz {
			t.Errorf("TrailingZeros(%#08b) = %d, want %d", tt.v, got, tt.tz)
		}
		if got := LeadingZeros(tt.v); got != tt.lz {
			t.Errorf("LeadingZeros(%#08b) = %d, want %d", tt.v, got, tt.lz)
		}
	}

	if got := LeadingOnes(uint8(0xFF)); got != 8 {
		t.Errorf("LeadingOnes(0xFF) = %d, want 8", got)
	}
	if got := TrailingOnes(uint8(0x0F)); got != 4 {
		t.Errorf("TrailingOnes(0x0F) = %d, want 4", got)
	}
}

// Zero input returns the full width W for every supported width.
func TestCounts_ZeroReturnsWidth(t *testing.T) {
	t.Parallel()

	if got := TrailingZeros(uint8(0)); got != 8 {
		t.Errorf("uint8: got %d", got)
	}
	if got := TrailingZeros(uint16(0)); got != 16 {
		t.Errorf("uint16: got %d", got)
	}
	if got := TrailingZeros(uint32(0)); got != 32 {
		t.Errorf("uint32: got %d", got)
	}
	if got := TrailingZeros(uint64(0)); got != 64 {
		t.Errorf("uint64: got %d", got)
	}
	if got := LeadingZeros(uint8(0)); got != 8 {
		t.Errorf("uint8: got %d", got)
	}
	if got := LeadingZeros(uint64(0)); got != 64 {
		t.Errorf("uint64: got %d", got)
	}
	// All-ones is the zero case of the complement-defined pair.
	if got := TrailingOnes(^uint16(0)); got != 16 {
		t.Errorf("TrailingOnes(all ones) = %d, want 16", got)
	}
	if got := LeadingOnes(^uint64(0)); got != 64 {
		t.Errorf("LeadingOnes(all ones) = %d, want 64", got)
	}
}

// Exhaustive over uint8 and uint16: the intrinsic path, the bisection
// fallback, and the positional invariant must all agree.
func TestCounts_Exhaustive(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1<<8; i++ {
		v := uint8(i)
		tz, lz := TrailingZeros(v), LeadingZeros(v)
		if want := bits.TrailingZeros8(v); v != 0 && tz != want {
			t.Fatalf("TrailingZeros(%#x) = %d, want %d", v, tz, want)
		}
		if want := trailingZerosBisect(v); tz != want {
			t.Fatalf("TrailingZeros(%#x) = %d, bisect says %d", v, tz, want)
		}
		if want := leadingZerosBisect(v); lz != want {
			t.Fatalf("LeadingZeros(%#x) = %d, bisect says %d", v, lz, want)
		}
		if v != 0 {
			// Bit tz is set, everything below it is clear.
			if v&(1<<tz) == 0 || v&(1<<tz-1) != 0 {
				t.Fatalf("TrailingZeros(%#08b) = %d breaks positional invariant", v, tz)
			}
			// Bit W-1-lz is set, everything above it is clear.
			if v>>(7-lz) != 1 {
				t.Fatalf("LeadingZeros(%#08b) = %d breaks positional invariant", v, lz)
			}
		}
	}

	for i := 0; i < 1<<16; i++ {
		v := uint16(i)
		if got, want := TrailingZeros(v), trailingZerosBisect(v); got != want {
			t.Fatalf("TrailingZeros(%#x) = %d, bisect says %d", v, got, want)
		}
		if got, want := LeadingZeros(v), leadingZerosBisect(v); got != want {
			t.Fatalf("LeadingZeros(%#x) = %d, bisect says %d", v, got, want)
		}
		if got, want := TrailingOnes(v), TrailingZeros(^v); got != want {
			t.Fatalf("TrailingOnes(%#x) = %d, want %d", v, got, want)
		}
		if got, want := LeadingOnes(v), LeadingZeros(^v); got != want {
			t.Fatalf("LeadingOnes(%#x) = %d, want %d", v, got, want)
		}
	}
}

// Sampled 64-bit values: single bits, runs, and the bisect/intrinsic split.
func TestCounts_Wide(t *testing.T) {
	t.Parallel()

	for k := 0; k < 64; k++ {
		v := uint64(1) << k
		if got := TrailingZeros(v); got != k {
			t.Fatalf("TrailingZeros(1<<%d) = %d", k, got)
		}
		if got := LeadingZeros(v); got != 63-k {
			t.Fatalf("LeadingZeros(1<<%d) = %d", k, got)
		}
		if got, want := TrailingZeros(v), trailingZerosBisect(v); got != want {
			t.Fatalf("bisect disagrees at 1<<%d: %d vs %d", k, got, want)
		}
		if got, want := LeadingZeros(v), leadingZerosBisect(v); got != want {
			t.Fatalf("bisect disagrees at 1<<%d: %d vs %d", k, got, want)
		}
	}
	// Named unsigned types go through the same generic path.
	type word uint32
	if got := TrailingZeros(word(0b100)); got != 2 {
		t.Fatalf("named type: got %d", got)
	}
	if got := LeadingZeros(word(0)); got != limits.Digits[word]() {
		t.Fatalf("named type zero: got %d", got)
	}
}
