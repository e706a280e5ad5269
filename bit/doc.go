// Package bit provides generic, branch-light bit manipulation primitives for
// unsigned fixed-width integers: counting leading/trailing zero or one bits,
// bit width, rounding to adjacent powers of two, rotation, bit-pattern
// reinterpretation, and 1-based leading-bit scans.
//
// Design
//
//   - Totality: the conventionally-undefined edge cases are defined here.
//     TrailingZeros(0) and LeadingZeros(0) return the full width W,
//     TrailingOnes/LeadingOnes return W on all-ones input, and rotation by a
//     multiple of W returns the value unchanged (the shift-by-W hazard is
//     avoided entirely, never executed).
//
//   - Unsigned only: every function is constrained by constraints.Unsigned,
//     so instantiating with a signed or non-integer type is a compile error,
//     not a runtime surprise.
//
//   - Acceleration: for the widths Go has hardware-backed intrinsics for
//     (8/16/32/64), the counting functions dispatch to math/bits through a
//     size-keyed switch the compiler resolves per instantiation. A portable
//     bisection fallback covers any width outside the table; correctness
//     never depends on the fast path being taken. Both paths apply the same
//     zero-input contract.
//
//   - Purity: no function allocates, blocks, logs, or touches shared state.
//     All of them are safe to call concurrently from any number of
//     goroutines and complete in O(1) or O(log W).
//
// Basic usage
//
//	bit.TrailingZeros(uint8(0b0000_1000)) // 3
//	bit.Len(uint64(5))                    // 3
//	bit.Floor(uint32(5))                  // 4
//	bit.Ceil(uint32(5))                   // 8
//	bit.RotateLeft(uint8(0b1000_0001), 1) // 0b0000_0011
//
// Reinterpretation
//
//	// Same-size, pointer-free types only; see Reinterpret for the contract.
//	b := bit.Reinterpret[[8]byte](uint64(0x0102030405060708))
//
// Ceil saturates: if the smallest power of two >= v is not representable in
// T, Ceil returns the largest power of two that is (1 << (W-1)). Callers who
// need wrap or failure semantics must check Len(v-1) == W themselves.
package bit
