package bit

import (
	"fmt"
	"unsafe"

	"github.com/IvanBrykalov/bitops/internal/sanitize"
)

// Reinterpret copies the bit pattern of from into a freshly constructed To.
// No arithmetic conversion, truncation, or sign extension takes place; the
// result holds byte-for-byte the representation of from.
//
// Contract:
//   - unsafe.Sizeof(To) must equal unsafe.Sizeof(From). Go's type system
//     cannot relate the sizes of two type parameters, so a mismatched
//     instantiation panics on every call instead of failing to compile.
//   - Both types must be trivial: no pointers, maps, channels, functions, or
//     interfaces anywhere in them. A byte copy of a non-trivial value aliases
//     its referents behind the runtime's back; this is not checked.
//
// The source region is unpoisoned for memory-instrumentation tooling before
// it is read (a no-op in uninstrumented builds); skipping that step would
// produce false positives when the caller passes a partially initialized
// value whose padding was never written.
func Reinterpret[To, From any](from From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(from) {
		panic(fmt.Sprintf("bit: Reinterpret between types of different sizes (%d vs %d bytes)",
			unsafe.Sizeof(to), unsafe.Sizeof(from)))
	}
	sanitize.Unpoison(unsafe.Pointer(&from), unsafe.Sizeof(from))
	copy(
		unsafe.Slice((*byte)(unsafe.Pointer(&to)), unsafe.Sizeof(to)),
		unsafe.Slice((*byte)(unsafe.Pointer(&from)), unsafe.Sizeof(from)),
	)
	return to
}
