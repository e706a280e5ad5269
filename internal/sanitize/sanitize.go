// Package sanitize is the seam between the bit library and memory
// instrumentation tooling. Reading a value's raw representation byte by byte
// trips poisoned-memory detectors unless the region is unpoisoned first;
// uninstrumented builds pay a single indirect call that does nothing.
package sanitize

import "unsafe"

// unpoison is the active hook. The default marks nothing and returns.
var unpoison = func(unsafe.Pointer, uintptr) {}

// Unpoison marks the n bytes at p as initialized for whatever memory
// instrumentation is installed. No-op unless SetUnpoison replaced the hook.
func Unpoison(p unsafe.Pointer, n uintptr) {
	unpoison(p, n)
}

// SetUnpoison installs fn as the unpoison hook. Must be called during init,
// before any reinterpretation runs; a nil fn restores the no-op.
func SetUnpoison(fn func(p unsafe.Pointer, n uintptr)) {
	if fn == nil {
		fn = func(unsafe.Pointer, uintptr) {}
	}
	unpoison = fn
}
