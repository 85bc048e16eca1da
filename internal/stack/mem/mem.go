// Package mem is the module's only unsafe surface: it turns a stack
// Region into a slice the paint and scan loops can iterate. Every other
// package deals strictly in byte counts.
//
// Views are ordered low-to-high: index 0 is the byte at Region.End (the
// deepest stack byte) and the last index is just below Region.Start. A
// view aliases memory the Go runtime knows nothing about; callers own
// the bounds (via the Region contract) and the lifetime.
package mem

import (
	"unsafe"

	"github.com/kolkov/stackpaint/internal/stack/region"
)

// WordSize is the granularity of the word view, matching the paint
// pattern width.
const WordSize = unsafe.Sizeof(uint32(0))

// Bytes returns the region's memory as a byte slice, low address first.
// Returns nil for an empty region.
func Bytes(r region.Region) []byte {
	if r.Empty() {
		return nil
	}
	//nolint:govet // unsafeptr: the Region contract is what makes this address valid
	return unsafe.Slice((*byte)(unsafe.Pointer(r.End)), r.Size())
}

// Words returns the region's memory as a uint32 slice, low address
// first. Bytes between the last whole word and Region.Start are not part
// of the view. Region.End must be word-aligned.
func Words(r region.Region) []uint32 {
	n := r.Size() / WordSize
	if n == 0 {
		return nil
	}
	//nolint:govet // unsafeptr: the Region contract is what makes this address valid
	return unsafe.Slice((*uint32)(unsafe.Pointer(r.End)), n)
}
