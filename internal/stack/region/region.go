// Package region implements the address-range value type for hart stacks.
//
// A Region describes one hart's statically allocated stack. Because the
// stack grows downward, Start is the high/initial address and End is the
// low/limit address, so a Region is "reversed" relative to a conventional
// [low, high) range: the bytes belonging to the stack are [End, Start).
//
// Regions are derived once from the linker-provided layout and are
// immutable for the lifetime of the program. All operations here are pure
// address arithmetic on uintptr values; nothing in this package touches
// memory.
package region

// DefaultAlignment is the stack alignment required by the RISC-V psABI.
// Layout derivation rounds every region boundary to this (or a caller
// supplied power of two) so that a derived region never claims bytes
// outside the stack space the linker actually reserved.
const DefaultAlignment uintptr = 16

// Region is one hart's stack address range.
//
// Start is the highest address (where the stack pointer begins), End is
// the lowest. End is one past the last byte belonging to the previous
// hart's stack; writing below End corrupts a neighboring hart.
//
// Invariant: End <= Start. A zero Region is valid and empty.
type Region struct {
	// Start is the high/initial address of the stack.
	Start uintptr

	// End is the low/limit address of the stack.
	End uintptr
}

// Size returns the number of bytes in the region.
//
//go:nosplit
func (r Region) Size() uintptr {
	return r.Start - r.End
}

// Empty reports whether the region contains no bytes.
//
//go:nosplit
func (r Region) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether addr falls inside the region's bytes,
// i.e. End <= addr < Start.
//
//go:nosplit
func (r Region) Contains(addr uintptr) bool {
	return addr >= r.End && addr < r.Start
}

// Align rounds the region inward to the given power-of-two alignment:
// Start down, End up. Rounding inward guarantees the aligned region is a
// subset of the original, so scans and paints stay within the true stack
// even when the linker symbols are not themselves aligned.
//
// If rounding would cross the bounds over each other (a region smaller
// than one alignment unit), the result is an empty region at the rounded
// Start.
//
//go:nosplit
func (r Region) Align(alignment uintptr) Region {
	if alignment == 0 {
		alignment = DefaultAlignment
	}
	mask := alignment - 1
	start := r.Start &^ mask
	end := (r.End + mask) &^ mask
	if end > start {
		end = start
	}
	return Region{Start: start, End: end}
}

// Clamp limits addr to the region: values below End become End, values
// above Start become Start. Used to bound a stack-pointer snapshot before
// it is used as a paint or measurement boundary.
//
//go:nosplit
func (r Region) Clamp(addr uintptr) uintptr {
	if addr < r.End {
		return r.End
	}
	if addr > r.Start {
		return r.Start
	}
	return addr
}
