// Package layout maps hart identifiers to stack regions.
//
// On the target, the whole stack block is carved out by the linker
// script: a single _stack_start symbol marks the highest address of the
// block and _hart_stack_size gives the (identical) per-hart slice. This
// package makes those two ambient symbol values an explicit Layout value
// so the dependency is visible and host tests can substitute fabricated
// ranges.
//
// # Safety contract
//
// Region derivation is pure arithmetic and cannot fail, but its result is
// only meaningful if the Layout matches the linker script: StackTop must
// be the true top of the reserved block and every hart's slice must lie
// inside it. A Layout that lies about the linker script makes every
// downstream read and write land outside the real stack. This is the one
// safety hazard of the whole library and it cannot be detected at
// runtime; it must be ruled out at link/configuration time.
package layout

import "github.com/kolkov/stackpaint/internal/stack/region"

// Layout describes the static multi-hart stack block.
//
// Hart k's stack occupies [StackTop - HartStackSize*(k+1),
// StackTop - HartStackSize*k), highest addresses first: hart 0 owns the
// top slice, each further hart the slice below its predecessor.
type Layout struct {
	// StackTop is the highest address of the whole stack block
	// (the _stack_start linker symbol).
	StackTop uintptr

	// HartStackSize is the number of bytes reserved per hart
	// (the _hart_stack_size linker symbol). Identical for every hart.
	HartStackSize uintptr

	// Alignment is the stack alignment boundaries are rounded to.
	// Zero means region.DefaultAlignment. Must be a power of two.
	Alignment uintptr
}

// New returns a Layout with the default alignment.
func New(stackTop, hartStackSize uintptr) Layout {
	return Layout{
		StackTop:      stackTop,
		HartStackSize: hartStackSize,
		Alignment:     region.DefaultAlignment,
	}
}

// Valid reports whether the layout describes at least one byte of stack.
// It does not (and cannot) verify the values against the linker script.
func (l Layout) Valid() bool {
	return l.StackTop != 0 && l.HartStackSize != 0
}

// Region returns hart's stack region with boundaries rounded inward to
// the layout alignment. Because rounding only shrinks, regions for
// different harts never overlap even when HartStackSize is unaligned;
// they are adjacent (before rounding, region(k).Start == region(k+1).End).
//
// The result is undefined if the layout does not match the linker script
// or hart is outside the range the script reserved space for; see the
// package safety contract.
//
//go:nosplit
func (l Layout) Region(hart uint) region.Region {
	top := l.StackTop - l.HartStackSize*uintptr(hart)
	r := region.Region{
		Start: top,
		End:   top - l.HartStackSize,
	}
	return r.Align(l.Alignment)
}
