// Package hw reads the hardware state the stack measurements depend on:
// the current stack-pointer register, the current hart id, and the
// linker-provided stack layout symbols.
//
// Register reads are exposed both as plain functions and as function
// types (SPFunc, HartIDFunc) so the measurement logic can be exercised on
// a host with fabricated readers pointing into an ordinary byte buffer.
//
// The actual read is provided by exactly one platform file:
//   - hw_riscv_tinygo.go: TinyGo on RISC-V (CSR + inline asm, linker symbols)
//   - sp_riscv64.go/.s: gc toolchain on riscv64 (assembly stub for sp)
//   - hw_fallback.go: everything else (address-of-local approximation)
package hw

import "github.com/kolkov/stackpaint/internal/stack/layout"

// SPFunc reads the stack pointer of the calling execution context.
//
// The value is only meaningful for the frame the read happens in;
// measurement entry points call it themselves rather than accepting a
// value so the reading reflects the caller's context.
type SPFunc func() uintptr

// HartIDFunc reads the identifier of the calling hart.
type HartIDFunc func() uint

// CurrentStackPointer returns the calling context's stack pointer.
//
// On platforms without a direct register read this is an approximation
// (the address of a stack local), which is sufficient for measurement:
// it lies within the caller's active frame, at most one frame below the
// true register value.
func CurrentStackPointer() uintptr {
	return readStackPointer()
}

// CurrentHartID returns the calling hart's id.
//
// Only TinyGo RISC-V targets can read mhartid (it is an M-mode CSR);
// everywhere else this reports hart 0.
func CurrentHartID() uint {
	return readHartID()
}

// LinkerLayout returns the stack layout advertised by the linker script
// (_stack_start and _hart_stack_size), and whether the platform exposes
// those symbols at all. When ok is false the caller must supply an
// explicit layout instead.
func LinkerLayout() (l layout.Layout, ok bool) {
	return linkerLayout()
}
