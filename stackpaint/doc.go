// Package stackpaint measures stack usage on multi-hart RISC-V targets
// whose stacks are laid out statically by the linker, one contiguous
// slice per hart, with no allocator and no operating system underneath.
//
// # Quick Start
//
// On a TinyGo RISC-V target with a riscv-rt style linker script:
//
//	func main() {
//		stackpaint.Init()
//		stackpaint.RepaintStack()
//
//		runWorkload()
//
//		worst := stackpaint.StackPainted()
//		live := stackpaint.CurrentStackInUse()
//		// worst >= live: the deepest excursion since the repaint
//	}
//
// # API Overview
//
// The package provides functions for:
//   - Configuration: [Init], [InitLayout], [NewLayout]
//   - Region derivation: [Stack], [RegionFor], [StackSize]
//   - Live measurement: [CurrentStackInUse], [CurrentStackFree],
//     [CurrentStackFraction]
//   - High-water measurement: [RepaintStack], [StackPainted],
//     [StackPaintedBinary]
//   - Explicit-region variants: [InUse], [Free], [Repaint], [Painted],
//     [PaintedBinary]
//   - Version information: [GetInfo], [Version]
//
// # How It Works
//
// The linker script reserves one block of memory for all stacks and
// exports two symbols: _stack_start, the highest address of the block,
// and _hart_stack_size, the identical per-hart slice. Hart k's stack
// spans [_stack_start - size*(k+1), _stack_start - size*k), and the
// package rounds both bounds inward to the stack alignment so a derived
// region never claims a byte outside the true stack.
//
// Live usage is the distance between a region's initial address and the
// stack-pointer register, read inside each entry point so it reflects
// the caller's own execution context.
//
// Historical usage uses stack painting: RepaintStack writes a sentinel
// pattern (0xCCCCCCCC) over the currently unused part of the stack, and
// StackPainted later scans upward from the stack's limit for the deepest
// byte the pattern was disturbed at. The distance from the top of the
// stack to that byte is the worst case usage since the paint. Scanning
// is read-only and idempotent; it does not reset the window, only a new
// RepaintStack does.
//
// # Safety Contract
//
// There are no runtime checks and no error returns; in a no-allocation
// bare-metal context every precondition is a documented contract:
//
//   - The linker symbols must be accurate and every hart's slice must
//     lie inside the reserved block. The package cannot detect a lying
//     linker script; measurements and paints would touch unowned memory.
//   - The live measurements and RepaintStack are only meaningful on the
//     hart that owns the region. A foreign hart's stack pointer is never
//     readable; use the painted scans for foreign or post-crash regions.
//   - RepaintStack snapshots the stack pointer once and must not race
//     with stack growth on its own hart: mask interrupts around it, or
//     accept that a mid-paint interrupt may dirty the fresh paint.
//
// Violating the contract is not detected and not recoverable; the
// failure mode is silent memory corruption or a wrong measurement.
//
// # Measurements Are Estimates
//
// A live stack word that happens to equal the sentinel stops a scan
// early; an interrupt during a scan can hide usage behind the cursor.
// The numbers are accurate in practice but carry no guarantee, and must
// not be used for load-bearing safety decisions.
package stackpaint
