// Package analyzer implements the stack measurement engine: live usage
// from the stack-pointer register and the paint-and-scan protocol for
// historical high-water marks.
//
// # Architecture
//
// The Analyzer owns no memory and keeps no state between calls. It is
// handed a Region (derived by the layout package) and reads the stack
// pointer itself, through an injectable SPFunc, at entry to every
// operation that needs it. Reading inside the entry point is what makes
// the value belong to the caller's execution context.
//
// # Live vs painted measurement
//
// InUse and Free compare the live stack pointer against the region
// bounds: constant time, valid only on the hart that owns the region.
//
// Repaint writes the sentinel over the currently unused part of the
// region; Painted and PaintedBinary later scan for the deepest byte the
// sentinel was disturbed at, yielding the worst-case usage since the
// paint. Scanning is read-only, idempotent, and safe from any hart or
// after a crash, because it needs no live register state from the
// region's owner.
//
// # Hazards
//
// Repaint is the one mutation in the module. Its upper bound is a single
// stack-pointer snapshot taken at entry; nothing on the hart may push
// the stack pointer below that snapshot while the paint loop runs. Call
// it early in a shallow frame with interrupts masked, or accept that an
// interrupt could grow the stack into freshly painted bytes mid-paint.
// Painting a region the caller is not executing on is safe for the
// painter (the snapshot is clamped, so the loop never leaves the region)
// but the snapshot is meaningless there: the paint degenerates to
// covering all of the region or none of it.
//
// A live stack byte that legitimately equals the sentinel stops the scan
// early and under-reports usage by that byte. This is inherent to
// sentinel scanning; the measurement is an estimate and must not carry
// safety guarantees.
package analyzer
