// Package stackpaint provides the public API for multi-hart stack
// measurement.
//
// See doc.go for detailed documentation and the safety contract.
package stackpaint

import (
	"github.com/kolkov/stackpaint/internal/stack/analyzer"
	internal "github.com/kolkov/stackpaint/internal/stack/api"
	"github.com/kolkov/stackpaint/internal/stack/layout"
	"github.com/kolkov/stackpaint/internal/stack/region"
)

const (
	// PaintValue is the sentinel word written over unused stack memory.
	PaintValue = analyzer.PaintValue

	// PaintByte is the byte the sentinel repeats.
	PaintByte = analyzer.PaintByte
)

// Region is one hart's stack address range. Start is the high/initial
// address, End the low/limit address; the stack's bytes are [End, Start).
type Region = region.Region

// Layout describes the static multi-hart stack block: the top of the
// whole block, the per-hart slice size and the boundary alignment.
type Layout = layout.Layout

// NewLayout returns a Layout with the platform default alignment.
//
// The two values correspond to the _stack_start and _hart_stack_size
// linker symbols; on TinyGo RISC-V targets Init reads them directly and
// NewLayout is only needed for fabricated or externally-known layouts.
func NewLayout(stackTop, hartStackSize uintptr) Layout {
	return layout.New(stackTop, hartStackSize)
}

// Init captures the stack layout from the linker-provided symbols.
//
// Call once at startup, before the first measurement:
//
//	func main() {
//		if !stackpaint.Init() {
//			// host or non-TinyGo build: supply the layout yourself
//			stackpaint.InitLayout(stackpaint.NewLayout(top, size))
//		}
//		stackpaint.RepaintStack()
//		// ... workload ...
//		worst := stackpaint.StackPainted()
//	}
//
// Init is safe to call multiple times (subsequent calls are no-ops).
// It returns false when the platform exposes no linker symbols.
func Init() bool {
	return internal.Init()
}

// InitLayout installs an explicit layout instead of the linker-provided
// one. Call during startup, before the first measurement, and never
// concurrently with one.
func InitLayout(l Layout) {
	internal.InitLayout(l)
}

// Stack returns the calling hart's stack region.
//
// Note the region is defined in reverse: it runs downward from Start to
// End. End is one past the last byte of this hart's stack; the byte
// below it belongs to the next hart.
func Stack() Region {
	return internal.Stack()
}

// RegionFor returns the given hart's stack region.
//
// Deriving a foreign hart's region is always safe; of the measurements,
// only StackPainted/StackPaintedBinary style scans (via Painted and
// PaintedBinary) may be applied to it. A foreign hart's live stack
// pointer is never readable.
func RegionFor(hart uint) Region {
	return internal.RegionFor(hart)
}

// StackSize returns the number of bytes reserved for the calling hart's
// stack.
//
// Although all harts have equal stack space reserved, their effective
// sizes may differ slightly once the bounds are aligned.
func StackSize() uintptr {
	return internal.StackSize()
}

// CurrentStackInUse returns the number of bytes of the calling hart's
// stack that are currently in use.
func CurrentStackInUse() uintptr {
	return internal.CurrentStackInUse()
}

// CurrentStackFree returns the number of bytes of the calling hart's
// stack that are currently free.
//
// If the stack has overflowed, CurrentStackFree returns 0.
func CurrentStackFree() uintptr {
	return internal.CurrentStackFree()
}

// CurrentStackFraction returns what fraction of the calling hart's
// stack is currently in use.
func CurrentStackFraction() float32 {
	return internal.CurrentStackFraction()
}

// RepaintStack paints the currently unused part of the calling hart's
// stack with the sentinel, starting a new high-water measurement window.
//
// This can take time proportional to the stack size, and an interrupt
// could grow the stack into the paint window while the loop runs. Run it
// with interrupts masked, or early in a shallow frame, if that matters.
func RepaintStack() {
	internal.RepaintStack()
}

// StackPainted returns the worst-case number of bytes used on the
// calling hart's stack since the last RepaintStack, found by a byte
// exact scan of the sentinel.
//
// The result is an estimate, not a guarantee: live content equal to the
// sentinel, or an interrupt during the scan, can skew it. It must not
// carry safety-bearing decisions.
func StackPainted() uintptr {
	return internal.StackPainted()
}

// StackPaintedBinary is the word-granular O(log n) variant of
// StackPainted. It assumes the stack was overwritten consecutively and
// rounds conservatively, so it never reports less than StackPainted.
func StackPaintedBinary() uintptr {
	return internal.StackPaintedBinary()
}

// InUse returns the live bytes in use on r. Valid only when the calling
// hart is executing on r.
func InUse(r Region) uintptr {
	return internal.InUse(r)
}

// Free returns the live bytes still free on r. Valid only when the
// calling hart is executing on r.
func Free(r Region) uintptr {
	return internal.Free(r)
}

// Repaint paints the currently unused part of r. Valid only when the
// calling hart is executing on r; see RepaintStack.
func Repaint(r Region) {
	internal.Repaint(r)
}

// Painted returns the worst-case bytes used on r since its last paint.
// Safe against any hart's region, or post-crash: the scan only reads
// memory and never consults the region owner's registers.
func Painted(r Region) uintptr {
	return internal.Painted(r)
}

// PaintedBinary is the word-granular variant of Painted.
func PaintedBinary(r Region) uintptr {
	return internal.PaintedBinary(r)
}
