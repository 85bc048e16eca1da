// Package api wires the locator and the analyzer to the platform
// defaults and exposes the implicit current-hart entry points the public
// stackpaint package wraps.
//
// Configuration happens once at startup: Init captures the layout the
// linker script advertises, InitLayout substitutes an explicit one (the
// only option on hosts, and the substitution point for tests). The
// measurement entry points read configuration without locks; configure
// before the first measurement and never concurrently with one, the
// same single-writer discipline the rest of the library assumes.
package api

import (
	"sync"

	"github.com/kolkov/stackpaint/internal/stack/analyzer"
	"github.com/kolkov/stackpaint/internal/stack/hw"
	"github.com/kolkov/stackpaint/internal/stack/layout"
	"github.com/kolkov/stackpaint/internal/stack/region"
)

var (
	// lay is the configured stack layout. A zero layout derives empty
	// regions, so measurements before configuration read as zero rather
	// than touching unowned memory.
	lay layout.Layout

	// an performs all measurements with the platform register read and
	// the default sentinel.
	an = analyzer.New()

	// initOnce guards the one-time linker-symbol capture.
	initOnce sync.Once
)

// Init captures the stack layout from the linker-provided symbols.
// Idempotent; subsequent calls are no-ops. Returns false when the
// platform exposes no symbols (hosts, non-TinyGo builds), in which case
// InitLayout must be used instead.
func Init() bool {
	initOnce.Do(func() {
		if l, ok := hw.LinkerLayout(); ok {
			lay = l
		}
	})
	return lay.Valid()
}

// InitLayout installs an explicit layout, overriding anything captured
// by Init. For host builds, diagnostics against fabricated ranges, and
// targets whose layout is known by other means.
func InitLayout(l layout.Layout) {
	lay = l
}

// Layout returns the configured layout.
func Layout() layout.Layout {
	return lay
}

// Stack returns the calling hart's stack region.
func Stack() region.Region {
	return lay.Region(hw.CurrentHartID())
}

// RegionFor returns hart's stack region. Any hart's region may be
// derived from any hart; only the painted scans are safe against a
// foreign region, never the live measurements.
func RegionFor(hart uint) region.Region {
	return lay.Region(hart)
}

// StackSize returns the usable size of the calling hart's stack.
//
// Although every hart has the same reserved size, effective sizes can
// differ slightly once the bounds are aligned inward.
func StackSize() uintptr {
	return Stack().Size()
}

// CurrentStackInUse returns the live bytes in use on the calling hart's
// stack.
func CurrentStackInUse() uintptr {
	return an.InUse(Stack())
}

// CurrentStackFree returns the live bytes still free on the calling
// hart's stack. Returns 0 if the stack has overflowed.
func CurrentStackFree() uintptr {
	return an.Free(Stack())
}

// CurrentStackFraction returns the in-use fraction of the calling
// hart's stack.
func CurrentStackFraction() float32 {
	return an.Fraction(Stack())
}

// RepaintStack paints the unused part of the calling hart's stack,
// starting a new high-water measurement window. See the analyzer
// package for the preconditions on the one write operation.
func RepaintStack() {
	an.Repaint(Stack())
}

// StackPainted returns the worst-case bytes used on the calling hart's
// stack since the last RepaintStack.
func StackPainted() uintptr {
	return an.Painted(Stack())
}

// StackPaintedBinary is the word-granular, O(log n) variant of
// StackPainted; it never reports less than StackPainted would.
func StackPaintedBinary() uintptr {
	return an.PaintedBinary(Stack())
}

// Explicit-region variants. The live measurements and the repaint are
// only valid on the calling hart's own region; the painted scans accept
// any hart's region.

// InUse returns the live bytes in use on r.
func InUse(r region.Region) uintptr {
	return an.InUse(r)
}

// Free returns the live bytes still free on r.
func Free(r region.Region) uintptr {
	return an.Free(r)
}

// Repaint paints the unused part of r.
func Repaint(r region.Region) {
	an.Repaint(r)
}

// Painted returns the worst-case bytes used on r since the last paint.
func Painted(r region.Region) uintptr {
	return an.Painted(r)
}

// PaintedBinary is the word-granular variant of Painted.
func PaintedBinary(r region.Region) uintptr {
	return an.PaintedBinary(r)
}
