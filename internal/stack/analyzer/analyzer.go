package analyzer

import (
	"github.com/kolkov/stackpaint/internal/stack/hw"
	"github.com/kolkov/stackpaint/internal/stack/mem"
	"github.com/kolkov/stackpaint/internal/stack/region"
)

const (
	// PaintValue is the default sentinel word written by Repaint.
	PaintValue uint32 = 0xCCCC_CCCC

	// PaintByte is the byte the default sentinel repeats.
	PaintByte byte = 0xCC
)

// Analyzer measures usage of caller-supplied stack regions.
//
// The zero value is not usable; construct with New. Sentinel and ReadSP
// are exported so host tests can fabricate both the pattern and the
// stack-pointer reading.
type Analyzer struct {
	// Sentinel is the byte painted over unused stack memory. It should
	// be a value extremely unlikely to occur as live stack content;
	// every non-sentinel byte is treated as disturbed.
	Sentinel byte

	// ReadSP supplies the calling context's stack pointer. Entry points
	// call it themselves so the value reflects the caller, not some
	// earlier frame.
	ReadSP hw.SPFunc
}

// New returns an Analyzer using the platform stack-pointer read and the
// default sentinel.
func New() *Analyzer {
	return &Analyzer{
		Sentinel: PaintByte,
		ReadSP:   hw.CurrentStackPointer,
	}
}

// sp reads the live stack pointer bounded to the region, so a violated
// same-hart precondition degrades to a clamped measurement instead of an
// out-of-region address.
func (a *Analyzer) sp(r region.Region) uintptr {
	return r.Clamp(a.ReadSP())
}

// InUse returns the number of live bytes between the region's initial
// address and the current stack pointer.
//
// Valid only when the calling hart is executing on r. Constant time: one
// register read and a subtraction.
func (a *Analyzer) InUse(r region.Region) uintptr {
	return r.Start - a.sp(r)
}

// Free returns the number of bytes between the current stack pointer and
// the region's limit. For a single observation instant,
// InUse(r) + Free(r) == r.Size().
//
// If the stack has overflowed below the region, Free returns 0.
func (a *Analyzer) Free(r region.Region) uintptr {
	return a.sp(r) - r.End
}

// Fraction returns InUse as a fraction of the region size, in [0, 1].
// Returns 0 for an empty region.
func (a *Analyzer) Fraction(r region.Region) float32 {
	size := r.Size()
	if size == 0 {
		return 0
	}
	return float32(a.InUse(r)) / float32(size)
}

// Repaint writes the sentinel over the currently unused part of the
// region: every byte from r.End up to, and never at or above, the stack
// pointer snapshotted once at entry.
//
// Preconditions (not runtime-checked; see the package hazards): the
// caller executes on r, and nothing pushes the stack pointer below the
// snapshot until Repaint returns. Repainting discards the previous
// high-water history and starts a new measurement window.
func (a *Analyzer) Repaint(r region.Region) {
	window := region.Region{Start: a.sp(r), End: r.End}
	b := mem.Bytes(window)
	for i := range b {
		b[i] = a.Sentinel
	}
}

// Painted scans the region from its limit upward and returns the
// worst-case usage in bytes since the last Repaint: the distance from
// r.Start down to the lowest byte that no longer holds the sentinel.
//
// Returns 0 when the whole region is still intact ("no usage observed
// since paint"). The scan is read-only and idempotent; it may run from
// any hart, or after a crash, any number of times between paints.
func (a *Analyzer) Painted(r region.Region) uintptr {
	for i, v := range mem.Bytes(r) {
		if v != a.Sentinel {
			return r.Size() - uintptr(i)
		}
	}
	return 0
}

// PaintedBinary is the word-granular, O(log n) variant of Painted. It
// binary-searches for the boundary between intact sentinel words and
// disturbed words, assuming the stack was overwritten consecutively from
// the top; an out-of-order write into the painted area below the deepest
// frame is not found.
//
// Rounding is conservative: a word containing any disturbed byte counts
// as fully used, and trailing bytes that do not fill a whole word are
// counted as used, so PaintedBinary(r) >= Painted(r) always.
//
// Falls back to the exact scan when r.End is not word-aligned.
func (a *Analyzer) PaintedBinary(r region.Region) uintptr {
	if r.End%mem.WordSize != 0 {
		return a.Painted(r)
	}

	pattern := a.sentinelWord()
	words := mem.Words(r)

	// Partition point: number of leading intact words.
	lo, hi := 0, len(words)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if words[mid] == pattern {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return r.Size() - uintptr(lo)*mem.WordSize
}

// sentinelWord widens the sentinel byte to the scan word width.
//
//go:nosplit
func (a *Analyzer) sentinelWord() uint32 {
	b := uint32(a.Sentinel)
	return b | b<<8 | b<<16 | b<<24
}
