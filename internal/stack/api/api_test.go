package api

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/stackpaint/internal/stack/layout"
	"github.com/kolkov/stackpaint/internal/stack/mem"
	"github.com/kolkov/stackpaint/internal/stack/region"
)

// fakeHart installs a fabricated two-hart layout over a heap buffer and
// points the package analyzer's register read at a movable cursor inside
// hart 0's slice. Cleanup restores the package state.
type fakeHart struct {
	buf []byte
	r   region.Region
	sp  uintptr
}

func installFakeHart(t *testing.T, hartSize uintptr) *fakeHart {
	t.Helper()

	const harts = 2
	buf := make([]byte, hartSize*harts+region.DefaultAlignment)
	base := uintptr(unsafe.Pointer(&buf[0]))
	aligned := (base + region.DefaultAlignment - 1) &^ (region.DefaultAlignment - 1)

	prevLayout := lay
	prevReadSP := an.ReadSP

	InitLayout(layout.New(aligned+hartSize*harts, hartSize))

	f := &fakeHart{buf: buf, r: RegionFor(0)}
	f.sp = f.r.Start
	an.ReadSP = func() uintptr { return f.sp }

	t.Cleanup(func() {
		lay = prevLayout
		an.ReadSP = prevReadSP
		runtime.KeepAlive(buf)
	})
	return f
}

// use simulates an excursion of n bytes: scribble, then unwind.
func (f *fakeHart) use(n uintptr) {
	view := mem.Bytes(f.r)
	spOff := f.sp - f.r.End
	for i := spOff - n; i < spOff; i++ {
		view[i] = 0x5A
	}
}

func TestInitOnHost(t *testing.T) {
	InitLayout(layout.Layout{})

	// On platforms without linker symbols Init cannot produce a usable
	// layout; explicit configuration is required.
	if Init() {
		t.Skip("platform exposes linker symbols")
	}
	assert.False(t, Layout().Valid())
}

func TestStackFollowsLayout(t *testing.T) {
	f := installFakeHart(t, 4096)

	// The current hart reads as 0 on the host, so Stack() is the top slice.
	assert.Equal(t, f.r, Stack())
	assert.Equal(t, uintptr(4096), StackSize())

	// Hart 1 sits directly below.
	assert.Equal(t, f.r.End, RegionFor(1).Start)
}

func TestLiveEntryPoints(t *testing.T) {
	f := installFakeHart(t, 4096)

	f.sp = f.r.Start - 512

	assert.Equal(t, uintptr(512), CurrentStackInUse())
	assert.Equal(t, uintptr(4096-512), CurrentStackFree())
	assert.InDelta(t, 0.125, CurrentStackFraction(), 1e-6)
	assert.Equal(t, StackSize(), CurrentStackInUse()+CurrentStackFree())
}

func TestPaintMeasureCycle(t *testing.T) {
	f := installFakeHart(t, 4096)

	RepaintStack()
	require.Equal(t, uintptr(0), StackPainted())

	f.use(640)
	assert.Equal(t, uintptr(640), StackPainted())
	assert.GreaterOrEqual(t, StackPaintedBinary(), StackPainted())

	// Explicit-region variants see the same state.
	assert.Equal(t, uintptr(640), Painted(f.r))
	assert.Equal(t, uintptr(640), Painted(RegionFor(0)))

	RepaintStack()
	assert.Equal(t, uintptr(0), StackPainted())
}

func TestExplicitRegionVariants(t *testing.T) {
	f := installFakeHart(t, 2048)

	f.sp = f.r.Start - 100
	assert.Equal(t, uintptr(100), InUse(f.r))
	assert.Equal(t, uintptr(2048-100), Free(f.r))

	f.sp = f.r.Start
	Repaint(f.r)
	f.use(256)
	assert.Equal(t, uintptr(256), Painted(f.r))
	assert.Equal(t, uintptr(256), PaintedBinary(f.r))
}

func TestUnconfiguredMeasuresZero(t *testing.T) {
	InitLayout(layout.Layout{})

	// A zero layout yields empty regions: every measurement reads zero
	// and nothing touches memory.
	assert.Equal(t, uintptr(0), StackSize())
	assert.Equal(t, uintptr(0), CurrentStackInUse())
	assert.Equal(t, uintptr(0), StackPainted())
	assert.NotPanics(t, RepaintStack)
}
