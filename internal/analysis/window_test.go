package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-nco/internal/mathutil"
	"github.com/tphakala/go-nco/internal/testutil"
)

func TestKaiserWindow_Shape(t *testing.T) {
	const n = 256
	w := KaiserWindow(n, 8)
	assert.Len(t, w, n)

	assert.InDelta(t, 1, w[n/2], 1e-15)
	assert.InDelta(t, 1/mathutil.BesselI0(8), w[0], 1e-15)
	testutil.AssertAllInRange(t, w, 0, 1)
	testutil.AssertMonotonic(t, w[:n/2+1])

	testutil.AssertMaxAt(t, w, n/2)
	testutil.AssertFinite(t, w)

	// Periodic: w[k] == w[n-k].
	testutil.AssertSymmetric(t, w[1:], 1e-15)
}

func TestKaiserWindow_ZeroBetaIsRectangular(t *testing.T) {
	for _, v := range KaiserWindow(16, 0) {
		assert.InDelta(t, 1, v, 0)
	}
}

func TestKaiserWindow_Degenerate(t *testing.T) {
	assert.Empty(t, KaiserWindow(0, 5))
	assert.Equal(t, []float64{1}, KaiserWindow(1, 5))
}

func TestKaiserWindowForSidelobe(t *testing.T) {
	w, half := KaiserWindowForSidelobe(64, DefaultSidelobeDB)
	assert.Len(t, w, 64)
	assert.InDelta(t, 5.8779, half, 1e-3)
}
