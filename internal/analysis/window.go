package analysis

import (
	"math"

	"github.com/tphakala/go-nco/internal/mathutil"
)

// KaiserWindow returns a periodic Kaiser window of the given length.
//
// The periodic form (denominator length rather than length-1) is the one
// suited to DFT analysis. Coefficients peak at 1 in the centre.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	// w[n] = I₀(β·sqrt(1 - ((n - α)/α)²)) / I₀(β), α = N/2
	alpha := float64(length) / 2
	i0Beta := mathutil.BesselI0(beta)
	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1-x*x))) / i0Beta
	}
	return window
}

// KaiserWindowForSidelobe returns a Kaiser window whose peak sidelobe sits
// sidelobeDB below the main lobe, and its main-lobe half width in bins.
func KaiserWindowForSidelobe(length int, sidelobeDB float64) (window []float64, halfWidth float64) {
	beta := mathutil.KaiserBeta(sidelobeDB)
	return KaiserWindow(length, beta), mathutil.KaiserMainLobeHalfWidth(beta)
}
