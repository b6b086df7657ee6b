// Package mathutil provides special functions used by spectral analysis.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// This function is used in Kaiser window calculation for spectral analysis.
//
// The implementation sums the power series
//
//	I₀(x) = Σ ((x/2)^k / k!)²
//
// which is all-positive, so there is no cancellation and the result is
// accurate to a few ulps for the arguments a window needs (|x| < 50).
func BesselI0(x float64) float64 {
	// I₀ is even
	half := math.Abs(x) / halfDivisor
	sum := 1.0
	term := 1.0
	for k := 1; k <= besselMaxTerms; k++ {
		r := half / float64(k)
		term *= r * r
		sum += term
		if term < sum*besselRelEpsilon {
			break
		}
	}
	return sum
}

// KaiserBeta computes the Kaiser window β parameter for a desired peak
// sidelobe attenuation in decibels, for use as a spectral analysis window.
//
// Formula from Kaiser & Schafer:
//   - For att > 60 dB: β = 0.12438 * (att + 6.3)
//   - For 13.26 dB < att ≤ 60 dB: β = 0.76609 * (att - 13.26)^0.4 + 0.09834 * (att - 13.26)
//   - For att ≤ 13.26 dB: β = 0
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserSidelobeMedium {
		return kaiserBetaHighCoeff * (attenuation + kaiserBetaHighOffset)
	} else if attenuation > kaiserSidelobeMin {
		delta := attenuation - kaiserSidelobeMin
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}

// KaiserMainLobeHalfWidth returns the distance, in DFT bins, from the centre
// of a Kaiser window's main lobe to its first null: sqrt(1 + (β/π)²).
func KaiserMainLobeHalfWidth(beta float64) float64 {
	r := beta / math.Pi
	return math.Sqrt(1 + r*r)
}
