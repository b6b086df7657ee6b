package mathutil

// Bessel series constants
const (
	// besselMaxTerms bounds the I₀ power series. The series for x ≤ 50
	// converges well inside this many terms.
	besselMaxTerms = 500

	// besselRelEpsilon stops the series once a term no longer changes the sum.
	besselRelEpsilon = 1e-17
)

// Kaiser window constants for spectral analysis.
// From Kaiser & Schafer, "On the use of the I0-sinh window for spectrum
// analysis" (1980): β as a function of the desired peak sidelobe level.
const (
	kaiserSidelobeMin    = 13.26 // Below this, the rectangular window suffices (β = 0)
	kaiserSidelobeMedium = 60.0  // Threshold between the two empirical fits (dB)

	kaiserBetaMediumCoeff1 = 0.76609 // Primary coefficient for medium sidelobe level
	kaiserBetaMediumPower  = 0.4     // Power for medium sidelobe formula
	kaiserBetaMediumCoeff2 = 0.09834 // Secondary coefficient for medium sidelobe level

	kaiserBetaHighCoeff  = 0.12438 // Coefficient for high sidelobe level
	kaiserBetaHighOffset = 6.3     // Offset for high sidelobe level
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
