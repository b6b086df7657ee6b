package analysis

// Pitch constants
const (
	// centsPerOctave converts log2 frequency ratios to cents.
	centsPerOctave = 1200.0
)

// Spectrum constants
const (
	// dbAmplitudeScale converts amplitude ratios to decibels (20*log10).
	dbAmplitudeScale = 20.0

	// minMagnitudeDB floors log-magnitudes so exact zeros do not become -Inf.
	minMagnitudeDB = -400.0
)

// SFDR constants
const (
	// DefaultSidelobeDB is the Kaiser window sidelobe target for SFDR
	// measurement. It sets the measurement floor.
	DefaultSidelobeDB = 140.0

	// mainLobeGuardBins widens the excluded region around the carrier beyond
	// the first null of the window.
	mainLobeGuardBins = 2
)
