package engine

import "math"

// Phase accumulator constants
const (
	// phaseBits is the accumulator width. One full turn is 2^phaseBits.
	phaseBits = 64

	// turnScale converts cycles (turns) to accumulator units: 2^64.
	turnScale = 18446744073709551616.0

	// radiansPerUnit converts a signed accumulator value to radians: 2π / 2^64.
	radiansPerUnit = 2 * math.Pi / turnScale

	// quarterTurn is the accumulator offset of π/2, used to derive cosine
	// from the sine table.
	quarterTurn uint64 = 1 << (phaseBits - 2)

	// maxFrequency is the exclusive bound on |f| in cycles per sample (Nyquist).
	maxFrequency = 0.5
)

// Sine table constants
const (
	// tableBits selects the table size: 2^tableBits entries per full turn.
	tableBits = 12

	// tableSize is the number of table entries per turn (plus one guard entry).
	tableSize = 1 << tableBits

	// tableFracBits is the number of accumulator bits below the table index.
	tableFracBits = phaseBits - tableBits

	// tableFracMask extracts the interpolation fraction.
	tableFracMask uint64 = 1<<tableFracBits - 1

	// tableFracScale converts fraction bits to [0, 1).
	tableFracScale = 1.0 / (1 << tableFracBits)
)

// Rotation recurrence constants
const (
	// DefaultResyncInterval is the number of samples between re-synchronizing
	// the rotation phasor with the phase accumulator.
	DefaultResyncInterval = 1024

	// renormThree and renormHalf form the first-order magnitude correction
	// z *= (3 - |z|²) / 2, which converges to |z| = 1.
	renormThree = 3.0
	renormHalf  = 0.5
)
