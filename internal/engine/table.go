package engine

import "math"

// sineTable holds one full turn of sin() plus a guard entry so that
// interpolation at the last index never needs to wrap.
var sineTable = buildSineTable()

func buildSineTable() []float64 {
	t := make([]float64, tableSize+1)
	for i := range t {
		t[i] = math.Sin(2 * math.Pi * float64(i) / tableSize)
	}
	return t
}

// tableSin evaluates sin() at an accumulator phase using linear
// interpolation between adjacent table entries.
func tableSin(phase uint64) float64 {
	idx := phase >> tableFracBits
	frac := float64(phase&tableFracMask) * tableFracScale
	a := sineTable[idx]
	b := sineTable[idx+1]
	return a + (b-a)*frac
}

// tableSinCos returns (cos, sin) at an accumulator phase.
func tableSinCos(phase uint64) (cosv, sinv float64) {
	return tableSin(phase + quarterTurn), tableSin(phase)
}
