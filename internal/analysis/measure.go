package analysis

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-nco/internal/simdops"
)

// Cents returns the pitch difference from reference to measured,
// 1200*log2(measured/reference). Positive when measured is sharp.
func Cents(measured, reference float64) float64 {
	return centsPerOctave * math.Log2(measured/reference)
}

// CentsBounds returns the frequencies cents below and above f.
func CentsBounds(f, cents float64) (lower, upper float64) {
	r := math.Exp2(cents / centsPerOctave)
	return f / r, f * r
}

// ResolutionForCents returns the width of the band f ± cents in Hz. A
// spectrum whose bin spacing is no wider than this can tell f apart from a
// tone cents away.
func ResolutionForCents(f, cents float64) float64 {
	lo, hi := CentsBounds(f, cents)
	return hi - lo
}

// MinPow2Length returns the smallest power-of-two transform length whose bin
// spacing sampleRate/N does not exceed resolution.
func MinPow2Length(sampleRate, resolution float64) (int, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidResolution, resolution)
	}
	need := math.Ceil(sampleRate / resolution)
	if need > float64(1<<(bits.UintSize-2)) {
		return 0, fmt.Errorf("%w: %v Hz needs too long a transform", ErrInvalidResolution, resolution)
	}
	n := uint(need)
	if n <= 1 {
		return 1, nil
	}
	return 1 << bits.Len(n-1), nil
}

// Power returns |z|² for every sample.
func Power(samples []complex128) []float64 {
	out := make([]float64, len(samples))
	for i, z := range samples {
		out[i] = real(z)*real(z) + imag(z)*imag(z)
	}
	return out
}

// PowerSummary describes the instantaneous power envelope of a signal.
type PowerSummary struct {
	Min  float64
	Max  float64
	Mean float64
}

// PowerStats summarizes the instantaneous power of samples.
func PowerStats(samples []complex128) (PowerSummary, error) {
	if len(samples) == 0 {
		return PowerSummary{}, ErrEmptyInput
	}
	p := Power(samples)
	return PowerSummary{
		Min:  floats.Min(p),
		Max:  floats.Max(p),
		Mean: simdops.For[float64]().Sum(p) / float64(len(p)),
	}, nil
}

// PlanarPowerStats summarizes the power of planar I/Q buffers.
func PlanarPowerStats[F simdops.Float](cosIn, sinIn []F) (PowerSummary, error) {
	if len(cosIn) == 0 {
		return PowerSummary{}, ErrEmptyInput
	}
	if len(cosIn) != len(sinIn) {
		return PowerSummary{}, fmt.Errorf("%w: cos=%d sin=%d", ErrWindowLength, len(cosIn), len(sinIn))
	}

	s := PowerSummary{Min: math.Inf(1), Max: math.Inf(-1)}
	for i := range cosIn {
		c, q := float64(cosIn[i]), float64(sinIn[i])
		p := c*c + q*q
		s.Min = math.Min(s.Min, p)
		s.Max = math.Max(s.Max, p)
	}
	ops := simdops.For[F]()
	energy := float64(ops.DotProductUnsafe(cosIn, cosIn)) + float64(ops.DotProductUnsafe(sinIn, sinIn))
	s.Mean = energy / float64(len(cosIn))
	return s, nil
}
