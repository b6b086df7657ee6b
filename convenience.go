package nco

import (
	"fmt"
	"math"

	"github.com/tphakala/go-nco/internal/engine"
)

// Common sample rates.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000
)

// NormalizedFrequency converts hz to cycles per sample at sampleRate.
// The result must lie strictly inside (-0.5, 0.5).
func NormalizedFrequency(hz, sampleRate float64) (float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, sampleRate)
	}
	f := hz / sampleRate
	if math.IsNaN(f) || math.Abs(f) >= 0.5 {
		return 0, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, hz, sampleRate)
	}
	return f, nil
}

// Generate is a convenience function for one-shot generation: n samples of
// exp(j*2*pi*f*k), k = 0..n-1, from a fresh direct oscillator. n == 0 yields
// an empty slice.
func Generate(f float64, n int) ([]complex128, error) {
	o, err := engine.NewOscillator[float64](f, engine.Options{})
	if err != nil {
		return nil, err
	}
	return o.Generate(n)
}

// GenerateFloat32 is a convenience function for one-shot planar float32
// generation into caller-supplied buffers of equal length.
func GenerateFloat32(f float64, cosOut, sinOut []float32) error {
	o, err := engine.NewOscillator[float32](f, engine.Options{})
	if err != nil {
		return err
	}
	return o.ProcessPlanar(cosOut, sinOut)
}

// InterleaveIQ converts planar I and Q to [I0, Q0, I1, Q1, ...].
func InterleaveIQ(i, q []float64) []float64 {
	n := min(len(i), len(q))
	result := make([]float64, n*iqChannels)
	for k := range n {
		result[k*iqChannels] = i[k]
		result[k*iqChannels+1] = q[k]
	}
	return result
}

// DeinterleaveIQ converts [I0, Q0, I1, Q1, ...] to planar I and Q.
// A trailing odd value is dropped.
func DeinterleaveIQ(interleaved []float64) (i, q []float64) {
	n := len(interleaved) / iqChannels
	i = make([]float64, n)
	q = make([]float64, n)
	for k := range n {
		i[k] = interleaved[k*iqChannels]
		q[k] = interleaved[k*iqChannels+1]
	}
	return i, q
}

// ToComplex joins planar I and Q into complex samples.
func ToComplex(i, q []float64) []complex128 {
	n := min(len(i), len(q))
	out := make([]complex128, n)
	for k := range n {
		out[k] = complex(i[k], q[k])
	}
	return out
}
