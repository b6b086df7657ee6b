// Package analysis measures oscillator output: magnitude spectra, spectral
// peaks, pitch error in cents, instantaneous power and spurious-free dynamic
// range.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-nco/internal/simdops"
)

// SpectrumResult holds a centred magnitude spectrum.
//
// Bin j corresponds to frequency Frequency(j). Bins run from the most
// negative frequency up to the most positive one, with DC at N/2 for even N.
type SpectrumResult struct {
	// MagnitudeDB is 20*log10(|X|/sum(window)), so a unit-amplitude complex
	// exponential centred on a bin reads 0 dB.
	MagnitudeDB []float64

	// N is the transform length.
	N int

	// SampleRate in Hz.
	SampleRate float64

	fft *fourier.CmplxFFT
}

// Spectrum computes the centred magnitude spectrum of samples.
//
// window may be nil for a rectangular window. Otherwise it must match the
// input length. The input is not modified.
func Spectrum(samples []complex128, sampleRate float64, window []float64) (*SpectrumResult, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if window != nil && len(window) != n {
		return nil, fmt.Errorf("%w: window=%d samples=%d", ErrWindowLength, len(window), n)
	}

	work := make([]complex128, n)
	norm := float64(n)
	if window == nil {
		copy(work, samples)
	} else {
		for i, s := range samples {
			work[i] = s * complex(window[i], 0)
		}
		norm = simdops.For[float64]().Sum(window)
	}

	fft := fourier.NewCmplxFFT(n)
	coeffs := fft.Coefficients(work, work)

	mag := make([]float64, n)
	for j := range mag {
		mag[j] = toDB(cmplx.Abs(coeffs[fft.ShiftIdx(j)]) / norm)
	}

	return &SpectrumResult{
		MagnitudeDB: mag,
		N:           n,
		SampleRate:  sampleRate,
		fft:         fft,
	}, nil
}

// Frequency returns the centre frequency of bin j in Hz.
func (r *SpectrumResult) Frequency(j int) float64 {
	return r.fft.Freq(r.fft.ShiftIdx(j)) * r.SampleRate
}

// Frequencies returns the centre frequency of every bin in Hz.
func (r *SpectrumResult) Frequencies() []float64 {
	out := make([]float64, r.N)
	for j := range out {
		out[j] = r.Frequency(j)
	}
	return out
}

// Resolution returns the bin spacing in Hz.
func (r *SpectrumResult) Resolution() float64 {
	return r.SampleRate / float64(r.N)
}

// toDB converts a linear amplitude to decibels, floored at minMagnitudeDB.
func toDB(a float64) float64 {
	if a <= 0 {
		return minMagnitudeDB
	}
	return math.Max(dbAmplitudeScale*math.Log10(a), minMagnitudeDB)
}
