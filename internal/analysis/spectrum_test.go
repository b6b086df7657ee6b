package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-nco/internal/testutil"
)

const testSampleRate = 48000.0

// tone returns n samples of exp(j*2*pi*f*k/fs).
func tone(f, fs float64, n int) []complex128 {
	out := make([]complex128, n)
	for k := range out {
		turns := math.Mod(f*float64(k)/fs, 1)
		out[k] = cmplx.Exp(complex(0, 2*math.Pi*turns))
	}
	return out
}

func TestSpectrum_BinCentredTone(t *testing.T) {
	const n = 1024
	f := 64 * testSampleRate / n
	sp, err := Spectrum(tone(f, testSampleRate, n), testSampleRate, nil)
	require.NoError(t, err)
	require.Len(t, sp.MagnitudeDB, n)

	testutil.AssertFinite(t, sp.MagnitudeDB)
	testutil.AssertAllInRange(t, sp.MagnitudeDB, minMagnitudeDB, 1e-9)

	peak := n/2 + 64
	assert.InDelta(t, 0, sp.MagnitudeDB[peak], 1e-9)
	assert.InDelta(t, f, sp.Frequency(peak), 1e-9)
	assert.Less(t, sp.MagnitudeDB[peak+1], -200.0)
	assert.Less(t, sp.MagnitudeDB[n/2], -200.0)
}

func TestSpectrum_NegativeFrequency(t *testing.T) {
	const n = 512
	f := -10 * testSampleRate / n
	sp, err := Spectrum(tone(f, testSampleRate, n), testSampleRate, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0, sp.MagnitudeDB[n/2-10], 1e-9)
	assert.InDelta(t, f, sp.Frequency(n/2-10), 1e-9)
}

func TestSpectrum_FrequencyAxis(t *testing.T) {
	sp, err := Spectrum(make([]complex128, 8), 8000, nil)
	require.NoError(t, err)

	want := []float64{-4000, -3000, -2000, -1000, 0, 1000, 2000, 3000}
	assert.InDeltaSlice(t, want, sp.Frequencies(), 1e-9)
	assert.InDelta(t, 1000, sp.Resolution(), 0)

	for _, v := range sp.MagnitudeDB {
		assert.Equal(t, minMagnitudeDB, v, "silence floors at the minimum level")
	}
}

func TestSpectrum_OddLength(t *testing.T) {
	sp, err := Spectrum(make([]complex128, 5), 5, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, -1, 0, 1, 2}, sp.Frequencies(), 1e-12)
}

func TestSpectrum_WindowNormalization(t *testing.T) {
	const n = 2048
	f := 100 * testSampleRate / n
	window, _ := KaiserWindowForSidelobe(n, DefaultSidelobeDB)

	sp, err := Spectrum(tone(f, testSampleRate, n), testSampleRate, window)
	require.NoError(t, err)
	assert.InDelta(t, 0, sp.MagnitudeDB[n/2+100], 1e-9)
}

func TestSpectrum_DoesNotModifyInput(t *testing.T) {
	in := tone(1000, testSampleRate, 256)
	snapshot := append([]complex128(nil), in...)
	_, err := Spectrum(in, testSampleRate, nil)
	require.NoError(t, err)
	assert.Equal(t, snapshot, in)
}

func TestSpectrum_Errors(t *testing.T) {
	_, err := Spectrum(nil, testSampleRate, nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	for _, fs := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = Spectrum(make([]complex128, 4), fs, nil)
		require.ErrorIs(t, err, ErrInvalidSampleRate, "fs=%v", fs)
	}

	_, err = Spectrum(make([]complex128, 4), testSampleRate, make([]float64, 3))
	require.ErrorIs(t, err, ErrWindowLength)
}

// TestSpectrum_SinglePeakAtOneKilohertz runs the frequency procedure on an
// ideal 1 kHz tone: exactly one peak, within half a bin.
func TestSpectrum_SinglePeakAtOneKilohertz(t *testing.T) {
	const f = 1000.0
	n, err := MinPow2Length(testSampleRate, ResolutionForCents(f, 0.5))
	require.NoError(t, err)
	require.Equal(t, 131072, n)

	sp, err := Spectrum(tone(f, testSampleRate, n), testSampleRate, nil)
	require.NoError(t, err)

	peaks := FindPeaks(sp.MagnitudeDB, PeakOptions{Height: Float(-96), Prominence: Float(1)})
	require.Len(t, peaks, 1)

	measured := sp.Frequency(peaks[0].Index)
	testutil.AssertInRange(t, peaks[0].Height, -3.93, 0)
	assert.InDelta(t, f, measured, sp.Resolution()/2)
	assert.Less(t, math.Abs(Cents(measured, f)), 0.5)
}
