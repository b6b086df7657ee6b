package harness

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-nco/internal/analysis"
	"github.com/tphakala/go-nco/internal/engine"
)

var allMethods = []engine.Method{engine.MethodDirect, engine.MethodRotation, engine.MethodTable}

// fakeGenerator produces tones with configurable defects.
type fakeGenerator struct {
	f         float64
	detune    float64 // frequency multiplier
	amplitude float64
	extra     float64 // second tone at extra*f, zero disables
	err       error
}

func (g *fakeGenerator) SetFrequency(f float64) error {
	g.f = f
	return g.err
}

func (g *fakeGenerator) Generate(n int) ([]complex128, error) {
	out := make([]complex128, n)
	f := g.f * g.detune
	for k := range out {
		out[k] = cmplx.Rect(g.amplitude, 2*math.Pi*math.Mod(f*float64(k), 1))
		if g.extra != 0 {
			out[k] += cmplx.Rect(g.amplitude, 2*math.Pi*math.Mod(g.extra*g.f*float64(k), 1))
		}
	}
	return out, nil
}

func (g *fakeGenerator) GenerateFloat32(cosOut, sinOut []float32) error {
	out, err := g.Generate(len(cosOut))
	if err != nil {
		return err
	}
	for k, z := range out {
		cosOut[k], sinOut[k] = float32(real(z)), float32(imag(z))
	}
	return nil
}

func newFake() *fakeGenerator { return &fakeGenerator{detune: 1, amplitude: 1} }

// recordingObserver keeps everything it is shown.
type recordingObserver struct {
	mu        sync.Mutex
	spectra   map[string][]analysis.Peak
	waveforms map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{spectra: map[string][]analysis.Peak{}, waveforms: map[string]int{}}
}

func (r *recordingObserver) ObserveSpectrum(name string, freqs, magDB []float64, peaks []analysis.Peak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(freqs) != len(magDB) {
		return errors.New("axis length mismatch")
	}
	r.spectra[name] = peaks
	return nil
}

func (r *recordingObserver) ObserveWaveform(name string, samples []complex128) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waveforms[name] = len(samples)
	return nil
}

func newTestHarness(t *testing.T, obs Observer) *Harness {
	t.Helper()
	h, err := New(DefaultConfig(), obs)
	require.NoError(t, err)
	return h
}

func newOscillator(t *testing.T, m engine.Method) *engine.Oscillator[float64] {
	t.Helper()
	o, err := engine.NewOscillator[float64](0, engine.Options{Method: m})
	require.NoError(t, err)
	return o
}

// float32Oscillator drives an engine oscillator through the planar float32 API.
type float32Oscillator struct {
	*engine.Oscillator[float32]
}

func (o float32Oscillator) GenerateFloat32(cosOut, sinOut []float32) error {
	return o.ProcessPlanar(cosOut, sinOut)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = -1
	_, err := New(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCheckFrequency_OneKilohertz(t *testing.T) {
	obs := newRecordingObserver()
	h := newTestHarness(t, obs)

	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			res, err := h.CheckFrequency(newOscillator(t, m), 1000)
			require.NoError(t, err)

			assert.Equal(t, 131072, res.N)
			assert.InDelta(t, 1000.0/48000, res.Normalized, 1e-15)
			assert.Equal(t, 1, res.PeakCount)
			assert.InDelta(t, 1000, res.MeasuredHz, 48000.0/131072/2)
			assert.Less(t, math.Abs(res.Cents), 0.5)
			assert.Greater(t, res.PeakDB, -4.0, "rectangular scalloping is under 4 dB")
		})
	}
	assert.Len(t, obs.spectra[`tone-1000.00Hz`], 1)
}

// TestCheckFrequency_OneSecondCapture runs the 1 kHz tone through a one
// second capture, where it lands exactly on a bin.
func TestCheckFrequency_OneSecondCapture(t *testing.T) {
	for _, m := range allMethods {
		o := newOscillator(t, m)
		require.NoError(t, o.SetFrequency(1000.0/48000))
		samples, err := o.Generate(48000)
		require.NoError(t, err)

		spectrum, err := analysis.Spectrum(samples, 48000, nil)
		require.NoError(t, err)
		peaks := analysis.FindPeaks(spectrum.MagnitudeDB, analysis.PeakOptions{
			Height:     analysis.Float(DefaultPeakHeightDB),
			Prominence: analysis.Float(DefaultPeakProminenceDB),
		})
		require.Len(t, peaks, 1, "method %s", m)
		assert.InDelta(t, 1000, spectrum.Frequency(peaks[0].Index), 0.29)
	}
}

func TestCheckFrequency_TwoTones(t *testing.T) {
	h := newTestHarness(t, nil)
	g := newFake()
	g.extra = 3

	res, err := h.CheckFrequency(g, 1000)
	require.ErrorIs(t, err, ErrPeakCount)
	assert.GreaterOrEqual(t, res.PeakCount, 2)
}

func TestCheckFrequency_Silence(t *testing.T) {
	h := newTestHarness(t, nil)
	g := newFake()
	g.amplitude = 0

	res, err := h.CheckFrequency(g, 440)
	require.ErrorIs(t, err, ErrPeakCount)
	assert.Equal(t, 0, res.PeakCount)
}

func TestCheckFrequency_Detuned(t *testing.T) {
	h := newTestHarness(t, nil)
	g := newFake()
	g.detune = math.Exp2(5.0 / 1200) // five cents sharp

	res, err := h.CheckFrequency(g, 1000)
	require.ErrorIs(t, err, ErrFrequencyDeviation)
	assert.InDelta(t, 5, res.Cents, 0.5)
}

func TestCheckFrequency_GeneratorError(t *testing.T) {
	h := newTestHarness(t, nil)
	g := newFake()
	g.err = engine.ErrInvalidFrequency

	_, err := h.CheckFrequency(g, 1000)
	require.ErrorIs(t, err, engine.ErrInvalidFrequency)
}

func TestCheckFrequency_InvalidTone(t *testing.T) {
	h := newTestHarness(t, nil)
	for _, hz := range []float64{0, -440, 24000, 30000, math.NaN(), math.Inf(1)} {
		_, err := h.CheckFrequency(newFake(), hz)
		require.ErrorIs(t, err, ErrInvalidTone, "hz=%v", hz)
	}
}

func TestCheckAmplitude(t *testing.T) {
	cfg := DefaultConfig()
	if testing.Short() {
		cfg.AmplitudeDuration = time.Second
	}
	obs := newRecordingObserver()
	h, err := New(cfg, obs)
	require.NoError(t, err)

	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			res, err := h.CheckAmplitude(newOscillator(t, m))
			require.NoError(t, err)

			assert.Equal(t, cfg.AmplitudeSamples(), res.N)
			assert.InDelta(t, 1, res.MinPower, cfg.PowerTolerance)
			assert.InDelta(t, 1, res.MaxPower, cfg.PowerTolerance)
			assert.InDelta(t, 1, res.MeanPower, cfg.PowerTolerance)
		})
	}
	assert.Equal(t, cfg.AmplitudeSamples(), obs.waveforms["amplitude-1000Hz"])
}

func TestCheckAmplitude_Deviation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AmplitudeDuration = 100 * time.Millisecond
	h, err := New(cfg, nil)
	require.NoError(t, err)

	g := newFake()
	g.amplitude = 1.001 // power 1.002

	res, err := h.CheckAmplitude(g)
	require.ErrorIs(t, err, ErrPowerDeviation)
	assert.InDelta(t, 1.002001, res.MaxPower, 1e-9)
}

func TestCheckAmplitudePlanar(t *testing.T) {
	cfg := DefaultConfig()
	if testing.Short() {
		cfg.AmplitudeDuration = time.Second
	}
	obs := newRecordingObserver()
	h, err := New(cfg, obs)
	require.NoError(t, err)

	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			o, err := engine.NewOscillator[float32](0, engine.Options{Method: m})
			require.NoError(t, err)

			res, err := h.CheckAmplitudePlanar(float32Oscillator{o})
			require.NoError(t, err)
			assert.Equal(t, "amplitude-planar-1000Hz", res.Name)
			assert.Equal(t, cfg.AmplitudeSamples(), res.N)
			assert.InDelta(t, 1, res.MinPower, cfg.PowerTolerance)
			assert.InDelta(t, 1, res.MaxPower, cfg.PowerTolerance)
			assert.InDelta(t, 1, res.MeanPower, cfg.PowerTolerance)
		})
	}
	assert.Equal(t, cfg.AmplitudeSamples(), obs.waveforms["amplitude-planar-1000Hz"])
}

func TestCheckAmplitudePlanar_Deviation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AmplitudeDuration = 100 * time.Millisecond
	h, err := New(cfg, nil)
	require.NoError(t, err)

	g := newFake()
	g.amplitude = 0.998

	res, err := h.CheckAmplitudePlanar(g)
	require.ErrorIs(t, err, ErrPowerDeviation)
	assert.InDelta(t, 0.996004, res.MinPower, 1e-6)
}

func TestCheckAmplitudePlanar_GeneratorError(t *testing.T) {
	g := newFake()
	g.err = errors.New("boom")
	_, err := newTestHarness(t, nil).CheckAmplitudePlanar(g)
	require.ErrorContains(t, err, "boom")
}
