// Package harness verifies oscillator output against pitch and amplitude
// tolerances: a spectral peak check over the piano range and a long-run
// power envelope check.
package harness

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-nco/internal/analysis"
)

// Errors reported by the checks. Failures are final; nothing is retried.
var (
	// ErrPeakCount indicates the spectrum did not contain exactly one peak.
	ErrPeakCount = errors.New("unexpected spectral peak count")

	// ErrFrequencyDeviation indicates the measured pitch is outside tolerance.
	ErrFrequencyDeviation = errors.New("frequency deviation")

	// ErrPowerDeviation indicates instantaneous power left 1 ± tolerance.
	ErrPowerDeviation = errors.New("power deviation")

	// ErrInvalidConfig indicates a configuration that cannot be used.
	ErrInvalidConfig = errors.New("invalid harness config")

	// ErrInvalidTone indicates a test tone at or above Nyquist.
	ErrInvalidTone = errors.New("invalid test tone")
)

// Generator is the device under test: tune to a normalized frequency
// (cycles per sample), then produce n complex samples.
type Generator interface {
	SetFrequency(f float64) error
	Generate(n int) ([]complex128, error)
}

// PlanarGenerator produces float32 cosine and sine buffers, the layout
// consumed by real-time audio callbacks.
type PlanarGenerator interface {
	SetFrequency(f float64) error
	GenerateFloat32(cosOut, sinOut []float32) error
}

// Factory returns a fresh generator. Each check gets its own instance.
type Factory func() (Generator, error)

// Measurement records one check.
type Measurement struct {
	Name string

	// Key is the MIDI key of a sweep entry, zero otherwise.
	Key int

	RequestedHz float64
	Normalized  float64

	// N is the sample count analysed.
	N int

	// Frequency check
	MeasuredHz float64
	Cents      float64
	PeakCount  int
	PeakDB     float64

	// Amplitude check
	MinPower  float64
	MaxPower  float64
	MeanPower float64
}

// Harness runs checks with fixed thresholds.
type Harness struct {
	cfg      Config
	observer Observer
}

// New creates a harness. A nil observer selects NopObserver.
func New(cfg Config, observer Observer) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Harness{cfg: cfg, observer: observer}, nil
}

// Config returns the harness thresholds.
func (h *Harness) Config() Config { return h.cfg }

// TransformLength returns the power-of-two sample count that resolves hz to
// within the cents tolerance.
func (h *Harness) TransformLength(hz float64) (int, error) {
	return analysis.MinPow2Length(h.cfg.SampleRate, analysis.ResolutionForCents(hz, h.cfg.CentsTolerance))
}

func (h *Harness) normalize(hz float64) (float64, error) {
	f := hz / h.cfg.SampleRate
	if !(hz > 0) || f >= 0.5 || math.IsInf(hz, 0) {
		return 0, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidTone, hz, h.cfg.SampleRate)
	}
	return f, nil
}

// CheckFrequency tunes gen to hz and verifies the output holds exactly one
// spectral peak within the cents tolerance of hz.
//
// The returned Measurement is filled in as far as the check progressed,
// also on failure.
func (h *Harness) CheckFrequency(gen Generator, hz float64) (Measurement, error) {
	return h.checkFrequency(gen, fmt.Sprintf("tone-%.2fHz", hz), hz)
}

func (h *Harness) checkFrequency(gen Generator, name string, hz float64) (Measurement, error) {
	m := Measurement{Name: name, RequestedHz: hz}

	f, err := h.normalize(hz)
	if err != nil {
		return m, err
	}
	m.Normalized = f

	n, err := h.TransformLength(hz)
	if err != nil {
		return m, err
	}
	m.N = n

	if err := gen.SetFrequency(f); err != nil {
		return m, fmt.Errorf("%s: %w", name, err)
	}
	samples, err := gen.Generate(n)
	if err != nil {
		return m, fmt.Errorf("%s: %w", name, err)
	}

	spectrum, err := analysis.Spectrum(samples, h.cfg.SampleRate, nil)
	if err != nil {
		return m, fmt.Errorf("%s: %w", name, err)
	}
	peaks := analysis.FindPeaks(spectrum.MagnitudeDB, analysis.PeakOptions{
		Height:     analysis.Float(h.cfg.PeakHeightDB),
		Prominence: analysis.Float(h.cfg.PeakProminenceDB),
	})
	m.PeakCount = len(peaks)

	if err := h.observer.ObserveSpectrum(name, spectrum.Frequencies(), spectrum.MagnitudeDB, peaks); err != nil {
		return m, fmt.Errorf("%s: observer: %w", name, err)
	}

	if len(peaks) != 1 {
		return m, fmt.Errorf("%w: %s: found %d peaks, want 1", ErrPeakCount, name, len(peaks))
	}

	m.PeakDB = peaks[0].Height
	m.MeasuredHz = spectrum.Frequency(peaks[0].Index)
	m.Cents = analysis.Cents(m.MeasuredHz, hz)

	if !(math.Abs(m.Cents) < h.cfg.CentsTolerance) {
		return m, fmt.Errorf("%w: %s: measured %.4f Hz, %.4f cents off (limit %.4f)",
			ErrFrequencyDeviation, name, m.MeasuredHz, m.Cents, h.cfg.CentsTolerance)
	}
	return m, nil
}

// CheckAmplitude runs the configured tone for the configured duration and
// verifies every sample has power within tolerance of 1.
func (h *Harness) CheckAmplitude(gen Generator) (Measurement, error) {
	m, err := h.amplitudeTone(gen, "amplitude")
	if err != nil {
		return m, err
	}
	samples, err := gen.Generate(m.N)
	if err != nil {
		return m, fmt.Errorf("%s: %w", m.Name, err)
	}

	stats, err := analysis.PowerStats(samples)
	if err != nil {
		return m, fmt.Errorf("%s: %w", m.Name, err)
	}
	if err := h.observer.ObserveWaveform(m.Name, samples); err != nil {
		return m, fmt.Errorf("%s: observer: %w", m.Name, err)
	}
	return h.checkPower(m, stats)
}

// CheckAmplitudePlanar is CheckAmplitude for float32 planar output.
func (h *Harness) CheckAmplitudePlanar(gen PlanarGenerator) (Measurement, error) {
	m, err := h.amplitudeTone(gen, "amplitude-planar")
	if err != nil {
		return m, err
	}
	cosOut := make([]float32, m.N)
	sinOut := make([]float32, m.N)
	if err := gen.GenerateFloat32(cosOut, sinOut); err != nil {
		return m, fmt.Errorf("%s: %w", m.Name, err)
	}

	stats, err := analysis.PlanarPowerStats(cosOut, sinOut)
	if err != nil {
		return m, fmt.Errorf("%s: %w", m.Name, err)
	}
	samples := make([]complex128, m.N)
	for i := range samples {
		samples[i] = complex(float64(cosOut[i]), float64(sinOut[i]))
	}
	if err := h.observer.ObserveWaveform(m.Name, samples); err != nil {
		return m, fmt.Errorf("%s: observer: %w", m.Name, err)
	}
	return h.checkPower(m, stats)
}

// amplitudeTone tunes gen to the amplitude tone.
func (h *Harness) amplitudeTone(gen interface{ SetFrequency(float64) error }, prefix string) (Measurement, error) {
	hz := h.cfg.AmplitudeToneHz
	m := Measurement{
		Name:        fmt.Sprintf("%s-%.0fHz", prefix, hz),
		RequestedHz: hz,
		N:           h.cfg.AmplitudeSamples(),
	}

	f, err := h.normalize(hz)
	if err != nil {
		return m, err
	}
	m.Normalized = f

	if err := gen.SetFrequency(f); err != nil {
		return m, fmt.Errorf("%s: %w", m.Name, err)
	}
	return m, nil
}

func (h *Harness) checkPower(m Measurement, stats analysis.PowerSummary) (Measurement, error) {
	m.MinPower, m.MaxPower, m.MeanPower = stats.Min, stats.Max, stats.Mean

	tol := h.cfg.PowerTolerance
	if !(math.Abs(stats.Min-1) < tol) || !(math.Abs(stats.Max-1) < tol) {
		return m, fmt.Errorf("%w: %s: power in [%.6f, %.6f], limit 1±%g",
			ErrPowerDeviation, m.Name, stats.Min, stats.Max, tol)
	}
	return m, nil
}
