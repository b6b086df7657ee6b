package nco

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-nco/internal/engine"
)

// Method selects how samples are computed from the phase accumulator.
type Method = engine.Method

// Generation methods.
const (
	MethodDirect   = engine.MethodDirect
	MethodRotation = engine.MethodRotation
	MethodTable    = engine.MethodTable
)

// PhaseMode controls phase across successive generation calls.
type PhaseMode = engine.PhaseMode

// Phase modes.
const (
	PhaseContinuous = engine.PhaseContinuous
	PhaseReset      = engine.PhaseReset
)

// Common errors returned by the oscillator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid oscillator configuration")

	// ErrInvalidFrequency indicates a frequency at or beyond Nyquist, or not finite.
	ErrInvalidFrequency = engine.ErrInvalidFrequency

	// ErrInvalidCount indicates a negative sample count.
	ErrInvalidCount = engine.ErrInvalidCount

	// ErrLengthMismatch indicates planar buffers of different lengths.
	ErrLengthMismatch = engine.ErrLengthMismatch

	// ErrInvalidNote indicates a MIDI note outside 0..127.
	ErrInvalidNote = errors.New("invalid MIDI note")
)

// Config holds oscillator configuration. The zero value is a direct,
// phase-continuous oscillator at DefaultSampleRate.
type Config struct {
	// SampleRate in Hz, used only to convert Hz to normalized frequency.
	// Zero selects DefaultSampleRate.
	SampleRate float64

	Method Method
	Mode   PhaseMode

	// InitialPhase in turns. Reset and PhaseReset return here.
	InitialPhase float64

	// ResyncInterval is the number of samples between re-synchronizations
	// of MethodRotation. Zero selects the default.
	ResyncInterval int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate < 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive and finite", ErrInvalidConfig)
	}
	opts := c.options()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) sampleRate() float64 {
	if c.SampleRate == 0 {
		return DefaultSampleRate
	}
	return c.SampleRate
}

func (c *Config) options() engine.Options {
	return engine.Options{
		Method:         c.Method,
		Mode:           c.Mode,
		InitialPhase:   c.InitialPhase,
		ResyncInterval: c.ResyncInterval,
	}
}

// Oscillator generates a complex exponential tuned in Hz or by MIDI note.
// It starts at 0 Hz.
type Oscillator struct {
	core       *engine.Oscillator[float64]
	sampleRate float64
}

// New creates an oscillator.
func New(config Config) (*Oscillator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	core, err := engine.NewOscillator[float64](0, config.options())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Oscillator{core: core, sampleRate: config.sampleRate()}, nil
}

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// SetFrequency tunes to a normalized frequency in cycles per sample.
func (o *Oscillator) SetFrequency(f float64) error { return o.core.SetFrequency(f) }

// Tune tunes to hz. Negative frequencies rotate clockwise.
func (o *Oscillator) Tune(hz float64) error {
	f, err := NormalizedFrequency(hz, o.sampleRate)
	if err != nil {
		return err
	}
	return o.core.SetFrequency(f)
}

// TuneNote tunes to a MIDI note.
func (o *Oscillator) TuneNote(note int) error {
	hz, err := NoteFrequency(note)
	if err != nil {
		return err
	}
	return o.Tune(hz)
}

// Frequency returns the commanded frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.core.Frequency() * o.sampleRate }

// NormalizedFrequency returns the commanded frequency in cycles per sample.
func (o *Oscillator) NormalizedFrequency() float64 { return o.core.Frequency() }

// Method returns the generation method.
func (o *Oscillator) Method() Method { return o.core.Method() }

// Mode returns the phase mode.
func (o *Oscillator) Mode() PhaseMode { return o.core.Mode() }

// Phase returns the current phase in turns, [0, 1).
func (o *Oscillator) Phase() float64 { return o.core.Phase() }

// SetPhase jumps to a phase in turns.
func (o *Oscillator) SetPhase(turns float64) { o.core.SetPhase(turns) }

// Reset returns to the initial phase.
func (o *Oscillator) Reset() { o.core.Reset() }

// Step returns one sample and advances.
func (o *Oscillator) Step() complex128 { return o.core.Step() }

// Generate returns n samples, real part cosine and imaginary part sine.
func (o *Oscillator) Generate(n int) ([]complex128, error) { return o.core.Generate(n) }

// GeneratePlanar fills cos and sin, which must have equal length.
func (o *Oscillator) GeneratePlanar(cosOut, sinOut []float64) error {
	return o.core.ProcessPlanar(cosOut, sinOut)
}

// GenerateFloat32 is like GeneratePlanar but for float32 buffers.
func (o *Oscillator) GenerateFloat32(cosOut, sinOut []float32) error {
	return engine.PlanarInto(o.core, cosOut, sinOut)
}

// Interleaved returns n samples as [i0, q0, i1, q1, ...].
func (o *Oscillator) Interleaved(n int) ([]float64, error) { return o.core.Interleaved(n) }
