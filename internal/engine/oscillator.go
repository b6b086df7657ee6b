// Package engine implements the numerically controlled oscillator core.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-nco/internal/simdops"
)

// Errors returned by the oscillator core.
var (
	// ErrInvalidFrequency indicates a frequency at or beyond Nyquist, or not finite.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidCount indicates a negative sample count.
	ErrInvalidCount = errors.New("invalid sample count")

	// ErrLengthMismatch indicates planar output buffers of different lengths.
	ErrLengthMismatch = errors.New("buffer length mismatch")

	// ErrInvalidOption indicates an unknown method, mode or resync interval.
	ErrInvalidOption = errors.New("invalid oscillator option")
)

// Method selects how cosine and sine are evaluated from the phase accumulator.
type Method int

const (
	// MethodDirect evaluates math.Sincos at every sample.
	MethodDirect Method = iota

	// MethodRotation multiplies a unit phasor by a fixed rotation each sample,
	// renormalizing the magnitude every step and re-synchronizing the phase
	// from the accumulator periodically.
	MethodRotation

	// MethodTable interpolates a one-turn sine table.
	MethodTable
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodRotation:
		return "rotation"
	case MethodTable:
		return "table"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// PhaseMode controls phase handling across successive generation calls.
type PhaseMode int

const (
	// PhaseContinuous keeps accumulating phase across calls and across
	// frequency changes.
	PhaseContinuous PhaseMode = iota

	// PhaseReset restarts from the initial phase at the start of every call.
	PhaseReset
)

// String returns the mode name.
func (m PhaseMode) String() string {
	switch m {
	case PhaseContinuous:
		return "continuous"
	case PhaseReset:
		return "reset"
	default:
		return fmt.Sprintf("PhaseMode(%d)", int(m))
	}
}

// Options configures an oscillator. The zero value is a direct, continuous
// phase oscillator starting at phase zero.
type Options struct {
	Method Method
	Mode   PhaseMode

	// InitialPhase in turns. Wrapped into [0, 1).
	InitialPhase float64

	// ResyncInterval is used by MethodRotation. Zero selects DefaultResyncInterval.
	ResyncInterval int
}

// Validate checks the options.
func (o *Options) Validate() error {
	switch o.Method {
	case MethodDirect, MethodRotation, MethodTable:
	default:
		return fmt.Errorf("%w: unknown method %d", ErrInvalidOption, int(o.Method))
	}
	switch o.Mode {
	case PhaseContinuous, PhaseReset:
	default:
		return fmt.Errorf("%w: unknown phase mode %d", ErrInvalidOption, int(o.Mode))
	}
	if o.ResyncInterval < 0 {
		return fmt.Errorf("%w: resync interval must not be negative", ErrInvalidOption)
	}
	if math.IsNaN(o.InitialPhase) || math.IsInf(o.InitialPhase, 0) {
		return fmt.Errorf("%w: initial phase must be finite", ErrInvalidOption)
	}
	return nil
}

// Oscillator generates a unit-amplitude complex exponential exp(j*2*pi*f*n).
//
// Type parameter F is the element type of planar output buffers. Complex
// output is always complex128. All generation methods share the same 64-bit
// phase accumulator, so frequency accuracy does not depend on the method.
//
// An Oscillator is not safe for concurrent use.
type Oscillator[F simdops.Float] struct {
	acc  Accumulator
	freq float64

	method Method
	mode   PhaseMode
	start  uint64

	// MethodRotation state
	z        complex128
	w        complex128
	resync   int
	sinceFix int

	ops *simdops.Ops[F]
}

// NewOscillator creates an oscillator at normalized frequency f (cycles per sample).
func NewOscillator[F simdops.Float](f float64, opts Options) (*Oscillator[F], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	inc, err := FrequencyToIncrement(f)
	if err != nil {
		return nil, err
	}

	resync := opts.ResyncInterval
	if resync == 0 {
		resync = DefaultResyncInterval
	}

	o := &Oscillator[F]{
		freq:   f,
		method: opts.Method,
		mode:   opts.Mode,
		start:  TurnsToPhase(opts.InitialPhase),
		resync: resync,
		ops:    simdops.For[F](),
	}
	o.acc.SetIncrement(inc)
	o.acc.SetPhase(o.start)
	o.w = phasor(inc)
	o.syncPhasor()
	return o, nil
}

// phasor returns exp(j*phase) for an accumulator value.
func phasor(phase uint64) complex128 {
	s, c := math.Sincos(phaseToRadians(phase))
	return complex(c, s)
}

// syncPhasor re-derives the rotation state from the accumulator.
func (o *Oscillator[F]) syncPhasor() {
	o.z = phasor(o.acc.Phase())
	o.sinceFix = 0
}

// SetFrequency changes the frequency. Phase is preserved.
func (o *Oscillator[F]) SetFrequency(f float64) error {
	inc, err := FrequencyToIncrement(f)
	if err != nil {
		return err
	}
	o.freq = f
	o.acc.SetIncrement(inc)
	o.w = phasor(inc)
	o.syncPhasor()
	return nil
}

// Frequency returns the commanded normalized frequency.
func (o *Oscillator[F]) Frequency() float64 { return o.freq }

// EffectiveFrequency returns the frequency actually produced after
// quantization to the accumulator resolution.
func (o *Oscillator[F]) EffectiveFrequency() float64 {
	return IncrementToFrequency(o.acc.Increment())
}

// Method returns the generation method.
func (o *Oscillator[F]) Method() Method { return o.method }

// Mode returns the phase mode.
func (o *Oscillator[F]) Mode() PhaseMode { return o.mode }

// Phase returns the current phase in turns, [0, 1).
func (o *Oscillator[F]) Phase() float64 { return PhaseToTurns(o.acc.Phase()) }

// SetPhase jumps to the given phase in turns.
func (o *Oscillator[F]) SetPhase(turns float64) {
	o.acc.SetPhase(TurnsToPhase(turns))
	o.syncPhasor()
}

// Reset restores the initial phase.
func (o *Oscillator[F]) Reset() {
	o.acc.SetPhase(o.start)
	o.syncPhasor()
}

// Step returns the sample at the current phase and advances by one sample.
func (o *Oscillator[F]) Step() complex128 {
	switch o.method {
	case MethodRotation:
		return o.stepRotation()
	case MethodTable:
		c, s := tableSinCos(o.acc.Advance())
		return complex(c, s)
	default:
		s, c := math.Sincos(phaseToRadians(o.acc.Advance()))
		return complex(c, s)
	}
}

func (o *Oscillator[F]) stepRotation() complex128 {
	out := o.z
	o.acc.Advance()
	o.sinceFix++
	if o.sinceFix >= o.resync {
		o.syncPhasor()
		return out
	}
	z := o.z * o.w
	m := real(z)*real(z) + imag(z)*imag(z)
	o.z = z * complex((renormThree-m)*renormHalf, 0)
	return out
}

// begin applies the phase policy at the start of a generation call.
func (o *Oscillator[F]) begin() {
	if o.mode == PhaseReset {
		o.Reset()
	}
}

// Generate returns n fresh samples. n == 0 yields an empty slice.
func (o *Oscillator[F]) Generate(n int) ([]complex128, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	out := make([]complex128, n)
	o.GenerateInto(out)
	return out, nil
}

// GenerateInto fills dst with len(dst) samples.
func (o *Oscillator[F]) GenerateInto(dst []complex128) {
	o.begin()
	for i := range dst {
		dst[i] = o.Step()
	}
}

// ProcessPlanar fills cos and sin with the in-phase and quadrature components.
func (o *Oscillator[F]) ProcessPlanar(cosOut, sinOut []F) error {
	return PlanarInto(o, cosOut, sinOut)
}

// PlanarInto is ProcessPlanar with an output element type independent of
// the oscillator's own.
func PlanarInto[F, G simdops.Float](o *Oscillator[F], cosOut, sinOut []G) error {
	if len(cosOut) != len(sinOut) {
		return fmt.Errorf("%w: cos=%d sin=%d", ErrLengthMismatch, len(cosOut), len(sinOut))
	}
	o.begin()
	for i := range cosOut {
		z := o.Step()
		cosOut[i] = G(real(z))
		sinOut[i] = G(imag(z))
	}
	return nil
}

// Interleaved returns n samples as I/Q pairs: [i0, q0, i1, q1, ...].
func (o *Oscillator[F]) Interleaved(n int) ([]F, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	cosOut := make([]F, n)
	sinOut := make([]F, n)
	if err := o.ProcessPlanar(cosOut, sinOut); err != nil {
		return nil, err
	}
	out := make([]F, 2*n)
	o.ops.Interleave2(out, cosOut, sinOut)
	return out, nil
}
