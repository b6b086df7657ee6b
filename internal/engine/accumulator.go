package engine

import (
	"fmt"
	"math"
)

// Accumulator is a fixed-point phase accumulator. One full turn maps to the
// full uint64 range, so wraparound is plain integer overflow and never loses
// precision no matter how long the oscillator runs.
type Accumulator struct {
	phase     uint64
	increment uint64
}

// FrequencyToIncrement converts a normalized frequency in cycles per sample
// to a two's complement accumulator increment. It rejects NaN, Inf and
// frequencies at or beyond Nyquist.
func FrequencyToIncrement(f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFrequency, f)
	}
	if math.Abs(f) >= maxFrequency {
		return 0, fmt.Errorf("%w: |%g| must be below %g cycles/sample", ErrInvalidFrequency, f, maxFrequency)
	}
	// |f| < 0.5 keeps f*2^64 strictly inside the int64 range.
	return uint64(int64(math.Round(f * turnScale))), nil
}

// IncrementToFrequency is the inverse of FrequencyToIncrement.
func IncrementToFrequency(inc uint64) float64 {
	return float64(int64(inc)) / turnScale
}

// TurnsToPhase converts a phase in turns to accumulator units. Any real
// value is accepted and wrapped into [0, 1).
func TurnsToPhase(turns float64) uint64 {
	if math.IsNaN(turns) || math.IsInf(turns, 0) {
		return 0
	}
	frac := turns - math.Floor(turns)
	if frac >= 1 {
		// tiny negative turns round up to exactly one full turn
		frac = 0
	}
	return uint64(frac * turnScale)
}

// PhaseToTurns converts accumulator units to turns in [0, 1).
func PhaseToTurns(phase uint64) float64 {
	t := float64(phase) / turnScale
	if t >= 1 {
		// float64 rounding of values just below 2^64
		return 0
	}
	return t
}

// phaseToRadians maps the accumulator onto (-π, π]. Centering on zero keeps
// the full float64 mantissa for the argument of sin/cos.
func phaseToRadians(phase uint64) float64 {
	return float64(int64(phase)) * radiansPerUnit
}

// Advance returns the current phase and steps the accumulator by one sample.
func (a *Accumulator) Advance() uint64 {
	p := a.phase
	a.phase += a.increment
	return p
}

// Phase returns the current accumulator value.
func (a *Accumulator) Phase() uint64 { return a.phase }

// SetPhase sets the accumulator value.
func (a *Accumulator) SetPhase(p uint64) { a.phase = p }

// Increment returns the per-sample increment.
func (a *Accumulator) Increment() uint64 { return a.increment }

// SetIncrement sets the per-sample increment without touching the phase.
func (a *Accumulator) SetIncrement(inc uint64) { a.increment = inc }
