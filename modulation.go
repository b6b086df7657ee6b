package nco

import (
	"fmt"
	"math"

	"github.com/tphakala/go-nco/internal/engine"
)

// Modulator applies tremolo: a low-frequency oscillator scales the amplitude
// of each sample between 1-depth and 1. It starts at full amplitude and
// advances one LFO sample per modulated sample.
type Modulator struct {
	lfo        *engine.Oscillator[float64]
	sampleRate float64
	depth      float64
}

// NewModulator creates a modulator at rate 0 Hz and depth 0, which leaves
// samples unchanged. sampleRate 0 selects DefaultSampleRate.
func NewModulator(sampleRate float64) (*Modulator, error) {
	cfg := Config{SampleRate: sampleRate}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lfo, err := engine.NewOscillator[float64](0, engine.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Modulator{lfo: lfo, sampleRate: cfg.sampleRate()}, nil
}

// SetRate sets the LFO frequency in Hz.
func (m *Modulator) SetRate(hz float64) error {
	f, err := NormalizedFrequency(hz, m.sampleRate)
	if err != nil {
		return err
	}
	return m.lfo.SetFrequency(f)
}

// Rate returns the LFO frequency in Hz.
func (m *Modulator) Rate() float64 { return m.lfo.Frequency() * m.sampleRate }

// SetDepth sets the modulation depth in [0, MaxModDepth].
func (m *Modulator) SetDepth(depth float64) error {
	if math.IsNaN(depth) || depth < 0 || depth > MaxModDepth {
		return fmt.Errorf("%w: modulation depth %v outside [0, %g]", ErrInvalidConfig, depth, MaxModDepth)
	}
	m.depth = depth
	return nil
}

// Depth returns the modulation depth.
func (m *Modulator) Depth() float64 { return m.depth }

// SampleRate returns the sample rate in Hz.
func (m *Modulator) SampleRate() float64 { return m.sampleRate }

// Apply scales block in place and advances the LFO by len(block) samples.
func (m *Modulator) Apply(block []complex128) {
	for i := range block {
		lfo := real(m.lfo.Step())
		gain := 1 - m.depth*modGainScale*(1-lfo)
		block[i] = complex(gain*real(block[i]), gain*imag(block[i]))
	}
}

// Reset returns the LFO to full amplitude.
func (m *Modulator) Reset() { m.lfo.Reset() }
