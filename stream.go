package nco

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-nco/internal/pipeline"
)

// Stream generates in fixed-size blocks and serves reads of any length from
// a FIFO, so a request that is not a multiple of the block size is still
// filled completely.
//
// Phase is always continuous across reads, whatever the oscillator's mode.
// Retuning takes effect after samples already buffered, at most one block
// minus one sample later. The same holds for attaching a Modulator.
type Stream struct {
	mu        sync.Mutex
	osc       *Oscillator
	mod       *Modulator
	blockSize int
	block     []complex128
	fifo      *pipeline.RingBuffer[complex128]
}

// NewStream wraps osc. blockSize 0 selects DefaultBlockSize.
func NewStream(osc *Oscillator, blockSize int) (*Stream, error) {
	if osc == nil {
		return nil, fmt.Errorf("%w: nil oscillator", ErrInvalidConfig)
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidConfig, blockSize)
	}
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	return &Stream{
		osc:       osc,
		blockSize: blockSize,
		block:     make([]complex128, blockSize),
		fifo:      pipeline.NewRingBuffer[complex128](blockSize * streamBufferBlocks),
	}, nil
}

// BlockSize returns the generation block size.
func (s *Stream) BlockSize() int { return s.blockSize }

// Buffered returns the number of generated samples not yet read.
func (s *Stream) Buffered() int { return s.fifo.Available() }

// Read fills dst entirely and returns len(dst).
func (s *Stream) Read(dst []complex128) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := s.fifo.ReadInto(dst)
	for done < len(dst) {
		s.fillBlock()
		done += s.fifo.ReadInto(dst[done:])
	}
	return done, nil
}

// Next returns the next n samples.
func (s *Stream) Next(n int) ([]complex128, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	out := make([]complex128, n)
	if _, err := s.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tune retunes the oscillator to hz.
func (s *Stream) Tune(hz float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.osc.Tune(hz)
}

// TuneNote retunes the oscillator to a MIDI note.
func (s *Stream) TuneNote(note int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.osc.TuneNote(note)
}

// SetModulator attaches a tremolo applied to every block generated from now
// on. nil detaches it. The modulator must run at the oscillator's rate and
// must not be shared with another Stream.
func (s *Stream) SetModulator(m *Modulator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m != nil && m.SampleRate() != s.osc.SampleRate() {
		return fmt.Errorf("%w: modulator at %v Hz, oscillator at %v Hz",
			ErrInvalidConfig, m.SampleRate(), s.osc.SampleRate())
	}
	s.mod = m
	return nil
}

// Reset drops buffered samples and returns the oscillator and modulator to
// their initial phase.
func (s *Stream) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fifo.Clear()
	s.osc.Reset()
	if s.mod != nil {
		s.mod.Reset()
	}
}

func (s *Stream) fillBlock() {
	for i := range s.block {
		s.block[i] = s.osc.Step()
	}
	if s.mod != nil {
		s.mod.Apply(s.block)
	}
	s.fifo.Write(s.block)
}
