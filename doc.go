// Package nco implements a numerically controlled oscillator: a generator of
// the unit-amplitude complex exponential exp(j*2*pi*f*n) for a normalized
// frequency f in cycles per sample.
//
// # Quick Start
//
// For a one-shot buffer at a normalized frequency:
//
//	samples, err := nco.Generate(1000.0/48000, 4800)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a reusable oscillator tuned in Hz:
//
//	osc, err := nco.New(nco.Config{SampleRate: 48000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := osc.Tune(440); err != nil {
//	    log.Fatal(err)
//	}
//	samples, err := osc.Generate(1024)
//
// # Phase
//
// Phase is held in a 64-bit fixed-point accumulator where 2^64 is one turn,
// so wraparound is exact and frequency resolution is 2^-64 cycles per sample.
// By default phase carries over between calls and across retuning
// ([PhaseContinuous]); [PhaseReset] restarts every call from the initial
// phase.
//
// # Methods
//
//   - [MethodDirect]: sine and cosine evaluated for every sample.
//   - [MethodRotation]: a complex recurrence, renormalized every sample and
//     re-synchronized to the accumulator periodically.
//   - [MethodTable]: a 4096-entry sine table with linear interpolation.
//
// All methods share the accumulator, so pitch accuracy is identical; they
// differ in cost and spectral purity.
//
// # Notes
//
// [NoteFrequency] and [NoteTable] provide the equal-tempered MIDI note
// frequencies, and [Oscillator.TuneNote] tunes to a note directly.
//
// # Tremolo
//
// A [Modulator] scales amplitude with a low-frequency oscillator. Attach it
// to a [Stream] with [Stream.SetModulator]; sample magnitude then ranges
// from 1-depth to 1.
//
// # Thread Safety
//
// An [Oscillator] is not safe for concurrent use. A [Stream] serializes its
// own reads.
package nco
