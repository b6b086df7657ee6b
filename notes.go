package nco

import (
	"fmt"
	"math"
)

// noteHz holds MIDI note frequencies, built by repeated semitone steps up
// from C-1.
var noteHz = func() [NumNotes]float64 {
	var t [NumNotes]float64
	t[0] = noteC1Hz
	for i := 1; i < NumNotes; i++ {
		t[i] = t[i-1] * semitoneRatio
	}
	return t
}()

// NoteFrequency returns the frequency of MIDI note 0..127 in Hz.
func NoteFrequency(note int) (float64, error) {
	if note < 0 || note >= NumNotes {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNote, note)
	}
	return noteHz[note], nil
}

// KeyFrequency returns 440*2^((k-69)/12) Hz for any key number k,
// including fractional pitch outside the MIDI range.
func KeyFrequency(k float64) float64 {
	return referenceHz * math.Exp2((k-referenceKey)/notesPerOctave)
}

// NoteTable returns the normalized frequency of every MIDI note at
// sampleRate. Notes at or above Nyquist are reported as NaN.
func NoteTable(sampleRate float64) ([]float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, sampleRate)
	}
	table := make([]float64, NumNotes)
	for i, hz := range noteHz {
		f := hz / sampleRate
		if f >= 0.5 {
			f = math.NaN()
		}
		table[i] = f
	}
	return table, nil
}
