package harness

import "time"

// Defaults taken from the reference verification procedure.
const (
	DefaultSampleRate       = 48000.0
	DefaultCentsTolerance   = 0.5
	DefaultPowerTolerance   = 0.001
	DefaultPeakHeightDB     = -96.0
	DefaultPeakProminenceDB = 1.0
	DefaultAmplitudeTone    = 1000.0

	DefaultAmplitudeDuration = 30 * time.Second

	// maxDefaultWorkers caps the default pool. The lowest piano keys need
	// 2^22-point transforms, a few hundred MB each in flight.
	maxDefaultWorkers = 4
)

// Piano keyboard, MIDI numbering.
const (
	FirstPianoKey = 21  // A0
	LastPianoKey  = 108 // C8

	referenceKey  = 69 // A4
	referenceHz   = 440.0
	keysPerOctave = 12
)

// WAV observer output format.
const (
	wavFileMode   = 0o644
	wavDirMode    = 0o755
	wavFileSuffix = ".wav"
)
