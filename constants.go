package nco

// Sample rate
const (
	// DefaultSampleRate is used when Config.SampleRate is zero.
	DefaultSampleRate = 48000.0
)

// Note table, MIDI numbering
const (
	// NumNotes is the number of MIDI notes, 0 (C-1) to 127 (G9).
	NumNotes = 128

	// noteC1Hz is the frequency of MIDI note 0, C-1.
	noteC1Hz = 8.175798915643707

	// semitoneRatio is 2^(1/12).
	semitoneRatio = 1.0594630943592953

	referenceKey   = 69 // A4
	referenceHz    = 440.0
	notesPerOctave = 12
)

// Stream constants
const (
	// DefaultBlockSize is the number of samples a Stream generates per step.
	DefaultBlockSize = 32

	// streamBufferBlocks sizes the initial FIFO in blocks.
	streamBufferBlocks = 4
)

// Interleaving
const (
	iqChannels = 2 // I and Q
)

// Modulation
const (
	// MaxModDepth is the largest tremolo depth; at full depth the gain
	// swings from 1 down to 0.
	MaxModDepth = 1.0

	// modGainScale maps the LFO cosine from [-1, 1] onto [0, 1].
	modGainScale = 0.5
)
