package analysis

import "errors"

// Errors returned by analysis functions.
var (
	// ErrEmptyInput indicates an empty sample or spectrum buffer.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrWindowLength indicates a window whose length differs from the input.
	ErrWindowLength = errors.New("window length mismatch")

	// ErrInvalidResolution indicates a non-positive frequency resolution.
	ErrInvalidResolution = errors.New("invalid frequency resolution")
)
