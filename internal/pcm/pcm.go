// Package pcm converts complex baseband samples to interleaved integer PCM
// frames, in-phase on the left channel and quadrature on the right.
package pcm

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-nco/internal/simdops"
)

// ErrBitDepth indicates a bit depth other than 16 or 24.
var ErrBitDepth = errors.New("unsupported PCM bit depth")

const (
	Bits16 = 16
	Bits24 = 24

	// Channels is the frame width: I and Q.
	Channels = 2

	// FormatPCM is the WAV format tag for integer PCM.
	FormatPCM = 1
)

// ValidateBitDepth returns ErrBitDepth unless bits is 16 or 24.
func ValidateBitDepth(bits int) error {
	if bits != Bits16 && bits != Bits24 {
		return fmt.Errorf("%w: %d (want 16 or 24)", ErrBitDepth, bits)
	}
	return nil
}

// FromIQ interleaves I and Q and scales them to signed integers of the
// given bit depth. Values are clipped to [-1, 1].
func FromIQ(samples []complex128, bitDepth int) ([]int, error) {
	if err := ValidateBitDepth(bitDepth); err != nil {
		return nil, err
	}

	n := len(samples)
	i := make([]float64, n)
	q := make([]float64, n)
	for k, z := range samples {
		i[k], q[k] = real(z), imag(z)
	}

	ops := simdops.For[float64]()
	frames := make([]float64, Channels*n)
	ops.Interleave2(frames, i, q)
	fullScale := float64(int(1)<<(bitDepth-1) - 1)
	ops.Scale(frames, frames, fullScale)

	out := make([]int, Channels*n)
	for k, v := range frames {
		out[k] = int(math.Round(math.Max(-fullScale, math.Min(fullScale, v))))
	}
	return out, nil
}
