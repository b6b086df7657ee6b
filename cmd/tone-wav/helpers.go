package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-nco"
	"github.com/tphakala/go-nco/internal/pcm"
)

// toneOptions holds validated command line settings.
type toneOptions struct {
	freqHz   float64
	note     int
	rate     int
	seconds  float64
	bitDepth int
	method   nco.Method
	lfoHz    float64
	lfoDepth float64
}

func (o *toneOptions) validate() error {
	if o.rate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", o.rate)
	}
	if !(o.seconds > 0) || math.IsInf(o.seconds, 0) {
		return fmt.Errorf("invalid duration: %v", o.seconds)
	}
	return pcm.ValidateBitDepth(o.bitDepth)
}

func (o *toneOptions) numSamples() int {
	return int(math.Round(o.seconds * float64(o.rate)))
}

type toneStats struct {
	freqHz  float64
	samples int
}

func parseMethod(s string) (nco.Method, error) {
	switch strings.ToLower(s) {
	case "direct":
		return nco.MethodDirect, nil
	case "rotation":
		return nco.MethodRotation, nil
	case "table":
		return nco.MethodTable, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want direct, rotation or table)", s)
	}
}

// newToneStream builds a tuned oscillator behind a block stream.
func newToneStream(opts toneOptions) (*nco.Stream, *nco.Oscillator, error) {
	osc, err := nco.New(nco.Config{SampleRate: float64(opts.rate), Method: opts.method})
	if err != nil {
		return nil, nil, err
	}
	if opts.note != noNote {
		err = osc.TuneNote(opts.note)
	} else {
		err = osc.Tune(opts.freqHz)
	}
	if err != nil {
		return nil, nil, err
	}
	stream, err := nco.NewStream(osc, nco.DefaultBlockSize)
	if err != nil {
		return nil, nil, err
	}
	if opts.lfoDepth != 0 {
		mod, err := nco.NewModulator(osc.SampleRate())
		if err != nil {
			return nil, nil, err
		}
		if err := mod.SetRate(opts.lfoHz); err != nil {
			return nil, nil, fmt.Errorf("tremolo rate: %w", err)
		}
		if err := mod.SetDepth(opts.lfoDepth); err != nil {
			return nil, nil, err
		}
		if err := stream.SetModulator(mod); err != nil {
			return nil, nil, err
		}
	}
	return stream, osc, nil
}

// renderTone writes the tone to path in bufferSize chunks.
func renderTone(path string, opts toneOptions) (stats *toneStats, err error) {
	stream, osc, err := newToneStream(opts)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	enc := wav.NewEncoder(file, opts.rate, opts.bitDepth, pcm.Channels, pcm.FormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: pcm.Channels, SampleRate: opts.rate},
		SourceBitDepth: opts.bitDepth,
	}
	chunk := make([]complex128, bufferSize)

	total := opts.numSamples()
	for written := 0; written < total; {
		n := min(bufferSize, total-written)
		if _, err := stream.Read(chunk[:n]); err != nil {
			return nil, err
		}
		if buf.Data, err = pcm.FromIQ(chunk[:n], opts.bitDepth); err != nil {
			return nil, err
		}
		if err := enc.Write(buf); err != nil {
			return nil, fmt.Errorf("failed to write WAV data: %w", err)
		}
		written += n
	}
	// Close updates the header sizes, so its error matters.
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return &toneStats{freqHz: osc.Frequency(), samples: total}, nil
}
