package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-nco/internal/analysis"
	"github.com/tphakala/go-nco/internal/pcm"
)

// Observer receives intermediate data from the checks for offline
// inspection. Sweep calls it from several goroutines at once.
type Observer interface {
	ObserveSpectrum(name string, freqs, magDB []float64, peaks []analysis.Peak) error
	ObserveWaveform(name string, samples []complex128) error
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) ObserveSpectrum(string, []float64, []float64, []analysis.Peak) error {
	return nil
}

func (NopObserver) ObserveWaveform(string, []complex128) error { return nil }

// WAVObserver writes waveforms to Dir as 2-channel 24-bit WAV files, I on
// the left channel and Q on the right. Spectra are ignored.
type WAVObserver struct {
	Dir        string
	SampleRate int
}

// NewWAVObserver creates dir if needed.
func NewWAVObserver(dir string, sampleRate int) (*WAVObserver, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: WAV sample rate %d", ErrInvalidConfig, sampleRate)
	}
	if err := os.MkdirAll(dir, wavDirMode); err != nil {
		return nil, fmt.Errorf("failed to create observer directory: %w", err)
	}
	return &WAVObserver{Dir: dir, SampleRate: sampleRate}, nil
}

func (o *WAVObserver) ObserveSpectrum(string, []float64, []float64, []analysis.Peak) error {
	return nil
}

// ObserveWaveform writes samples to Dir/name.wav.
func (o *WAVObserver) ObserveWaveform(name string, samples []complex128) error {
	path := filepath.Join(o.Dir, filepath.Base(name)+wavFileSuffix)
	return WriteIQWAV(path, samples, o.SampleRate, pcm.Bits24)
}

// WriteIQWAV writes samples as a stereo PCM WAV file, I left and Q right,
// scaled to full range at the given bit depth.
func WriteIQWAV(path string, samples []complex128, sampleRate, bitDepth int) (err error) {
	data, err := pcm.FromIQ(samples, bitDepth)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, wavFileMode)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close WAV file: %w", cerr)
		}
	}()

	enc := wav.NewEncoder(file, sampleRate, bitDepth, pcm.Channels, pcm.FormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: pcm.Channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
