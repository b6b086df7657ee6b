package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-nco/internal/engine"
	"github.com/tphakala/go-nco/internal/pcm"
)

func TestWAVObserver_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	obs, err := NewWAVObserver(dir, 48000)
	require.NoError(t, err)

	o, err := engine.NewOscillator[float64](1000.0/48000, engine.Options{})
	require.NoError(t, err)
	samples, err := o.Generate(4800)
	require.NoError(t, err)

	require.NoError(t, obs.ObserveWaveform("tone", samples))
	require.NoError(t, obs.ObserveSpectrum("tone", nil, nil, nil))

	f, err := os.Open(filepath.Join(dir, "tone.wav"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 48000, buf.Format.SampleRate)
	assert.Equal(t, 24, int(dec.BitDepth))
	want, err := pcm.FromIQ(samples, pcm.Bits24)
	require.NoError(t, err)
	assert.Equal(t, want, buf.Data)
}

func TestWAVObserver_UsedByCheckAmplitude(t *testing.T) {
	dir := t.TempDir()
	obs, err := NewWAVObserver(dir, 48000)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.AmplitudeDuration = cfg.AmplitudeDuration / 300
	h, err := New(cfg, obs)
	require.NoError(t, err)

	_, err = h.CheckAmplitude(newOscillator(t, engine.MethodTable))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "amplitude-1000Hz.wav"))
}

func TestNewWAVObserver_InvalidRate(t *testing.T) {
	_, err := NewWAVObserver(t.TempDir(), 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteIQWAV_RejectsBitDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	for _, bits := range []int{0, -1, 8} {
		err := WriteIQWAV(path, []complex128{1}, 48000, bits)
		require.ErrorIs(t, err, pcm.ErrBitDepth, "bits=%d", bits)
	}
	assert.NoFileExists(t, path)
}
