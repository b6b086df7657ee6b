package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the verification thresholds.
type Config struct {
	// SampleRate in Hz, used to convert test tones to normalized frequency.
	SampleRate float64 `yaml:"sample_rate"`

	// CentsTolerance is the allowed pitch error. It also sets the transform
	// length of the frequency check.
	CentsTolerance float64 `yaml:"cents_tolerance"`

	// PowerTolerance bounds |power-1| in the amplitude check.
	PowerTolerance float64 `yaml:"power_tolerance"`

	PeakHeightDB     float64 `yaml:"peak_height_db"`
	PeakProminenceDB float64 `yaml:"peak_prominence_db"`

	AmplitudeDuration time.Duration `yaml:"amplitude_duration"`
	AmplitudeToneHz   float64       `yaml:"amplitude_tone_hz"`

	// Workers bounds sweep concurrency.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		SampleRate:        DefaultSampleRate,
		CentsTolerance:    DefaultCentsTolerance,
		PowerTolerance:    DefaultPowerTolerance,
		PeakHeightDB:      DefaultPeakHeightDB,
		PeakProminenceDB:  DefaultPeakProminenceDB,
		AmplitudeDuration: DefaultAmplitudeDuration,
		AmplitudeToneHz:   DefaultAmplitudeTone,
		Workers:           min(runtime.GOMAXPROCS(0), maxDefaultWorkers),
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !positiveFinite(c.SampleRate) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, c.SampleRate)
	}
	if !positiveFinite(c.CentsTolerance) {
		return fmt.Errorf("%w: cents tolerance %v", ErrInvalidConfig, c.CentsTolerance)
	}
	if !positiveFinite(c.PowerTolerance) {
		return fmt.Errorf("%w: power tolerance %v", ErrInvalidConfig, c.PowerTolerance)
	}
	if math.IsNaN(c.PeakHeightDB) || math.IsInf(c.PeakHeightDB, 0) {
		return fmt.Errorf("%w: peak height %v", ErrInvalidConfig, c.PeakHeightDB)
	}
	if c.PeakProminenceDB < 0 || math.IsNaN(c.PeakProminenceDB) || math.IsInf(c.PeakProminenceDB, 0) {
		return fmt.Errorf("%w: peak prominence %v", ErrInvalidConfig, c.PeakProminenceDB)
	}
	if c.AmplitudeDuration <= 0 {
		return fmt.Errorf("%w: amplitude duration %v", ErrInvalidConfig, c.AmplitudeDuration)
	}
	if !positiveFinite(c.AmplitudeToneHz) || c.AmplitudeToneHz >= c.SampleRate/2 {
		return fmt.Errorf("%w: amplitude tone %v Hz at %v Hz", ErrInvalidConfig, c.AmplitudeToneHz, c.SampleRate)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// AmplitudeSamples returns the sample count of the amplitude check.
func (c *Config) AmplitudeSamples() int {
	return int(math.Round(c.AmplitudeDuration.Seconds() * c.SampleRate))
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
