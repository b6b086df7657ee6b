// Command tone-wav renders a complex tone to a stereo WAV file, the in-phase
// component on the left channel and the quadrature component on the right.
//
// Usage:
//
//	tone-wav -freq 1000 tone.wav
//	tone-wav -note 69 -seconds 5 -bits 16 a4.wav
//	tone-wav -freq -440 -method table -rate 96000 tone.wav   # clockwise rotation
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/tphakala/go-nco"
	"github.com/tphakala/go-nco/internal/pcm"
)

const (
	// Samples generated and written per chunk
	bufferSize = 65536

	// CLI defaults
	defaultFreqHz   = 1000.0
	defaultRate     = nco.RateDAT
	defaultSeconds  = 1.0
	defaultBits     = pcm.Bits24
	noNote          = -1
	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	freq := flag.Float64("freq", defaultFreqHz, "Tone frequency in Hz (negative rotates clockwise)")
	note := flag.Int("note", noNote, "MIDI note 0-127 (overrides -freq)")
	rate := flag.Int("rate", defaultRate, "Sample rate in Hz")
	seconds := flag.Float64("seconds", defaultSeconds, "Duration in seconds")
	bits := flag.Int("bits", defaultBits, "Bit depth: 16 or 24")
	method := flag.String("method", "direct", "Generation method: direct, rotation, table")
	lfoRate := flag.Float64("lfo", 0, "Tremolo rate in Hz")
	lfoDepth := flag.Float64("depth", 0, "Tremolo depth 0-1 (0 disables)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -freq 1000 tone.wav              # 1 kHz, 1 s, 24-bit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -note 69 -seconds 5 a4.wav        # A4 for 5 s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -lfo 6 -depth 0.5 tremolo.wav     # 6 Hz tremolo\n", os.Args[0])
		return errors.New("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	m, err := parseMethod(*method)
	if err != nil {
		return err
	}
	opts := toneOptions{
		freqHz:   *freq,
		note:     *note,
		rate:     *rate,
		seconds:  *seconds,
		bitDepth: *bits,
		method:   m,
		lfoHz:    *lfoRate,
		lfoDepth: *lfoDepth,
	}
	if err := opts.validate(); err != nil {
		return err
	}

	outputPath := args[0]
	if *verbose {
		log.Printf("Output: %s", outputPath)
		if opts.note != noNote {
			log.Printf("Note: %d", opts.note)
		} else {
			log.Printf("Frequency: %g Hz", opts.freqHz)
		}
		log.Printf("Rate: %d Hz, %d-bit, %gs", opts.rate, opts.bitDepth, opts.seconds)
		log.Printf("Method: %s", opts.method)
		if opts.lfoDepth > 0 {
			log.Printf("Tremolo: %g Hz, depth %g", opts.lfoHz, opts.lfoDepth)
		}
	}

	start := time.Now()
	stats, err := renderTone(outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s\n", filepath.Base(outputPath))
	fmt.Printf("  %.3f Hz at %d Hz (%s, %d-bit I/Q)\n", stats.freqHz, opts.rate, opts.method, opts.bitDepth)
	fmt.Printf("  %d samples, %.2fs\n", stats.samples, elapsed.Seconds())

	return nil
}
