package main

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-nco/internal/analysis"
	"github.com/tphakala/go-nco/internal/engine"
)

const (
	sampleRate   = 48000.0
	analysisSize = 1 << 16 // transform length per tone

	// Resync intervals compared for the rotation method
	shortResync = 64
	longResync  = 1 << 16
)

func main() {
	fmt.Println("=== Spectral purity per method ===")

	tones := []float64{27.5, 440, 1000, 4186.009, 11025, 23000}
	methods := []engine.Method{engine.MethodDirect, engine.MethodRotation, engine.MethodTable}

	for _, hz := range tones {
		fmt.Printf("\n%.3f Hz (f = %.8f)\n", hz, hz/sampleRate)
		for _, m := range methods {
			report(m, hz, engine.Options{Method: m})
		}
	}

	fmt.Println("\n=== Rotation resync interval ===")
	for _, interval := range []int{shortResync, engine.DefaultResyncInterval, longResync} {
		fmt.Printf("\nresync every %d samples\n", interval)
		report(engine.MethodRotation, 1000, engine.Options{Method: engine.MethodRotation, ResyncInterval: interval})
	}
}

func report(m engine.Method, hz float64, opts engine.Options) {
	o, err := engine.NewOscillator[float64](hz/sampleRate, opts)
	if err != nil {
		fmt.Printf("  %-8s error: %v\n", m, err)
		return
	}
	out, err := o.Generate(analysisSize)
	if err != nil {
		fmt.Printf("  %-8s error: %v\n", m, err)
		return
	}

	// Worst deviation from the closed form at the quantized frequency
	eff := o.EffectiveFrequency()
	var maxErr float64
	for k, z := range out {
		want := cmplx.Exp(complex(0, 2*math.Pi*math.Mod(eff*float64(k), 1)))
		maxErr = math.Max(maxErr, cmplx.Abs(z-want))
	}

	res, err := analysis.SFDR(out, sampleRate)
	if err != nil {
		fmt.Printf("  %-8s error: %v\n", m, err)
		return
	}
	stats, _ := analysis.PowerStats(out)

	fmt.Printf("  %-8s SFDR %6.1f dB (spur %9.2f Hz)  max error %.2e  power [%.12f, %.12f]\n",
		m, res.SFDR, res.SpurFrequency, maxErr, stats.Min, stats.Max)
}
