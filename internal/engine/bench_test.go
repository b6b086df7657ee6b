package engine

import (
	"testing"
)

// BenchmarkOscillator_Generate benchmarks one second of 48 kHz output per method.
func BenchmarkOscillator_Generate(b *testing.B) {
	for _, m := range allMethods {
		b.Run(m.String(), func(b *testing.B) {
			osc, err := NewOscillator[float64](1000.0/48000.0, Options{Method: m})
			if err != nil {
				b.Fatal(err)
			}

			dst := make([]complex128, 48000)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				osc.GenerateInto(dst)
			}
		})
	}
}

// BenchmarkOscillator_PlanarFloat32 benchmarks smaller planar blocks
func BenchmarkOscillator_PlanarFloat32(b *testing.B) {
	osc, err := NewOscillator[float32](440.0/48000.0, Options{Method: MethodTable})
	if err != nil {
		b.Fatal(err)
	}

	// 1024 samples
	cosOut := make([]float32, 1024)
	sinOut := make([]float32, 1024)

	b.ResetTimer()
	for b.Loop() {
		_ = osc.ProcessPlanar(cosOut, sinOut)
	}
}
