package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SFDRResult reports the strongest spur relative to the carrier.
type SFDRResult struct {
	CarrierIndex     int
	CarrierDB        float64
	CarrierFrequency float64

	SpurIndex     int
	SpurDB        float64
	SpurFrequency float64

	// SFDR is CarrierDB - SpurDB in dB.
	SFDR float64
}

// SFDR measures the spurious-free dynamic range of samples using a Kaiser
// window with DefaultSidelobeDB sidelobes.
//
// The carrier is the strongest bin. Its main lobe, plus mainLobeGuardBins on
// each side, is excluded when searching for the strongest spur. The exclusion
// wraps around the spectrum edges.
func SFDR(samples []complex128, sampleRate float64) (*SFDRResult, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	window, halfWidth := KaiserWindowForSidelobe(n, DefaultSidelobeDB)
	sp, err := Spectrum(samples, sampleRate, window)
	if err != nil {
		return nil, err
	}

	mag := sp.MagnitudeDB
	carrier := floats.MaxIdx(mag)
	exclude := int(math.Ceil(halfWidth)) + mainLobeGuardBins

	res := &SFDRResult{
		CarrierIndex:     carrier,
		CarrierDB:        mag[carrier],
		CarrierFrequency: sp.Frequency(carrier),
		SpurIndex:        -1,
		SpurDB:           minMagnitudeDB,
	}
	for j, v := range mag {
		if circularDistance(j, carrier, n) <= exclude {
			continue
		}
		if v > res.SpurDB || res.SpurIndex < 0 {
			res.SpurIndex = j
			res.SpurDB = v
		}
	}
	if res.SpurIndex >= 0 {
		res.SpurFrequency = sp.Frequency(res.SpurIndex)
	}
	res.SFDR = res.CarrierDB - res.SpurDB
	return res, nil
}

func circularDistance(a, b, n int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return min(d, n-d)
}
