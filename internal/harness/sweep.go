package harness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
)

// PianoKeys returns the 88 MIDI keys of a piano, A0 to C8.
func PianoKeys() []int {
	keys := make([]int, 0, LastPianoKey-FirstPianoKey+1)
	for k := FirstPianoKey; k <= LastPianoKey; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyFrequency returns the equal-tempered frequency of MIDI key k, A4 = 440 Hz.
func KeyFrequency(k int) float64 {
	return referenceHz * math.Exp2(float64(k-referenceKey)/keysPerOctave)
}

// Sweep runs the frequency check for every key on a bounded worker pool.
//
// Each check uses a generator freshly built by factory, so no phase is
// shared between keys. Measurements are returned in key order. The error
// joins every failure; cancelling ctx stops dispatching new keys and adds
// ctx.Err() to it; keys never dispatched are left as zero Measurements.
func (h *Harness) Sweep(ctx context.Context, factory Factory, keys []int) ([]Measurement, error) {
	results := make([]Measurement, len(keys))
	errs := make([]error, len(keys))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(h.cfg.Workers, max(len(keys), 1)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = h.checkKey(factory, keys[i])
			}
		}()
	}

	var ctxErr error
dispatch:
	for i := range keys {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, errors.Join(append(errs, ctxErr)...)
}

func (h *Harness) checkKey(factory Factory, key int) (Measurement, error) {
	name := fmt.Sprintf("key-%03d", key)
	hz := KeyFrequency(key)

	gen, err := factory()
	if err != nil {
		return Measurement{Name: name, Key: key, RequestedHz: hz}, fmt.Errorf("%s: %w", name, err)
	}
	m, err := h.checkFrequency(gen, name, hz)
	m.Key = key
	return m, err
}
