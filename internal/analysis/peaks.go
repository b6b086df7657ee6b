package analysis

// PeakOptions filters candidate peaks.
type PeakOptions struct {
	// Height is the minimum peak value. Nil disables the filter.
	Height *float64

	// Prominence is the minimum vertical distance between a peak and the
	// higher of its two bases. Nil disables the filter.
	Prominence *float64
}

// Peak is a local maximum of a sequence.
type Peak struct {
	// Index of the peak. For flat peaks this is the middle sample, rounded down.
	Index int

	Height float64

	// Prominence and the bases it was measured from. Only set when
	// PeakOptions.Prominence is not nil.
	Prominence float64
	LeftBase   int
	RightBase  int
}

// Float returns a pointer to v, for building PeakOptions inline.
func Float(v float64) *float64 { return &v }

// FindPeaks returns the local maxima of x that pass the filters in opts, in
// increasing index order.
//
// A local maximum is a sample, or a run of equal samples, strictly greater
// than both neighbours. The first and last samples are never peaks.
func FindPeaks(x []float64, opts PeakOptions) []Peak {
	candidates := localMaxima(x)
	peaks := make([]Peak, 0, len(candidates))

	for _, i := range candidates {
		p := Peak{Index: i, Height: x[i]}
		if opts.Height != nil && p.Height < *opts.Height {
			continue
		}
		if opts.Prominence != nil {
			p.Prominence, p.LeftBase, p.RightBase = prominence(x, i)
			if p.Prominence < *opts.Prominence {
				continue
			}
		}
		peaks = append(peaks, p)
	}
	return peaks
}

// localMaxima finds strict local maxima, collapsing plateaus to their midpoint.
func localMaxima(x []float64) []int {
	var out []int
	last := len(x) - 1
	for i := 1; i < last; i++ {
		if x[i-1] >= x[i] {
			continue
		}
		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			out = append(out, (i+ahead-1)/2)
			i = ahead
		}
	}
	return out
}

// prominence walks outward from peak until a higher sample or the edge,
// tracking the lowest point on each side.
func prominence(x []float64, peak int) (prom float64, left, right int) {
	h := x[peak]

	left = peak
	leftMin := h
	for i := peak; i >= 0 && x[i] <= h; i-- {
		if x[i] < leftMin {
			leftMin = x[i]
			left = i
		}
	}

	right = peak
	rightMin := h
	for i := peak; i < len(x) && x[i] <= h; i++ {
		if x[i] < rightMin {
			rightMin = x[i]
			right = i
		}
	}

	return h - max(leftMin, rightMin), left, right
}
