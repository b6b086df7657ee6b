// Package testutil provides assertions shared by the oscillator and spectral
// analysis tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertUnitMagnitude verifies that every sample lies within tolerance of
// the unit circle. It stops at the first violation.
func AssertUnitMagnitude(t *testing.T, s []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, z := range s {
		if mag := cmplx.Abs(z); math.Abs(mag-1) >= tolerance {
			return assert.Fail(t, "sample off the unit circle",
				"|s[%d]|=%.12f deviates from 1 by more than %g", i, mag, tolerance)
		}
	}
	return true
}

// AssertComplexInDelta verifies two complex sequences agree element-wise.
func AssertComplexInDelta(t *testing.T, expected, actual []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(expected[i] - actual[i]); d > tolerance {
			return assert.Fail(t, "complex sequences differ",
				"index %d: expected %v, actual %v (|diff|=%g)", i, expected[i], actual[i], d)
		}
	}
	return true
}

// AssertSymmetric verifies s[i] == s[n-1-i].
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if !assert.InDelta(t, s[i], s[j], tolerance, "not symmetric at %d/%d", i, j) {
			return false
		}
	}
	return true
}

// AssertFinite verifies no element is NaN or Inf.
func AssertFinite(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, "non-finite value", "s[%d]=%v", i, v)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%g is outside [%g, %g]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is strictly increasing.
func AssertMonotonic(t *testing.T, s []float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not monotonic", "s[%d]=%g <= s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertMaxAt verifies that no element exceeds s[index].
func AssertMaxAt(t *testing.T, s []float64, index int) bool {
	t.Helper()
	if !assert.Less(t, index, len(s)) {
		return false
	}
	for i, v := range s {
		if v > s[index] {
			return assert.Fail(t, "maximum misplaced", "s[%d]=%g > s[%d]=%g", i, v, index, s[index])
		}
	}
	return true
}

// AssertRelativeError verifies |actual-expected|/|expected| <= tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds %e (expected=%g, actual=%g)", relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [minVal, maxVal].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	return assert.True(t, value >= minVal && value <= maxVal,
		"value %g is outside [%g, %g]", value, minVal, maxVal)
}
