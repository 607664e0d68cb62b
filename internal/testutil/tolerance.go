package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			require.FailNow(t, "non-finite value", "index %d: %v", i, v)
		}
	}
}

// RequireSymmetricBanded fails t unless m is square, exactly symmetric and
// exactly zero more than k positions from the diagonal.
func RequireSymmetricBanded(t testing.TB, m mat.Matrix, k int) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, r, c, "matrix is not square")
	for i := range r {
		for j := range c {
			v := m.At(i, j)
			if i-j > k || j-i > k {
				require.Zero(t, v, "entry (%d,%d) outside band %d", i, j, k)
				continue
			}
			require.Equal(t, v, m.At(j, i), "entry (%d,%d) not symmetric", i, j)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxAbs returns the largest magnitude in v, 0 for an empty slice.
func MaxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
