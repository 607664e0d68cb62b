package bspline

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-bspline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 4-point Gauss-Legendre rule on [-1, 1]; exact for the piecewise
// polynomials integrated here.
var (
	gaussNodes   = [4]float64{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526}
	gaussWeights = [4]float64{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538}
)

// derivativeInNodeUnits is the k-th derivative, with respect to node units,
// of boundary-adjusted basis function m.
func derivativeInNodeUnits(b basis, m, k int, u float64) float64 {
	y := kernelDerivative(u-float64(m), k)
	if v, w, ok := b.virtual(m); ok {
		y += w * kernelDerivative(u-float64(v), k)
	}
	return y
}

func integrateProduct(b basis, i, j, k int) float64 {
	var sum float64
	for c := 0; c < b.dom.M; c++ {
		for g, z := range gaussNodes {
			u := float64(c) + 0.5 + 0.5*z
			sum += 0.5 * gaussWeights[g] * derivativeInNodeUnits(b, i, k, u) * derivativeInNodeUnits(b, j, k, u)
		}
	}
	return sum
}

func TestQPartsInteriorSums(t *testing.T) {
	want := [3][4]float64{
		{1.5, -0.28125, -0.45, -0.01875},
		{6, -3.375, 0, 0.375},
		{45, -33.75, 13.5, -2.25},
	}
	for k := range qparts {
		for d := range qparts[k] {
			var sum float64
			for _, v := range qparts[k][d] {
				sum += v
			}
			assert.InDelta(t, want[k][d], sum, 1e-12, "k=%d d=%d", k+1, d)
		}
	}
}

func TestQPartsMatchKernelIntegrals(t *testing.T) {
	for k := 1; k <= 3; k++ {
		for d := 0; d <= Bandwidth; d++ {
			for c := 0; c < 4; c++ {
				lo := float64(c - 2)
				var sum float64
				for g, z := range gaussNodes {
					u := lo + 0.5 + 0.5*z
					sum += 0.5 * gaussWeights[g] * kernelDerivative(u, k) * kernelDerivative(u-float64(d), k)
				}
				assert.InDelta(t, sum, qparts[k-1][d][c], 1e-12, "k=%d d=%d c=%d", k, d, c)
			}
		}
	}
}

// The edge corrections are checked against direct integration of the
// boundary-adjusted basis derivatives over the domain.
func TestPenaltyMatchesIntegratedBasis(t *testing.T) {
	domains := []struct {
		name string
		x    []float64
		wl   float64
	}{
		{"unit spacing", testutil.Grid(30, 0, 1), 5},
		{"scaled offset", testutil.Grid(40, -3, 0.25), 2},
	}
	for _, dc := range domains {
		dom, err := setupDomain(dc.x, dc.wl)
		require.NoError(t, err)
		for k := 1; k <= 3; k++ {
			for _, bc := range []BoundaryCondition{BoundaryZeroValue, BoundaryZeroSlope, BoundaryZeroCurvature} {
				t.Run(fmt.Sprintf("%s/k%d/%v", dc.name, k, bc), func(t *testing.T) {
					b := basis{dom: dom, bc: bc}
					alpha := alphaFor(dc.wl, dom.DX, k)
					q := buildPenalty(b, k, alpha)
					scale := dom.DX * alpha

					for i := 0; i <= dom.M; i++ {
						for j := i; j <= min(dom.M, i+Bandwidth); j++ {
							want := scale * integrateProduct(b, i, j, k)
							got := q.At(i, j)
							tol := 1e-10 * math.Max(1, math.Abs(want))
							require.InDelta(t, want, got, tol, "Q[%d][%d]", i, j)
						}
					}
					testutil.RequireSymmetricBanded(t, q, Bandwidth)
				})
			}
		}
	}
}

func TestDataFitMatchesFullSum(t *testing.T) {
	x := testutil.JitteredGrid(4, 80, 5, 1.5, 0.45)
	dom, err := setupDomain(x, 12)
	require.NoError(t, err)

	for _, bc := range []BoundaryCondition{BoundaryZeroValue, BoundaryZeroSlope} {
		b := basis{dom: dom, bc: bc}
		p := buildDataFit(b, x)
		testutil.RequireSymmetricBanded(t, p, Bandwidth)

		for m := 0; m <= dom.M; m++ {
			for n := m; n <= min(dom.M, m+Bandwidth); n++ {
				var want float64
				for _, xj := range x {
					want += b.value(m, xj) * b.value(n, xj) * dom.DX
				}
				assert.InDelta(t, want, p.At(m, n), 1e-12, "%v P[%d][%d]", bc, m, n)
			}
		}
	}
}

func TestRHSMatchesFullSum(t *testing.T) {
	x := testutil.JitteredGrid(6, 60, 0, 1, 0.3)
	y := testutil.Add(testutil.Tone(x, 17, 1, 0.2), testutil.DeterministicNoise(2, 0.1, len(x)))
	s, err := New(x, 8, WithBoundaryCondition(BoundaryZeroCurvature))
	require.NoError(t, err)

	b := s.rhs(y)
	for m := 0; m <= s.dom.M; m++ {
		var want float64
		for j, xj := range x {
			want += y[j] * s.value(m, xj)
		}
		assert.InDelta(t, want*s.dom.DX, b.AtVec(m), 1e-12, "b[%d]", m)
	}
}

func TestCurveIsComputedOnce(t *testing.T) {
	x := testutil.Grid(50, 0, 1)
	s, err := New(x, 10)
	require.NoError(t, err)
	sp, err := s.Apply(testutil.Tone(x, 25, 1, 0))
	require.NoError(t, err)

	sp.Curve()
	first := &sp.curve[0]
	sp.Curve()
	assert.Same(t, first, &sp.curve[0])
}
