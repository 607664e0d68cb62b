package bspline

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Spline is the fit of one y array. Its coefficient vector and curve cache
// are private to it.
type Spline struct {
	s *Smoother
	a *mat.VecDense

	curveOnce sync.Once
	curve     []float64
}

// Smoother returns the configuration the spline was fitted with.
func (sp *Spline) Smoother() *Smoother { return sp.s }

// Coefficient returns the coefficient of node n, or 0 if n is outside
// [0, M].
func (sp *Spline) Coefficient(n int) float64 {
	if n < 0 || n >= sp.a.Len() {
		return 0
	}
	return sp.a.AtVec(n)
}

// Coefficients returns a copy of the M+1 coefficients.
func (sp *Spline) Coefficients() []float64 {
	out := make([]float64, sp.a.Len())
	for i := range out {
		out[i] = sp.a.AtVec(i)
	}
	return out
}

// Evaluate returns the fitted curve at x. x may lie outside the sample
// domain; the curve decays to zero within two node intervals of it.
func (sp *Spline) Evaluate(x float64) float64 {
	lo, hi := sp.s.window(x)
	var y float64
	for m := lo; m <= hi; m++ {
		y += sp.a.AtVec(m) * sp.s.value(m, x)
	}
	return y
}

// Slope returns the derivative of the fitted curve at x.
func (sp *Spline) Slope(x float64) float64 {
	lo, hi := sp.s.window(x)
	var y float64
	for m := lo; m <= hi; m++ {
		y += sp.a.AtVec(m) * sp.s.slope(m, x)
	}
	return y
}

// Resample evaluates the curve at each of xs.
func (sp *Spline) Resample(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = sp.Evaluate(x)
	}
	return out
}

// Nodes returns the node positions of the curve.
func (sp *Spline) Nodes() []float64 { return sp.s.Nodes() }

// Curve returns the fitted values at the M+1 nodes. They are computed on
// the first call; later calls return copies of the same values.
func (sp *Spline) Curve() []float64 {
	sp.curveOnce.Do(func() {
		dom := sp.s.dom
		sp.curve = make([]float64, dom.NodeCount())
		for n := range sp.curve {
			sp.curve[n] = sp.Evaluate(dom.Node(n))
		}
	})
	return append([]float64(nil), sp.curve...)
}
