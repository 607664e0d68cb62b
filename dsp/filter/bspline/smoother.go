package bspline

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-bspline/internal/banded"
	"gonum.org/v1/gonum/mat"
)

// Smoother is a factored smoothing system for one set of abscissas, cutoff
// wavelength, derivative order and boundary condition. It is read-only after
// New and safe for concurrent use.
type Smoother struct {
	basis
	cfg   Config
	x     []float64
	alpha float64

	q, p, sys *mat.SymBandDense
	lu        *banded.LU

	nodesOnce sync.Once
	nodes     []float64
}

// New derives the node grid for the abscissas x and the cutoff wavelength,
// assembles the penalty and data matrices and factors their sum. x is copied.
func New(x []float64, wavelength float64, opts ...Option) (*Smoother, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dom, err := setupDomain(x, wavelength)
	if err != nil {
		return nil, err
	}

	s := &Smoother{
		basis: basis{dom: dom, bc: cfg.Boundary},
		cfg:   cfg,
		x:     append([]float64(nil), x...),
		alpha: alphaFor(wavelength, dom.DX, cfg.DerivativeOrder),
	}
	cfg.Logger.Debug("bspline domain",
		"samples", dom.NX,
		"intervals", dom.M,
		"dx", dom.DX,
		"alpha", s.alpha,
		"order", cfg.DerivativeOrder,
		"boundary", cfg.Boundary.String())

	s.q = buildPenalty(s.basis, cfg.DerivativeOrder, s.alpha)
	s.p = buildDataFit(s.basis, s.x)
	s.sys = addSymBand(s.q, s.p)

	s.lu, err = banded.Factor(s.sys)
	if err != nil {
		cfg.Logger.Debug("bspline factorization failed", "error", err)
		return nil, fmt.Errorf("bspline: factor system: %w", err)
	}
	cfg.Logger.Debug("bspline system factored", "order", dom.NodeCount())
	return s, nil
}

// Domain returns the derived node grid parameters.
func (s *Smoother) Domain() Domain { return s.dom }

// Alpha returns the penalty weight.
func (s *Smoother) Alpha() float64 { return s.alpha }

// DerivativeOrder returns the order of the penalised derivative.
func (s *Smoother) DerivativeOrder() int { return s.cfg.DerivativeOrder }

// BoundaryCondition returns the end-point constraint.
func (s *Smoother) BoundaryCondition() BoundaryCondition { return s.cfg.Boundary }

// Beta returns the boundary weight of node m; zero for interior nodes.
func (s *Smoother) Beta(m int) float64 { return s.beta(m) }

// Samples returns a copy of the abscissas.
func (s *Smoother) Samples() []float64 {
	return append([]float64(nil), s.x...)
}

// Nodes returns the M+1 node positions.
func (s *Smoother) Nodes() []float64 {
	s.nodesOnce.Do(func() {
		s.nodes = make([]float64, s.dom.NodeCount())
		for i := range s.nodes {
			s.nodes[i] = s.dom.Node(i)
		}
	})
	return append([]float64(nil), s.nodes...)
}

// Basis evaluates basis function m, including its boundary term, at x.
func (s *Smoother) Basis(m int, x float64) float64 { return s.value(m, x) }

// BasisSlope evaluates the derivative of basis function m at x.
func (s *Smoother) BasisSlope(m int, x float64) float64 { return s.slope(m, x) }

// Penalty returns a copy of the smoothness penalty matrix Q.
func (s *Smoother) Penalty() *mat.SymBandDense { return cloneSymBand(s.q) }

// DataFit returns a copy of the data matrix P.
func (s *Smoother) DataFit() *mat.SymBandDense { return cloneSymBand(s.p) }

// System returns a copy of Q+P.
func (s *Smoother) System() *mat.SymBandDense { return cloneSymBand(s.sys) }

// Pivots returns the row interchanges of the factorization.
func (s *Smoother) Pivots() []int { return s.lu.Pivots() }

// Apply fits y, aligned with the abscissas given to New. The returned Spline
// owns its coefficients; the Smoother is not modified.
func (s *Smoother) Apply(y []float64) (*Spline, error) {
	if len(y) != len(s.x) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(y), len(s.x))
	}
	if i := firstNonFinite(y); i >= 0 {
		return nil, fmt.Errorf("%w: y[%d] = %v", ErrNonFinite, i, y[i])
	}

	a, err := s.lu.Solve(s.rhs(y))
	if err != nil {
		return nil, fmt.Errorf("bspline: solve: %w", err)
	}
	return &Spline{s: s, a: a}, nil
}

// Smooth fits y and returns the fitted curve at the input abscissas.
func (s *Smoother) Smooth(y []float64) ([]float64, error) {
	sp, err := s.Apply(y)
	if err != nil {
		return nil, err
	}
	return sp.Resample(s.x), nil
}

// rhs projects y onto every basis function: b[m] = DX * sum_j y[j]*B_m(x[j]).
func (s *Smoother) rhs(y []float64) *mat.VecDense {
	b := make([]float64, s.dom.NodeCount())
	for j, xj := range s.x {
		lo, hi := s.sampleWindow(xj)
		for m := lo; m <= hi; m++ {
			b[m] += y[j] * s.value(m, xj)
		}
	}
	for m := range b {
		b[m] *= s.dom.DX
	}
	return mat.NewVecDense(len(b), b)
}
