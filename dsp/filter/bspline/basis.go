package bspline

import "math"

// Bandwidth is the half-bandwidth of the penalty, data and system matrices.
// Basis functions more than three nodes apart do not overlap.
const Bandwidth = 3

// boundaryTable holds the weight of the virtual exterior node added to the
// two outermost basis functions at each end. Columns are nodes 0, 1, M-1, M;
// rows are indexed by BoundaryCondition.
var boundaryTable = [3][4]float64{
	{-4, -1, -1, -4},
	{0, 1, 1, 0},
	{2, -1, -1, 2},
}

// basis evaluates the boundary-adjusted cubic B-spline basis on a domain.
type basis struct {
	dom Domain
	bc  BoundaryCondition
}

// beta returns the boundary weight of node m, zero for interior nodes.
func (b basis) beta(m int) float64 {
	M := b.dom.M
	if m > 1 && m < M-1 {
		return 0
	}
	if m >= M-1 {
		m -= M - 3
	}
	if m < 0 || m > 3 {
		return 0
	}
	return boundaryTable[b.bc][m]
}

// virtual returns the exterior node folded into basis function m and its
// weight. ok is false for interior nodes.
func (b basis) virtual(m int) (node int, weight float64, ok bool) {
	M := b.dom.M
	switch {
	case m == 0 || m == 1:
		return -1, b.beta(m), true
	case m == M-1 || m == M:
		return M + 1, b.beta(m), true
	}
	return 0, 0, false
}

// position returns x in node units relative to XMin.
func (b basis) position(x float64) float64 {
	return (x - b.dom.XMin) / b.dom.DX
}

// value evaluates basis function m at x.
func (b basis) value(m int, x float64) float64 {
	u := b.position(x)
	y := kernel(u - float64(m))
	if v, w, ok := b.virtual(m); ok && w != 0 {
		y += w * kernel(u-float64(v))
	}
	return y
}

// slope evaluates the x-derivative of basis function m at x.
func (b basis) slope(m int, x float64) float64 {
	u := b.position(x)
	y := kernelDerivative(u-float64(m), 1)
	if v, w, ok := b.virtual(m); ok && w != 0 {
		y += w * kernelDerivative(u-float64(v), 1)
	}
	return y / b.dom.DX
}

// window returns the nodes whose basis functions can be nonzero at x. Inside
// the domain that is the home interval's node +/-2; outside it every node is
// returned since the boundary terms reach past the grid.
func (b basis) window(x float64) (lo, hi int) {
	M := b.dom.M
	u := b.position(x)
	if !(u >= 0 && u <= float64(M)) {
		return 0, M
	}
	m := int(u)
	return max(0, m-2), min(M, m+2)
}

// sampleWindow is window for a sample abscissa: the home node is clamped to
// [0, M] so rounding at the domain ends never widens the window beyond five
// nodes.
func (b basis) sampleWindow(x float64) (lo, hi int) {
	M := b.dom.M
	m := int(math.Floor(b.position(x)))
	m = min(max(m, 0), M)
	return max(0, m-2), min(M, m+2)
}

// kernel is the cubic B-spline centred on zero with unit node spacing,
// normalised to 1 at its centre and 1/4 at the neighbouring nodes.
func kernel(s float64) float64 {
	z := math.Abs(s)
	if z >= 2 {
		return 0
	}
	t := 2 - z
	y := 0.25 * t * t * t
	if z < 1 {
		t = 1 - z
		y -= t * t * t
	}
	return y
}

// kernelDerivative returns the order-th derivative of kernel at s, for
// order 0 to 3.
func kernelDerivative(s float64, order int) float64 {
	z := math.Abs(s)
	if z >= 2 {
		return 0
	}
	inner := z < 1
	var y float64
	switch order {
	case 0:
		return kernel(s)
	case 1:
		y = -0.75 * (2 - z) * (2 - z)
		if inner {
			y += 3 * (1 - z) * (1 - z)
		}
	case 2:
		y = 1.5 * (2 - z)
		if inner {
			y -= 6 * (1 - z)
		}
	case 3:
		y = -1.5
		if inner {
			y += 6
		}
	default:
		return 0
	}
	// Odd derivatives flip sign on the left of the centre.
	if order%2 == 1 && s < 0 {
		y = -y
	}
	return y
}
