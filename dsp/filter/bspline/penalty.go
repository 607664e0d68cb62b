package bspline

import "gonum.org/v1/gonum/mat"

// qparts[k-1][d][c] is the integral of the product of the k-th derivatives
// of two unit-spaced kernels d nodes apart, over the unit interval
// [m1+c-2, m1+c-1] where m1 is the left kernel's node.
var qparts = [3][4][4]float64{
	{
		{0.1125, 0.6375, 0.6375, 0.1125},
		{0, 0.13125, -0.54375, 0.13125},
		{0, 0, -0.225, -0.225},
		{0, 0, 0, -0.01875},
	},
	{
		{0.75, 2.25, 2.25, 0.75},
		{0, -1.125, -1.125, -1.125},
		{0, 0, 0, 0},
		{0, 0, 0, 0.375},
	},
	{
		{2.25, 20.25, 20.25, 2.25},
		{0, -6.75, -20.25, -6.75},
		{0, 0, 6.75, 6.75},
		{0, 0, 0, -2.25},
	},
}

// qDelta integrates the product of the k-th derivatives of the unadjusted
// kernels at nodes m1 and m2 over [0, M], in node units. Either node may be
// virtual.
func qDelta(k, m1, m2, M int) float64 {
	if m1 > m2 {
		m1, m2 = m2, m1
	}
	d := m2 - m1
	if d > Bandwidth {
		return 0
	}
	parts := &qparts[k-1][d]
	var q float64
	for m := max(m1-2, 0); m < min(m1+2, M); m++ {
		q += parts[m-m1+2]
	}
	return q
}

// boundaryProduct returns the part of the derivative-product integral of
// basis functions i and j contributed by their virtual exterior terms.
func (b basis) boundaryProduct(k, i, j int) float64 {
	M := b.dom.M
	vi, wi, iok := b.virtual(i)
	vj, wj, jok := b.virtual(j)

	var q float64
	if jok {
		q += wj * qDelta(k, i, vj, M)
	}
	if iok {
		q += wi * qDelta(k, vi, j, M)
	}
	if iok && jok {
		q += wi * wj * qDelta(k, vi, vj, M)
	}
	return q
}

// buildPenalty assembles Q, the derivative penalty over the boundary-adjusted
// basis, scaled by DX*alpha.
func buildPenalty(b basis, k int, alpha float64) *mat.SymBandDense {
	M := b.dom.M
	scale := b.dom.DX * alpha
	q := mat.NewSymBandDense(M+1, Bandwidth, nil)

	// Products of the kernels themselves, truncated to the domain.
	for i := 0; i <= M; i++ {
		for j := i; j <= min(M, i+Bandwidth); j++ {
			q.SetSymBand(i, j, scale*qDelta(k, i, j, M))
		}
	}

	// Boundary terms at the low end, then the high end.
	for i := 0; i <= min(1, M); i++ {
		for j := i; j <= min(M, i+Bandwidth); j++ {
			q.SetSymBand(i, j, q.At(i, j)+scale*b.boundaryProduct(k, i, j))
		}
	}
	for j := max(M-1, 2); j <= M; j++ {
		for i := max(2, j-Bandwidth); i <= j; i++ {
			q.SetSymBand(i, j, q.At(i, j)+scale*b.boundaryProduct(k, i, j))
		}
	}
	return q
}
