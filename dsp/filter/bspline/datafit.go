package bspline

import "gonum.org/v1/gonum/mat"

// buildDataFit assembles P, the sum over samples of basis products scaled
// by DX. Only the basis functions around each sample's home node are
// visited.
func buildDataFit(b basis, x []float64) *mat.SymBandDense {
	M := b.dom.M
	dx := b.dom.DX
	p := mat.NewSymBandDense(M+1, Bandwidth, nil)

	var vals [5]float64
	for _, xj := range x {
		lo, hi := b.sampleWindow(xj)
		for m := lo; m <= hi; m++ {
			vals[m-lo] = b.value(m, xj)
		}
		for m := lo; m <= hi; m++ {
			pm := vals[m-lo]
			if pm == 0 {
				continue
			}
			for n := m; n <= min(hi, m+Bandwidth); n++ {
				p.SetSymBand(m, n, p.At(m, n)+pm*vals[n-lo]*dx)
			}
		}
	}
	return p
}

// addSymBand returns a+b for two symmetric band matrices of equal shape.
func addSymBand(a, b *mat.SymBandDense) *mat.SymBandDense {
	n, k := a.SymBand()
	sum := mat.NewSymBandDense(n, k, nil)
	for i := range n {
		for j := i; j <= min(n-1, i+k); j++ {
			sum.SetSymBand(i, j, a.At(i, j)+b.At(i, j))
		}
	}
	return sum
}

// cloneSymBand returns an independent copy of a.
func cloneSymBand(a *mat.SymBandDense) *mat.SymBandDense {
	n, k := a.SymBand()
	c := mat.NewSymBandDense(n, k, nil)
	for i := range n {
		for j := i; j <= min(n-1, i+k); j++ {
			c.SetSymBand(i, j, a.At(i, j))
		}
	}
	return c
}
