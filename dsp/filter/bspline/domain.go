package bspline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Node search limits.
const (
	// The search starts just above this interval count.
	minNodeIntervals = 9
	// Phase one stops once a node interval is at most this many wavelengths.
	maxIntervalRatio = 2.0
	// Phase two keeps refining while the interval ratio is below
	// refineIntervalRatio or there are more than refineSampleDensity samples
	// per node.
	refineIntervalRatio = 4.0
	refineSampleDensity = 2.0
	// Phase two never accepts an interval ratio above this bound.
	capIntervalRatio = 15.0
)

// Domain is the node grid derived from the sample abscissas and the cutoff
// wavelength. Nodes sit at XMin + i*DX for i = 0..M.
type Domain struct {
	XMin, XMax float64
	// NX is the number of samples.
	NX int
	// M is the number of node intervals.
	M          int
	DX         float64
	Wavelength float64
}

// Span returns XMax - XMin.
func (d Domain) Span() float64 { return d.XMax - d.XMin }

// NodeCount returns M+1.
func (d Domain) NodeCount() int { return d.M + 1 }

// Node returns the position of node i. Indices outside [0, M] extrapolate
// the grid.
func (d Domain) Node(i int) float64 { return d.XMin + float64(i)*d.DX }

// ratio evaluates a candidate interval count: the node spacing, the spacing
// in wavelengths and the samples per node. ok is false when there would be
// fewer samples than nodes.
func (d Domain) ratio(ni int) (deltax, ratiof, ratiod float64, ok bool) {
	deltax = d.Span() / float64(ni)
	ratiof = deltax / d.Wavelength
	ratiod = float64(d.NX) / float64(ni+1)
	return deltax, ratiof, ratiod, ratiod >= 1
}

// setupDomain validates the inputs and searches for the node interval count.
// The result depends only on the sample count, span and wavelength.
func setupDomain(x []float64, wavelength float64) (Domain, error) {
	if len(x) < 2 {
		return Domain{}, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(x))
	}
	if !(wavelength > 0) || math.IsInf(wavelength, 0) {
		return Domain{}, fmt.Errorf("%w: got %v", ErrInvalidWavelength, wavelength)
	}
	if i := firstNonFinite(x); i >= 0 {
		return Domain{}, fmt.Errorf("%w: x[%d] = %v", ErrNonFinite, i, x[i])
	}

	d := Domain{
		XMin:       floats.Min(x),
		XMax:       floats.Max(x),
		NX:         len(x),
		Wavelength: wavelength,
	}
	if wavelength > d.Span() {
		return Domain{}, fmt.Errorf("%w: wavelength %v, span %v", ErrWavelengthExceedsSpan, wavelength, d.Span())
	}

	ni := minNodeIntervals
	var deltax float64
	for {
		ni++
		var ratiof float64
		var ok bool
		deltax, ratiof, _, ok = d.ratio(ni)
		if !ok {
			return Domain{}, fmt.Errorf("%w: %d samples, wavelength %v", ErrNodeSearch, d.NX, wavelength)
		}
		if ratiof <= maxIntervalRatio {
			break
		}
	}

	for {
		ni++
		dx, ratiof, ratiod, ok := d.ratio(ni)
		if !ok || ratiof > capIntervalRatio {
			ni--
			deltax, _, _, _ = d.ratio(ni)
			break
		}
		deltax = dx
		if ratiof >= refineIntervalRatio && ratiod <= refineSampleDensity {
			break
		}
	}

	d.M = ni
	d.DX = deltax
	return d, nil
}

// alphaFor returns the penalty weight for derivative order k. The wavelength
// is measured in node intervals so the cutoff does not depend on the units
// of x.
func alphaFor(wavelength, dx float64, k int) float64 {
	a := wavelength / (2 * math.Pi * dx)
	a *= a
	switch k {
	case 2:
		a *= a
	case 3:
		a *= a * a
	}
	return a
}

func firstNonFinite(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}
	return -1
}
