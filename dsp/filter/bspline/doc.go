// Package bspline implements a cubic B-spline smoothing filter.
//
// A [Smoother] fits a curve through one-dimensional samples with a cubic
// B-spline basis on evenly spaced nodes. The coefficients minimise the
// squared misfit to the data plus a derivative penalty whose weight is set by
// a cutoff wavelength, so the fit behaves as a low-pass filter: variation
// with a period well above the cutoff passes, variation well below it is
// attenuated.
//
// Setup is done once per set of abscissas and cutoff wavelength:
//
//	s, err := bspline.New(x, 20)
//	if err != nil {
//		return err
//	}
//
// [New] chooses the node spacing, assembles the banded penalty and data
// matrices and factors their sum. Every [Smoother.Apply] call then builds a
// right-hand side for one y array and solves against the shared
// factorization:
//
//	sp, err := s.Apply(y)
//	curve := sp.Curve()      // fitted values at the nodes
//	v := sp.Evaluate(12.5)   // fitted value anywhere
//
// The penalty order ([WithDerivativeOrder]) selects first, second or third
// derivative smoothing; higher orders give a sharper transition between the
// pass and stop bands. The boundary condition ([WithBoundaryCondition])
// constrains the curve at both ends of the domain; the default forces zero
// slope there.
//
// A Smoother is immutable after construction and may be shared by
// goroutines. Each [Spline] owns its coefficients.
package bspline
