package bspline

import (
	"errors"

	"github.com/cwbudde/algo-bspline/internal/banded"
)

// Setup errors. No matrices are built when New returns one of these.
var (
	ErrTooFewSamples            = errors.New("bspline: at least two samples are required")
	ErrInvalidWavelength        = errors.New("bspline: wavelength must be positive and finite")
	ErrNonFinite                = errors.New("bspline: samples must be finite")
	ErrWavelengthExceedsSpan    = errors.New("bspline: wavelength exceeds sample domain span")
	ErrNodeSearch               = errors.New("bspline: too few samples for a node spacing")
	ErrInvalidDerivativeOrder   = errors.New("bspline: derivative order must be 1, 2 or 3")
	ErrInvalidBoundaryCondition = errors.New("bspline: unknown boundary condition")
)

// ErrSingular reports that the combined penalty and data matrix could not be
// factored. The configuration is unusable.
var ErrSingular = banded.ErrSingular

// ErrLengthMismatch is returned by Apply when y is not aligned with the
// abscissas given to New.
var ErrLengthMismatch = errors.New("bspline: y length does not match sample count")
