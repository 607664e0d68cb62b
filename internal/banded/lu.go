package banded

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular is returned when a pivot column has no nonzero candidate
	// within the band.
	ErrSingular = errors.New("banded: singular matrix")
	// ErrNotSquare is returned for non-square input.
	ErrNotSquare = errors.New("banded: matrix is not square")
	// ErrDimensionMismatch is returned when a right-hand side does not match
	// the factorization order.
	ErrDimensionMismatch = errors.New("banded: dimension mismatch")
)

// LU is a partial-pivot LU factorization of a square band matrix.
type LU struct {
	n      int
	kl, ku int
	// ab holds row i, column j at ab[i*ld+j-i+kl] for i-kl <= j <= i+kl+ku.
	ab   []float64
	ld   int
	ipiv []int
}

// Factor computes the LU factorization of a. The pivot for column j is chosen
// among rows j..j+kl only. A column whose candidates are all exactly zero
// yields ErrSingular and no factorization.
func Factor(a mat.Banded) (*LU, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	kl, ku := a.Bandwidth()

	lu := &LU{
		n:    r,
		kl:   kl,
		ku:   ku,
		ld:   2*kl + ku + 1,
		ipiv: make([]int, r),
	}
	lu.ab = make([]float64, r*lu.ld)
	for i := range r {
		lo := max(0, i-kl)
		hi := min(r-1, i+ku)
		for j := lo; j <= hi; j++ {
			lu.set(i, j, a.At(i, j))
		}
	}

	if err := lu.factor(); err != nil {
		return nil, err
	}
	return lu, nil
}

func (lu *LU) at(i, j int) float64 {
	return lu.ab[i*lu.ld+j-i+lu.kl]
}

func (lu *LU) set(i, j int, v float64) {
	lu.ab[i*lu.ld+j-i+lu.kl] = v
}

func (lu *LU) factor() error {
	n, kl := lu.n, lu.kl
	width := kl + lu.ku

	for j := range n {
		last := min(n-1, j+kl)

		p := j
		t := math.Abs(lu.at(j, j))
		for i := j + 1; i <= last; i++ {
			if v := math.Abs(lu.at(i, j)); v > t {
				p = i
				t = v
			}
		}
		lu.ipiv[j] = p

		if lu.at(p, j) == 0 {
			return fmt.Errorf("%w: zero pivot in column %d", ErrSingular, j)
		}

		// Row p may carry fill-in up to column j+kl+ku; both rows have room
		// for it in band storage.
		right := min(n-1, j+width)
		if p != j {
			for c := j; c <= right; c++ {
				x, y := lu.at(j, c), lu.at(p, c)
				lu.set(j, c, y)
				lu.set(p, c, x)
			}
		}

		recp := 1 / lu.at(j, j)
		for i := j + 1; i <= last; i++ {
			m := lu.at(i, j) * recp
			lu.set(i, j, m)
			if m == 0 {
				continue
			}
			for c := j + 1; c <= right; c++ {
				lu.set(i, c, lu.at(i, c)-m*lu.at(j, c))
			}
		}
	}
	return nil
}

// Len returns the order of the factorized matrix.
func (lu *LU) Len() int { return lu.n }

// Bandwidth returns the lower and upper bandwidths of the factorized matrix.
func (lu *LU) Bandwidth() (kl, ku int) { return lu.kl, lu.ku }

// Pivots returns a copy of the row interchanges: row j was swapped with row
// Pivots()[j] while eliminating column j.
func (lu *LU) Pivots() []int {
	out := make([]int, len(lu.ipiv))
	copy(out, lu.ipiv)
	return out
}

// Solve returns x with A*x = b.
func (lu *LU) Solve(b mat.Vector) (*mat.VecDense, error) {
	if b.Len() != lu.n {
		return nil, fmt.Errorf("%w: rhs length %d, want %d", ErrDimensionMismatch, b.Len(), lu.n)
	}
	n, kl := lu.n, lu.kl
	width := kl + lu.ku

	x := make([]float64, n)
	for i := range x {
		x[i] = b.AtVec(i)
	}

	// Forward elimination with L, applying interchanges in factor order.
	for j := range n {
		if p := lu.ipiv[j]; p != j {
			x[j], x[p] = x[p], x[j]
		}
		xj := x[j]
		if xj == 0 {
			continue
		}
		last := min(n-1, j+kl)
		for i := j + 1; i <= last; i++ {
			x[i] -= lu.at(i, j) * xj
		}
	}

	// Back substitution with U.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		right := min(n-1, i+width)
		for c := i + 1; c <= right; c++ {
			sum -= lu.at(i, c) * x[c]
		}
		x[i] = sum / lu.at(i, i)
	}

	return mat.NewVecDense(n, x), nil
}
