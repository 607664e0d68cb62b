// Package banded factors and solves square band matrices.
//
// [Factor] performs Gaussian elimination with partial pivoting where the
// pivot search is limited to the kl sub-diagonals of the input, so the cost
// grows linearly with the matrix order. The factors are held in band storage
// in the layout used by LAPACK's gbtrf: U occupies kl+ku super-diagonals to
// absorb fill-in from row interchanges and the multipliers of L stay in the
// row where they were computed.
//
// An [LU] is read-only after construction. [LU.Solve] allocates its own
// work vector, so one factorization can serve concurrent solves.
package banded
