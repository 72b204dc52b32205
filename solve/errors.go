package solve

import "errors"

var (
	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("solve: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("solve: dimension mismatch")

	// ErrSingular is returned when a zero pivot is encountered during LU
	// decomposition or back-substitution. In this engine that only happens
	// with lambda == 0 and an empty interaction set; callers should surface
	// it as a degeneracy, not silently produce NaNs.
	ErrSingular = errors.New("solve: singular matrix")

	// ErrNotSymmetric is returned when Eigen is given an asymmetric matrix.
	ErrNotSymmetric = errors.New("solve: matrix is not symmetric")

	// ErrEigenFailed indicates the Jacobi sweep did not converge within the
	// configured iteration budget.
	ErrEigenFailed = errors.New("solve: eigen decomposition did not converge")
)
