package solve

import (
	"fmt"
	"math"
)

// DefaultEigenTol is the default off-diagonal convergence tolerance for Eigen.
const DefaultEigenTol = 1e-10

// DefaultEigenMaxIter is the default iteration budget for Eigen's Jacobi sweep.
const DefaultEigenMaxIter = 100

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix a
// (n x n), returning the eigenvalues and the matrix Q whose columns are the
// corresponding eigenvectors, so that a == Q * diag(eigenvalues) * Q^T.
// tol bounds the largest off-diagonal magnitude accepted as converged;
// maxIter caps the number of sweeps.
// Stage 1 (Validate): a must be square and symmetric within tol.
// Stage 2 (Prepare): working copy A of a, Q initialized to the identity.
// Stage 3 (Execute): repeatedly zero the largest off-diagonal pair via a
// Givens rotation, accumulating the rotation into Q.
// Complexity: O(n^2) time per rotation (pivot search), so O(n^4) per sweep
// and worst case O(maxIter*n^4); O(n^2) memory.
func Eigen(a [][]float64, tol float64, maxIter int) (eigenvalues []float64, q [][]float64, err error) {
	n := len(a)
	for i, row := range a {
		if len(row) != n {
			return nil, nil, fmt.Errorf("Eigen: non-square input: %w", ErrNonSquare)
		}
		for j := i + 1; j < n; j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol {
				return nil, nil, fmt.Errorf("Eigen: a[%d][%d]=%v a[%d][%d]=%v: %w", i, j, a[i][j], j, i, a[j][i], ErrNotSymmetric)
			}
		}
	}

	A := make([][]float64, n)
	q = make([][]float64, n)
	for i := 0; i < n; i++ {
		A[i] = append([]float64(nil), a[i]...)
		q[i] = make([]float64, n)
		q[i][i] = 1
	}

	// One sweep is n(n-1)/2 rotations, one per off-diagonal pair.
	rotationsPerSweep := n * (n - 1) / 2
	if rotationsPerSweep < 1 {
		rotationsPerSweep = 1
	}
	maxRotations := maxIter * rotationsPerSweep

	var iter int
	for iter = 0; iter < maxRotations; iter++ {
		// Find the largest off-diagonal |A[p][q]|.
		maxOff, p, qIdx := 0.0, 0, 1
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(A[i][j]); off > maxOff {
					maxOff, p, qIdx = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		// Rotation angle for the (p, qIdx) pivot; app/aqq/apq are fixed
		// values for this sweep and are never mutated by the update loop
		// below (they are not aliases into A).
		app, aqq, apq := A[p][p], A[qIdx][qIdx], A[p][qIdx]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		// Apply the rotation to every other row/column.
		for i := 0; i < n; i++ {
			if i == p || i == qIdx {
				continue
			}
			aip, aiq := A[i][p], A[i][qIdx]
			A[i][p], A[p][i] = c*aip-s*aiq, c*aip-s*aiq
			A[i][qIdx], A[qIdx][i] = s*aip+c*aiq, s*aip+c*aiq
		}
		A[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[qIdx][qIdx] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p][qIdx], A[qIdx][p] = 0, 0

		// Accumulate the rotation into Q.
		for i := 0; i < n; i++ {
			qip, qiq := q[i][p], q[i][qIdx]
			q[i][p] = c*qip - s*qiq
			q[i][qIdx] = s*qip + c*qiq
		}
	}
	if iter == maxRotations {
		return nil, nil, fmt.Errorf("Eigen: %d sweeps: %w", maxIter, ErrEigenFailed)
	}

	eigenvalues = make([]float64, n)
	for i := 0; i < n; i++ {
		eigenvalues[i] = A[i][i]
	}

	return eigenvalues, q, nil
}

// GMatrix computes the k x k matrix G such that G^T*G == a (a must be
// symmetric positive-definite), by eigendecomposing a and scaling each
// eigenvector row by the square root of its eigenvalue. Its rows are the k
// synthetic training points that reproduce the fixed Q^T*Q + lambda*I block
// exactly inside a single RR1 cycle.
// Stage 1: eigendecompose a = Q * diag(eigenvalues) * Q^T.
// Stage 2: every eigenvalue must be >= 0 (within -tol) for a real square
// root to exist; a is PD by construction (Q^T*Q + lambda*I with lambda>0),
// so a negative eigenvalue indicates caller misuse, not expected data.
// Stage 3: G[row k] = sqrt(eigenvalues[k]) * Q[:,k].
// Complexity: dominated by Eigen, O(n^4) per sweep.
func GMatrix(a [][]float64, tol float64, maxIter int) ([][]float64, error) {
	eigenvalues, q, err := Eigen(a, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("GMatrix: %w", err)
	}

	n := len(a)
	g := make([][]float64, n)
	for k := 0; k < n; k++ {
		lambda := eigenvalues[k]
		if lambda < -tol {
			return nil, fmt.Errorf("GMatrix: negative eigenvalue %v at %d: %w", lambda, k, ErrNotSymmetric)
		}
		if lambda < 0 {
			lambda = 0
		}
		sqrtLambda := math.Sqrt(lambda)
		g[k] = make([]float64, n)
		for col := 0; col < n; col++ {
			g[k][col] = sqrtLambda * q[col][k]
		}
	}

	return g, nil
}
