package solve

import "fmt"

// LU performs Doolittle LU decomposition on the square matrix a (n x n).
// It returns L (unit lower triangular) and U (upper triangular) such that
// L*U == a, allocating fresh n x n matrices for both.
// Stage 1 (Validate): a must be square.
// Stage 2 (Prepare): allocate L (with unit diagonal) and U.
// Stage 3 (Execute): classic Doolittle recurrence.
// Complexity: O(n^3) time, O(n^2) memory.
func LU(a [][]float64) (l, u [][]float64, err error) {
	n := len(a)
	for _, row := range a {
		if len(row) != n {
			return nil, nil, fmt.Errorf("LU: non-square input: %w", ErrNonSquare)
		}
	}

	l = make([][]float64, n)
	u = make([][]float64, n)
	for i := 0; i < n; i++ {
		l[i] = make([]float64, n)
		u[i] = make([]float64, n)
		l[i][i] = 1
	}

	var sum float64
	for i := 0; i < n; i++ {
		// Row i of U for columns j >= i.
		for j := i; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l[i][k] * u[k][j]
			}
			u[i][j] = a[i][j] - sum
		}
		// Column i of L for rows j > i.
		for j := i + 1; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l[j][k] * u[k][i]
			}
			if u[i][i] == 0 {
				return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
			}
			l[j][i] = (a[j][i] - sum) / u[i][i]
		}
	}

	return l, u, nil
}

// Solve returns x such that a*x == b, via Doolittle LU decomposition
// followed by forward substitution (L*y = b) and backward substitution
// (U*x = y).
// Stage 1 (Validate): a must be square and match len(b).
// Stage 2 (Decompose): a = L*U.
// Stage 3 (Execute): forward then backward substitution.
// Complexity: O(n^3) time (dominated by decomposition), O(n) extra memory.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if len(b) != n {
		return nil, fmt.Errorf("Solve: len(a)=%d len(b)=%d: %w", n, len(b), ErrDimensionMismatch)
	}

	l, u, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= l[i][k] * y[k]
		}
		y[i] = sum // l[i][i] == 1
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= u[i][k] * x[k]
		}
		if u[i][i] == 0 {
			return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = sum / u[i][i]
	}

	return x, nil
}
