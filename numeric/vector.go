package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dot returns the inner product sum_k x[k]*y[k].
// Stage 1 (Validate): x and y must share length.
// Stage 2 (Execute): delegate to gonum/floats for the reduction.
// Complexity: O(len(x)) time, O(1) space.
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Dot: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}

	return floats.Dot(x, y), nil
}

// AddScaled performs the AXPY update target += s*v in place.
// Stage 1 (Validate): target and v must share length.
// Stage 2 (Execute): target[k] += s*v[k] for every k.
// Complexity: O(len(v)) time, O(1) space (no allocation).
func AddScaled(target, v []float64, s float64) error {
	if len(target) != len(v) {
		return fmt.Errorf("AddScaled: len(target)=%d len(v)=%d: %w", len(target), len(v), ErrLengthMismatch)
	}

	// floats.AddScaled is gonum's BLAS-style AXPY: target += s*v, writing
	// into the caller-owned target buffer with no allocation.
	floats.AddScaled(target, s, v)

	return nil
}

// SqL2 returns the squared L2 norm sum_k v[k]^2.
// Complexity: O(len(v)) time, O(1) space.
func SqL2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return sum
}

// SqL2Matrix returns the squared Frobenius norm of a row-major matrix,
// i.e. the sum of SqL2 over every row.
// Complexity: O(rows*cols) time, O(1) space.
func SqL2Matrix(m [][]float64) float64 {
	var sum float64
	for _, row := range m {
		sum += SqL2(row)
	}

	return sum
}

// SqDistance returns sum_k (v[k]-w[k])^2.
// Stage 1 (Validate): v and w must share length.
// Stage 2 (Execute): accumulate squared differences.
// Complexity: O(len(v)) time, O(1) space.
func SqDistance(v, w []float64) (float64, error) {
	if len(v) != len(w) {
		return 0, fmt.Errorf("SqDistance: len(v)=%d len(w)=%d: %w", len(v), len(w), ErrLengthMismatch)
	}

	var sum, d float64
	for i := range v {
		d = v[i] - w[i]
		sum += d * d
	}

	return sum, nil
}
