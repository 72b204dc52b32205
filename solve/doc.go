// Package solve provides the two dense linear-algebra routines the training
// engine needs: an LU-based linear solve (used by ImplicitALS's per-row
// normal-equation solve) and a Jacobi eigendecomposition of a symmetric
// positive-definite matrix (used by FastALS to build the G matrix that
// encodes the fixed ridge/negative-feedback block in k synthetic training
// points).
//
// Both routines use a plain Doolittle LU decomposition and a classical
// Jacobi rotation sweep respectively, operating directly on [][]float64 and
// exposing the forward/backward substitution solve the trainers actually
// need instead of a full matrix inverse.
package solve
