// Package numeric provides the dense-vector primitives shared by the
// factorization trainers: dot products, in-place scaled addition, squared
// norms, squared distance, deterministic Gaussian initialization, and a
// symmetry-exploiting masked Gram accumulation.
//
// Dot and AddScaled are backed by gonum.org/v1/gonum/floats rather than
// hand-rolled loops; SqL2, SqL2Matrix and SqDistance are plain loops. The masked Gram
// accumulation and the seeded Gaussian initializer stay custom: both carry
// invariants (exact upper-triangle mirroring, bit-stable seeding across runs)
// that are part of this package's contract, not gonum's.
//
// None of these primitives allocate inside hot loops; callers provide
// output buffers where reuse matters.
package numeric
