// Package matrix provides the small dense-matrix substrate the linear-decomposition
// oracle is built on: a bounds-checked Matrix interface, a row-major Dense
// implementation, and (in the matrix/ops subpackage) Householder QR and LU-based
// inversion kernels.
//
// This package intentionally stays narrow: it is not a general graph/matrix
// conversion library. It exists to back lindecomp.ReferenceBasis, which needs a
// square matrix it can QR-decompose and later invert to solve a triangular system.
package matrix
