package lindecomp

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfansler/cnavg-go/config"
	"github.com/mfansler/cnavg-go/edgeflow"
	"github.com/mfansler/cnavg-go/matrix"
	"github.com/mfansler/cnavg-go/matrix/ops"
)

// ErrEmptyBasis indicates ReferenceBasis was constructed with no reference cycles.
var ErrEmptyBasis = errors.New("lindecomp: empty reference basis")

// ReferenceBasis holds a fixed set of reference cycles projected into a
// common coordinate space, along with the QR decomposition of their Gram
// matrix, so CanExplain can repeatedly test candidate cycles against the
// same basis without re-deriving it each time.
//
// The basis matrix itself is, in general, not square (elements × cycles),
// and matrix/ops.QR only handles square input. CanExplain instead solves the
// normal equations basisᵀ·basis·w = basisᵀ·v, whose coefficient matrix is
// square by construction; QR and Inverse (both from matrix/ops) are applied
// to that square Gram matrix.
type ReferenceBasis struct {
	mapping *Mapping
	basis   [][]float64 // basis[col] is the unitary vector of reference cycle col, length mapping.Len()
	gramQ   matrix.Matrix
	gramR   matrix.Matrix
	rInv    matrix.Matrix
}

// NewReferenceBasis builds a ReferenceBasis from cycles.
func NewReferenceBasis(cycles []edgeflow.Cycle) (*ReferenceBasis, error) {
	if len(cycles) == 0 {
		return nil, ErrEmptyBasis
	}
	mapping := NewMapping(cycles)
	basis := make([][]float64, len(cycles))
	for i, c := range cycles {
		v, ok := mapping.UnitaryVector(c)
		if !ok {
			// cannot happen: mapping was built from exactly these cycles.
			return nil, fmt.Errorf("lindecomp: internal error building basis vector %d", i)
		}
		basis[i] = v
	}

	k := len(cycles)
	gram, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("lindecomp: %w", err)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			_ = gram.Set(i, j, dot(basis[i], basis[j]))
		}
	}

	Q, R, err := ops.QR(gram)
	if err != nil {
		return nil, fmt.Errorf("lindecomp: QR(gram): %w", err)
	}
	rInv, err := ops.Inverse(R)
	if err != nil {
		return nil, fmt.Errorf("lindecomp: Inverse(R): %w", err)
	}

	return &ReferenceBasis{mapping: mapping, basis: basis, gramQ: Q, gramR: R, rInv: rInv}, nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// CanExplain reports whether cycle is a non-negative integer combination of
// the reference basis: every element cycle touches must be known to the
// basis, the least-squares solution over the basis must reconstruct cycle
// (the residual's Euclidean norm at most RoundingError times the norm of
// cycle's vector), and every combination weight must round
// to a non-negative integer within RoundingError.
func (rb *ReferenceBasis) CanExplain(cycle edgeflow.Cycle) (bool, error) {
	v, ok := rb.mapping.UnitaryVector(cycle)
	if !ok {
		return false, nil
	}

	k := len(rb.basis)
	rhs, err := matrix.NewDense(k, 1)
	if err != nil {
		return false, fmt.Errorf("lindecomp: %w", err)
	}
	for i := 0; i < k; i++ {
		_ = rhs.Set(i, 0, dot(rb.basis[i], v))
	}

	// Solve gram·w = rhs via w = Rinv · (Qᵀ · rhs).
	qtRhs := make([]float64, k)
	for i := 0; i < k; i++ {
		sum := 0.0
		for j := 0; j < k; j++ {
			qij, _ := rb.gramQ.At(j, i) // Qᵀ[i][j] == Q[j][i]
			rj, _ := rhs.At(j, 0)
			sum += qij * rj
		}
		qtRhs[i] = sum
	}
	w := make([]float64, k)
	for i := 0; i < k; i++ {
		sum := 0.0
		for j := 0; j < k; j++ {
			rij, _ := rb.rInv.At(i, j)
			sum += rij * qtRhs[j]
		}
		w[i] = sum
	}

	// Reconstruct and verify exact (within rounding error) reproduction of v.
	recon := make([]float64, rb.mapping.Len())
	for col, coeff := range w {
		for row, val := range rb.basis[col] {
			recon[row] += coeff * val
		}
	}
	resid, norm := 0.0, 0.0
	for i := range v {
		d := recon[i] - v[i]
		resid += d * d
		norm += v[i] * v[i]
	}
	if math.Sqrt(resid) > config.RoundingError*math.Sqrt(norm) {
		// Residual too large: v is not in the span of the basis at all,
		// only near it in a least-squares sense.
		return false, nil
	}

	for _, coeff := range w {
		rounded := math.Round(coeff)
		if rounded < 0 {
			return false, nil
		}
		if math.Abs(coeff-rounded) > config.RoundingError {
			return false, nil
		}
	}
	return true, nil
}
