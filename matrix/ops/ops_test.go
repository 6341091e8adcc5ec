// Package ops_test contains unit tests for the QR, LU, and Inverse matrix
// operations built on top of the matrix package.
package ops_test

import (
	"math"
	"testing"

	"github.com/mfansler/cnavg-go/matrix"
	"github.com/mfansler/cnavg-go/matrix/ops"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	n := len(rows)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}
	return m
}

func mul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows())
	out, err := matrix.NewDense(a.Rows(), b.Cols())
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0.0
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(t, err)
				bv, err := b.At(k, j)
				require.NoError(t, err)
				sum += av * bv
			}
			require.NoError(t, out.Set(i, j, sum))
		}
	}
	return out
}

func requireApproxEqual(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, wv, gv, tol)
		}
	}
}

// TestQR_RejectsNonSquare ensures QR refuses rectangular input.
func TestQR_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, _, err = ops.QR(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestQR_ReconstructsOriginal checks that Q*R recovers the input matrix.
func TestQR_ReconstructsOriginal(t *testing.T) {
	m := square(t, [][]float64{
		{4, 1, 2},
		{1, 3, 0},
		{2, 0, 5},
	})

	Q, R, err := ops.QR(m)
	require.NoError(t, err)

	got := mul(t, Q, R)
	requireApproxEqual(t, m, got, 1e-8)
}

// TestLU_RejectsNonSquare ensures LU refuses rectangular input.
func TestLU_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	_, _, err = ops.LU(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLU_ReconstructsOriginal checks that L*U recovers the input matrix.
func TestLU_ReconstructsOriginal(t *testing.T) {
	m := square(t, [][]float64{
		{2, 1},
		{4, 3},
	})

	L, U, err := ops.LU(m)
	require.NoError(t, err)

	got := mul(t, L, U)
	requireApproxEqual(t, m, got, 1e-8)
}

// TestInverse_RejectsNonSquare ensures Inverse refuses rectangular input.
func TestInverse_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = ops.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse_ProductIsIdentity checks that m * Inverse(m) ≈ I.
func TestInverse_ProductIsIdentity(t *testing.T) {
	m := square(t, [][]float64{
		{4, 7},
		{2, 6},
	})

	inv, err := ops.Inverse(m)
	require.NoError(t, err)

	got := mul(t, m, inv)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := got.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.True(t, math.Abs(v-want) < 1e-8)
		}
	}
}
