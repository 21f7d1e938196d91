package ckks

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveQR(t *testing.T) {

	t.Run("Real", func(t *testing.T) {
		A := [][]complex128{
			{2, 1, -1},
			{-3, -1, 2},
			{-2, 1, 2},
		}
		b := []complex128{8, -11, -3}

		x, err := SolveQR(A, b)
		require.NoError(t, err)
		verifyTestVectors(t, []float64{2, 3, -1}, x, 1e-12)

		// inputs are left untouched
		require.Equal(t, []complex128{8, -11, -3}, b)
		require.Equal(t, complex128(2), A[0][0])
	})

	t.Run("Complex", func(t *testing.T) {
		A := [][]complex128{
			{1i, 2},
			{0, 1 - 1i},
		}
		want := []complex128{3 - 1i, 0.5i}
		b := []complex128{
			A[0][0]*want[0] + A[0][1]*want[1],
			A[1][0]*want[0] + A[1][1]*want[1],
		}

		x, err := SolveQR(A, b)
		require.NoError(t, err)
		verifyTestVectors(t, want, x, 1e-12)
	})

	t.Run("ZeroLeadingEntry", func(t *testing.T) {
		A := [][]complex128{
			{0, 1},
			{1, 0},
		}
		x, err := SolveQR(A, []complex128{5, 7})
		require.NoError(t, err)
		verifyTestVectors(t, []float64{7, 5}, x, 1e-12)
	})

	t.Run("InvalidLength", func(t *testing.T) {
		_, err := SolveQR(nil, nil)
		require.ErrorIs(t, err, ErrInvalidLength)

		_, err = SolveQR([][]complex128{{1, 0}, {0, 1}}, []complex128{1})
		require.ErrorIs(t, err, ErrInvalidLength)

		_, err = SolveQR([][]complex128{{1, 0}, {0}}, []complex128{1, 1})
		require.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("Singular", func(t *testing.T) {
		_, err := SolveQR([][]complex128{{1, 2}, {2, 4}}, []complex128{1, 1})
		require.ErrorIs(t, err, ErrSingularSystem)

		_, err = SolveQR([][]complex128{{0, 0}, {0, 0}}, []complex128{1, 1})
		require.ErrorIs(t, err, ErrSingularSystem)

		_, err = SolveQR(NewVandermonde([]complex128{1i, 1i, -1}), []complex128{1, 2, 3})
		require.ErrorIs(t, err, ErrSingularSystem)
	})

	t.Run("NonFinite", func(t *testing.T) {
		_, err := SolveQR([][]complex128{{1, 0}, {0, 1}}, []complex128{complex(math.Inf(1), 0), 1})
		require.ErrorIs(t, err, ErrNonFinite)
	})
}

func TestEmbeddingMatrix(t *testing.T) {

	for _, logM := range []int{2, 3, 5} {

		M := 1 << logM
		n := M >> 1

		V := embeddingMatrix(M)
		W := NewVandermonde(SlotRoots(GetRootsComplex128(M)))

		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				require.Less(t, cmplx.Abs(V[r][c]-W[r][c]), 1e-12)

				// V^H V = n I
				var s complex128
				for k := 0; k < n; k++ {
					s += cmplx.Conj(V[k][r]) * V[k][c]
				}

				want := complex128(0)
				if r == c {
					want = complex(float64(n), 0)
				}

				require.Less(t, cmplx.Abs(s-want), 1e-12)
			}
		}
	}
}

func TestRoots(t *testing.T) {

	M := 16

	roots := GetRootsComplex128(M)
	rootsBig := GetRootsBigComplex(M, 128)

	require.Len(t, roots, M+1)
	require.Len(t, rootsBig, M+1)

	for j := range roots {
		want := cmplx.Exp(complex(0, 2*math.Pi*float64(j)/float64(M)))
		require.Less(t, cmplx.Abs(roots[j]-want), 1e-15)
		require.Less(t, cmplx.Abs(rootsBig[j].Complex128()-want), 1e-15)
	}

	points := SlotRoots(roots)
	require.Len(t, points, M/2)
	for k := range points {
		require.Equal(t, roots[2*k+1], points[k])
	}
}
