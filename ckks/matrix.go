package ckks

import (
	"fmt"
	"math"
	"math/cmplx"
)

// singularTolerance is the relative magnitude below which a diagonal
// entry of R is considered zero.
const singularTolerance = 1e-12

// NewVandermonde returns the n x n matrix V[r][c] = points[r]^c.
func NewVandermonde(points []complex128) (V [][]complex128) {
	n := len(points)
	V = make([][]complex128, n)
	for r := range V {
		V[r] = make([]complex128, n)
		x := complex(1, 0)
		for c := range V[r] {
			V[r][c] = x
			x *= points[r]
		}
	}
	return
}

// embeddingMatrix returns the Vandermonde matrix of the slot roots,
// V[r][c] = xi^{(2r+1)c}, with every power read from the roots table.
func embeddingMatrix(M int) (V [][]complex128) {
	roots := GetRootsComplex128(M)
	n := M >> 1
	V = make([][]complex128, n)
	for r := range V {
		V[r] = make([]complex128, n)
		for c := range V[r] {
			V[r][c] = roots[((2*r+1)*c)%M]
		}
	}
	return
}

// SolveQR solves A x = b with a Householder QR decomposition of A.
// A must be square with len(b) rows. A and b are left untouched.
//
// Returns ErrInvalidLength on a dimension mismatch, ErrSingularSystem if a
// diagonal entry of R is zero relative to the largest one, and ErrNonFinite
// if the solution contains NaN or Inf.
func SolveQR(A [][]complex128, b []complex128) (x []complex128, err error) {

	n := len(A)

	if n == 0 || len(b) != n {
		return nil, fmt.Errorf("cannot SolveQR: len(A)=%d, len(b)=%d: %w", n, len(b), ErrInvalidLength)
	}

	R := make([][]complex128, n)
	for i := range A {
		if len(A[i]) != n {
			return nil, fmt.Errorf("cannot SolveQR: len(A[%d])=%d != %d: %w", i, len(A[i]), n, ErrInvalidLength)
		}
		R[i] = make([]complex128, n)
		copy(R[i], A[i])
	}

	y := make([]complex128, n)
	copy(y, b)

	diag := make([]float64, n)
	v := make([]complex128, n)

	for k := 0; k < n; k++ {

		var norm float64
		for i := k; i < n; i++ {
			norm = math.Hypot(norm, cmplx.Abs(R[i][k]))
		}

		if norm == 0 {
			continue
		}

		diag[k] = norm

		// v = x - alpha e_1 with alpha = -e^{i arg(x_0)} ||x||
		phase := complex(1, 0)
		if x0 := R[k][k]; x0 != 0 {
			phase = x0 / complex(cmplx.Abs(x0), 0)
		}

		alpha := -phase * complex(norm, 0)

		var vNorm2 float64
		for i := k; i < n; i++ {
			v[i] = R[i][k]
			if i == k {
				v[i] -= alpha
			}
			vNorm2 += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}

		// H = I - 2 v v^H / (v^H v)
		for j := k; j < n; j++ {
			reflect(v[k:], R[k:], j, vNorm2)
		}

		var s complex128
		for i := k; i < n; i++ {
			s += cmplx.Conj(v[i]) * y[i]
		}
		s *= complex(2/vNorm2, 0)
		for i := k; i < n; i++ {
			y[i] -= v[i] * s
		}
	}

	var maxDiag float64
	for k := range diag {
		maxDiag = math.Max(maxDiag, diag[k])
	}

	for k := range diag {
		if maxDiag == 0 || diag[k] <= singularTolerance*maxDiag {
			return nil, fmt.Errorf("cannot SolveQR: |R[%d][%d]| = %g: %w", k, k, diag[k], ErrSingularSystem)
		}
	}

	x = make([]complex128, n)
	for k := n - 1; k >= 0; k-- {
		s := y[k]
		for j := k + 1; j < n; j++ {
			s -= R[k][j] * x[j]
		}
		x[k] = s / R[k][k]

		if cmplx.IsNaN(x[k]) || cmplx.IsInf(x[k]) {
			return nil, fmt.Errorf("cannot SolveQR: x[%d] = %v: %w", k, x[k], ErrNonFinite)
		}
	}

	return
}

// reflect applies I - 2 v v^H / vNorm2 to the column j of the rows M.
func reflect(v []complex128, M [][]complex128, j int, vNorm2 float64) {
	var s complex128
	for i := range v {
		s += cmplx.Conj(v[i]) * M[i][j]
	}
	s *= complex(2/vNorm2, 0)
	for i := range v {
		M[i][j] -= v[i] * s
	}
}
