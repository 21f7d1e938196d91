package ckks

import (
	"math"
	"math/big"

	"github.com/ckksgo/ckksgo/utils/bignum"
)

// GetRootsBigComplex returns the roots e^{2*pi*i/NthRoot *j} for 0 <= j <= NthRoot
// with prec bits of precision. NthRoot must be a power of two greater than or equal to 4.
func GetRootsBigComplex(NthRoot int, prec uint) (roots []*bignum.Complex) {

	roots = make([]*bignum.Complex, NthRoot+1)

	quarm := NthRoot >> 2

	Pi := bignum.Pi(prec)

	e2ipi := bignum.NewFloat(2, prec)
	e2ipi.Mul(e2ipi, Pi)
	e2ipi.Quo(e2ipi, bignum.NewFloat(float64(NthRoot), prec))

	angle := new(big.Float).SetPrec(prec)

	roots[0] = &bignum.Complex{bignum.NewFloat(1, prec), bignum.NewFloat(0, prec)}

	for i := 1; i < quarm; i++ {
		angle.Mul(e2ipi, bignum.NewFloat(float64(i), prec))
		roots[i] = &bignum.Complex{bignum.Cos(angle), nil}
	}

	for i := 1; i < quarm; i++ {
		roots[quarm-i][1] = new(big.Float).Set(roots[i].Real())
	}

	roots[quarm] = &bignum.Complex{bignum.NewFloat(0, prec), bignum.NewFloat(1, prec)}

	for i := 1; i < quarm+1; i++ {
		roots[i+1*quarm] = &bignum.Complex{new(big.Float).Neg(roots[quarm-i].Real()), new(big.Float).Set(roots[quarm-i].Imag())}
		roots[i+2*quarm] = &bignum.Complex{new(big.Float).Neg(roots[i].Real()), new(big.Float).Neg(roots[i].Imag())}
		roots[i+3*quarm] = &bignum.Complex{new(big.Float).Set(roots[quarm-i].Real()), new(big.Float).Neg(roots[quarm-i].Imag())}
	}

	roots[NthRoot] = roots[0]

	return
}

// GetRootsComplex128 returns the roots e^{2*pi*i/NthRoot *j} for 0 <= j <= NthRoot.
// NthRoot must be a power of two greater than or equal to 4.
func GetRootsComplex128(NthRoot int) (roots []complex128) {
	roots = make([]complex128, NthRoot+1)

	quarm := NthRoot >> 2

	angle := 2 * math.Pi / float64(NthRoot)

	for i := 0; i < quarm; i++ {
		roots[i] = complex(math.Cos(angle*float64(i)), 0)
	}

	for i := 0; i < quarm; i++ {
		roots[quarm-i] += complex(0, real(roots[i]))
	}

	for i := 1; i < quarm+1; i++ {
		roots[i+1*quarm] = complex(-real(roots[quarm-i]), imag(roots[quarm-i]))
		roots[i+2*quarm] = -roots[i]
		roots[i+3*quarm] = complex(real(roots[quarm-i]), -imag(roots[quarm-i]))
	}

	roots[NthRoot] = roots[0]

	return
}

// SlotRoots returns the n = M/2 evaluation points xi^{2k+1}, 0 <= k < n,
// where xi = e^{2*pi*i/M} and roots is the table returned by GetRootsComplex128(M).
func SlotRoots(roots []complex128) (points []complex128) {
	m := len(roots) - 1
	points = make([]complex128, m>>1)
	for k := range points {
		points[k] = roots[2*k+1]
	}
	return
}
