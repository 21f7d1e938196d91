package ring

import (
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ckksgo/ckksgo/utils/bignum"
)

// requireEuclidean checks n = q*d + r and deg r < deg d when r is non-zero.
func requireEuclidean[T any](t *testing.T, n, d, q, r Polynomial[T]) {
	require.True(t, q.Mul(d).Add(r).EqualTrimmed(n), "n != q*d + r: n=%v q=%v d=%v r=%v", n, q, d, r)
	require.True(t, r.IsZero() || r.Degree() < d.Degree(), "deg(r) >= deg(d): r=%v d=%v", r, d)
	require.Equal(t, n.Len(), r.Len())
}

func TestDivision(t *testing.T) {

	t.Run("Int64/Concrete", func(t *testing.T) {
		r := Numeric[int64]{}

		n := NewPolynomial(r, []int64{-3, 10, -5, 3})
		d := NewPolynomial(r, []int64{1, 3})

		q, rem, err := n.Div(d)
		require.NoError(t, err)
		require.Equal(t, []int64{4, -2, 1}, q.Coeffs())
		require.Equal(t, []int64{-7, 0, 0, 0}, rem.Coeffs())
		require.Equal(t, "-7x^0", rem.String())
		requireEuclidean(t, n, d, q, rem)
	})

	t.Run("Int64/Monic", func(t *testing.T) {
		r := Numeric[int64]{}
		sampler := NewSampler[int64](r, newTestPRNG(t, "division"), DrawInteger[int64](8))
		for i := 0; i < 64; i++ {
			n := sampler.ReadNew(1 + i%9)
			d := sampler.ReadMonicNew(1 + i%5)
			q, rem, err := n.Div(d)
			require.NoError(t, err)
			requireEuclidean(t, n, d, q, rem)
		}
	})

	t.Run("Int64/Inexact", func(t *testing.T) {
		r := Numeric[int64]{}
		_, _, err := NewPolynomial(r, []int64{1, 0, 1}).Div(NewPolynomial(r, []int64{1, 2}))
		require.ErrorIs(t, err, ErrInexactDivision)
	})

	t.Run("Int64/SmallerDividend", func(t *testing.T) {
		r := Numeric[int64]{}
		n := NewPolynomial(r, []int64{5, 1})
		d := NewPolynomial(r, []int64{1, 0, 2})
		q, rem, err := n.Div(d)
		require.NoError(t, err)
		require.Equal(t, []int64{0}, q.Coeffs())
		require.True(t, rem.Equal(n))
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		r := Numeric[float64]{}
		n := NewPolynomial(r, []float64{1, 2, 3})

		_, _, err := n.Div(NewPolynomial(r, []float64{0, 0}))
		require.ErrorIs(t, err, ErrDivisionByZero)

		_, _, err = n.Div(NewPolynomial(r, []float64{}))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("Overflow", func(t *testing.T) {
		r := Numeric[int64]{}
		_, _, err := NewPolynomial(r, []int64{math.MinInt64}).Div(NewPolynomial(r, []int64{-1}))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("NotAField", func(t *testing.T) {
		r := xorRing{}
		_, _, err := NewPolynomial[bool](r, []bool{true, true}).Div(NewPolynomial[bool](r, []bool{true}))
		require.ErrorIs(t, err, ErrNotAField)
	})

	t.Run("Float64/Constant", func(t *testing.T) {
		r := Numeric[float64]{}
		n := NewPolynomial(r, []float64{1, 2, 3})
		q, rem, err := n.Div(NewPolynomial(r, []float64{2}))
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 1, 1.5}, q.Coeffs())
		require.True(t, rem.IsZero())
	})

	t.Run("Float64/Monic", func(t *testing.T) {
		r := Numeric[float64]{}
		sampler := NewSampler[float64](r, newTestPRNG(t, "float"), DrawFloat(-1, 1))
		for i := 0; i < 32; i++ {
			n := sampler.ReadNew(1 + i%8)
			d := sampler.ReadMonicNew(1 + i%4)
			q, rem, err := n.Div(d)
			require.NoError(t, err)
			require.True(t, rem.IsZero() || rem.Degree() < d.Degree())
			diff := q.Mul(d).Add(rem).Sub(n)
			for _, c := range diff.Coeffs() {
				require.InDelta(t, 0, c, 1e-9)
			}
		}
	})

	t.Run("Rationals/Constant", func(t *testing.T) {
		r := Rationals{}
		n := NewPolynomial[*big.Rat](r, []*big.Rat{NewRational(1, 1), NewRational(-2, 5), NewRational(7, 3)})
		c := NewRational(3, 1)
		q, rem, err := n.Div(NewPolynomial[*big.Rat](r, []*big.Rat{c}))
		require.NoError(t, err)
		require.True(t, q.Equal(n.Scale(NewRational(1, 3))))
		require.True(t, rem.IsZero())
	})

	t.Run("Rationals/Random", func(t *testing.T) {
		r := Rationals{}
		sampler := NewSampler[*big.Rat](r, newTestPRNG(t, "rationals"), DrawRational(7))
		for i := 0; i < 32; i++ {
			n := sampler.ReadNew(1 + i%7)
			d := sampler.ReadNew(1 + i%4)
			if d.IsZero() {
				continue
			}
			q, rem, err := n.Div(d)
			require.NoError(t, err)
			requireEuclidean(t, n, d, q, rem)
		}
	})

	t.Run("ModularField/Random", func(t *testing.T) {
		m, err := NewModularField(testModulus)
		require.NoError(t, err)
		sampler := NewSampler[*uint256.Int](m, newTestPRNG(t, "modular-division"), m.Draw)
		for i := 0; i < 16; i++ {
			n := sampler.ReadNew(1 + i%6)
			d := sampler.ReadNew(1 + i%3)
			if d.IsZero() {
				continue
			}
			q, rem, err := n.Div(d)
			require.NoError(t, err)
			requireEuclidean(t, n, d, q, rem)

			if !n.IsZero() {
				require.Equal(t, n.Degree()+d.Degree(), n.Mul(d).Degree())
			}
		}
	})

	t.Run("BigComplex/Monic", func(t *testing.T) {
		r := NewBigComplex(128)
		toBig := func(x []complex128) (y []*bignum.Complex) {
			y = make([]*bignum.Complex, len(x))
			for i := range x {
				y[i] = bignum.ToComplex(x[i], r.Prec())
			}
			return
		}
		n := NewPolynomial[*bignum.Complex](r, toBig([]complex128{1 + 1i, -2, 3i, 4}))
		d := NewPolynomial[*bignum.Complex](r, toBig([]complex128{-1i, 1}))
		q, rem, err := n.Div(d)
		require.NoError(t, err)
		requireEuclidean(t, n, d, q, rem)
	})
}
