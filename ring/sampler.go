package ring

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/ckksgo/ckksgo/utils/sampling"
)

// Sampler draws random polynomials whose coefficients are
// read from a PRNG through a coefficient drawing function.
type Sampler[T any] struct {
	ring Ring[T]
	prng sampling.PRNG
	draw func(prng sampling.PRNG) T
}

// NewSampler returns a Sampler over r drawing each coefficient with draw.
func NewSampler[T any](r Ring[T], prng sampling.PRNG, draw func(prng sampling.PRNG) T) *Sampler[T] {
	return &Sampler[T]{ring: r, prng: prng, draw: draw}
}

// ReadNew returns a new polynomial with n random coefficients.
func (s *Sampler[T]) ReadNew(n int) Polynomial[T] {
	coeffs := make([]T, n)
	for i := range coeffs {
		coeffs[i] = s.draw(s.prng)
	}
	return NewPolynomial(s.ring, coeffs)
}

// ReadMonicNew returns a new polynomial with n coefficients, the last one set to one.
// Division by a monic polynomial is exact over any ring.
func (s *Sampler[T]) ReadMonicNew(n int) (p Polynomial[T]) {
	p = s.ReadNew(n)
	if n > 0 {
		p.Terms[n-1].Coefficient = s.ring.One()
	}
	return
}

// DrawInteger returns a drawing function of integers uniform in [-bound, bound].
func DrawInteger[T constraints.Signed](bound T) func(prng sampling.PRNG) T {
	return func(prng sampling.PRNG) T {
		return T(sampling.RandInt64(prng, int64(bound)))
	}
}

// DrawFloat returns a drawing function of floats uniform in [min, max].
func DrawFloat(min, max float64) func(prng sampling.PRNG) float64 {
	return func(prng sampling.PRNG) float64 {
		return sampling.RandFloat64(prng, min, max)
	}
}

// DrawComplex returns a drawing function of complex numbers with real
// and imaginary parts uniform in [min, max].
func DrawComplex(min, max float64) func(prng sampling.PRNG) complex128 {
	return func(prng sampling.PRNG) complex128 {
		return sampling.RandComplex128(prng, min, max)
	}
}

// DrawRational returns a drawing function of rationals a/b
// with a in [-bound, bound] and b in [1, bound].
func DrawRational(bound int64) func(prng sampling.PRNG) *big.Rat {
	return func(prng sampling.PRNG) *big.Rat {
		a := sampling.RandInt64(prng, bound)
		b := int64(sampling.RandUint64(prng)%uint64(bound)) + 1
		return big.NewRat(a, b)
	}
}
