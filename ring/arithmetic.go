package ring

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"

	"github.com/ckksgo/ckksgo/utils/bignum"
	"github.com/ckksgo/ckksgo/utils/sampling"
)

// Number is the set of Go built-in numeric types usable as coefficients.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Numeric is the arithmetic of the built-in numeric types.
// Add, Sub and Mul wrap around on integer overflow, as Go integers do.
// For integer types, Quo is exact division and fails if b does not divide a
// or if the quotient overflows.
type Numeric[T Number] struct{}

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// One returns 1.
func (Numeric[T]) One() T { return 1 }

// Add returns a + b.
func (Numeric[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Numeric[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Numeric[T]) Mul(a, b T) T { return a * b }

// IsZero returns true if a == 0.
func (Numeric[T]) IsZero(a T) bool { return a == 0 }

// Equal returns true if a == b.
func (Numeric[T]) Equal(a, b T) bool { return a == b }

// Quo returns a / b.
func (n Numeric[T]) Quo(a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	q := a / b

	if n.integer() && a != 0 && b != 1 && q == a {
		return 0, fmt.Errorf("%v / %v: %w", a, b, ErrOverflow)
	}

	if n.integer() && q*b != a {
		return 0, fmt.Errorf("%v / %v: %w", a, b, ErrInexactDivision)
	}

	return q, nil
}

// integer returns true if T truncates on division.
func (Numeric[T]) integer() bool {
	var one, two T = 1, 2
	return one/two == 0
}

// Rationals is the exact arithmetic of *big.Rat.
type Rationals struct{}

// NewRational returns a/b as a *big.Rat.
func NewRational(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}

// Zero returns 0.
func (Rationals) Zero() *big.Rat { return new(big.Rat) }

// One returns 1.
func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b.
func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b.
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b.
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// IsZero returns true if a == 0.
func (Rationals) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// Equal returns true if a == b.
func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Quo returns a / b.
func (Rationals) Quo(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// BigComplex is the arithmetic of arbitrary precision complex numbers.
// All results are allocated with the precision given at construction.
type BigComplex struct {
	prec uint
}

// NewBigComplex returns the arithmetic of *bignum.Complex at prec bits of precision.
func NewBigComplex(prec uint) BigComplex {
	return BigComplex{prec: prec}
}

// Prec returns the precision of the results.
func (c BigComplex) Prec() uint {
	return c.prec
}

// Zero returns 0.
func (c BigComplex) Zero() *bignum.Complex { return bignum.ToComplex(0, c.prec) }

// One returns 1.
func (c BigComplex) One() *bignum.Complex { return bignum.ToComplex(1, c.prec) }

// Add returns a + b.
func (c BigComplex) Add(a, b *bignum.Complex) *bignum.Complex { return c.Zero().Add(a, b) }

// Sub returns a - b.
func (c BigComplex) Sub(a, b *bignum.Complex) *bignum.Complex { return c.Zero().Sub(a, b) }

// Mul returns a * b.
func (c BigComplex) Mul(a, b *bignum.Complex) (res *bignum.Complex) {
	res = c.Zero()
	bignum.NewComplexMultiplier().Mul(a, b, res)
	return
}

// IsZero returns true if a == 0.
func (c BigComplex) IsZero(a *bignum.Complex) bool { return a.IsZero() }

// Equal returns true if a == b.
func (c BigComplex) Equal(a, b *bignum.Complex) bool { return a.Cmp(b) == 0 }

// Quo returns a / b.
func (c BigComplex) Quo(a, b *bignum.Complex) (res *bignum.Complex, err error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	res = c.Zero()
	bignum.NewComplexMultiplier().Quo(a, b, res)
	return res, nil
}

// ModularField is the arithmetic of the integers modulo a prime q < 2^256.
// Operands are reduced modulo q before use and results are always reduced.
type ModularField struct {
	q *uint256.Int
}

// NewModularField returns the arithmetic of Z_q.
// Returns an error if q is not prime.
func NewModularField(q *uint256.Int) (ModularField, error) {
	if q == nil || q.LtUint64(2) || !q.ToBig().ProbablyPrime(32) {
		return ModularField{}, fmt.Errorf("cannot NewModularField: %v: %w", q, ErrNotPrime)
	}
	return ModularField{q: q.Clone()}, nil
}

// Modulus returns a copy of q.
func (m ModularField) Modulus() *uint256.Int {
	return m.q.Clone()
}

// NewElement returns x mod q.
func (m ModularField) NewElement(x uint64) *uint256.Int {
	return new(uint256.Int).Mod(uint256.NewInt(x), m.q)
}

// Zero returns 0.
func (m ModularField) Zero() *uint256.Int { return new(uint256.Int) }

// One returns 1.
func (m ModularField) One() *uint256.Int { return uint256.NewInt(1) }

// Add returns a + b mod q.
func (m ModularField) Add(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).AddMod(a, b, m.q)
}

// Sub returns a - b mod q.
func (m ModularField) Sub(a, b *uint256.Int) *uint256.Int {
	a, b = m.reduce(a), m.reduce(b)
	c := new(uint256.Int).Sub(a, b)
	if a.Lt(b) {
		c.Add(c, m.q)
	}
	return c
}

// Mul returns a * b mod q.
func (m ModularField) Mul(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).MulMod(a, b, m.q)
}

// IsZero returns true if a == 0 mod q.
func (m ModularField) IsZero(a *uint256.Int) bool { return m.reduce(a).IsZero() }

// Equal returns true if a == b mod q.
func (m ModularField) Equal(a, b *uint256.Int) bool { return m.reduce(a).Eq(m.reduce(b)) }

// Quo returns a * b^-1 mod q.
func (m ModularField) Quo(a, b *uint256.Int) (*uint256.Int, error) {
	if m.IsZero(b) {
		return nil, ErrDivisionByZero
	}
	return m.Mul(a, m.inverse(b)), nil
}

// reduce returns a mod q, or a itself if it is already reduced.
func (m ModularField) reduce(a *uint256.Int) *uint256.Int {
	if a.Lt(m.q) {
		return a
	}
	return new(uint256.Int).Mod(a, m.q)
}

// inverse returns b^(q-2) mod q.
func (m ModularField) inverse(b *uint256.Int) *uint256.Int {

	e := new(uint256.Int).Sub(m.q, uint256.NewInt(2))

	res := uint256.NewInt(1)
	bit := new(uint256.Int)

	for i := e.BitLen() - 1; i >= 0; i-- {
		res.MulMod(res, res, m.q)
		if bit.Rsh(e, uint(i)).Uint64()&1 == 1 {
			res.MulMod(res, b, m.q)
		}
	}

	return res
}

// Draw returns a uniform element of Z_q read from prng.
// The bias of the reduction is at most q/2^256.
func (m ModularField) Draw(prng sampling.PRNG) *uint256.Int {
	buf := make([]byte, 32)
	if _, err := prng.Read(buf); err != nil {
		panic(err)
	}
	x := new(uint256.Int).SetBytes(buf)
	return x.Mod(x, m.q)
}
