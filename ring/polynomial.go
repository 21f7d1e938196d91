package ring

import (
	"strings"

	"github.com/ckksgo/ckksgo/utils"
)

// Polynomial is a dense univariate polynomial: Terms[i] holds the coefficient
// of degree i, including zero coefficients. Operations never mutate their
// operands and always return a new Polynomial.
//
// A Polynomial must be created with NewPolynomial, which binds it to the
// coefficient arithmetic used by its operations.
type Polynomial[T any] struct {
	Terms []Term[T]
	ring  Ring[T]
}

// NewPolynomial returns the polynomial sum_i coeffs[i] * X^i.
// An empty or all-zero coeffs yields the zero polynomial.
func NewPolynomial[T any](r Ring[T], coeffs []T) Polynomial[T] {
	terms := make([]Term[T], len(coeffs))
	for i := range coeffs {
		terms[i] = Term[T]{Coefficient: coeffs[i], Degree: i}
	}
	return Polynomial[T]{Terms: terms, ring: r}
}

// newZeroPolynomial returns a polynomial of n zero coefficients.
func newZeroPolynomial[T any](r Ring[T], n int) Polynomial[T] {
	coeffs := make([]T, n)
	for i := range coeffs {
		coeffs[i] = r.Zero()
	}
	return NewPolynomial(r, coeffs)
}

// Ring returns the coefficient arithmetic of the polynomial.
func (p Polynomial[T]) Ring() Ring[T] {
	return p.ring
}

// Len returns the number of stored coefficients.
func (p Polynomial[T]) Len() int {
	return len(p.Terms)
}

// Coeffs returns a new slice with the coefficients in ascending degree.
func (p Polynomial[T]) Coeffs() (coeffs []T) {
	coeffs = make([]T, len(p.Terms))
	for i := range p.Terms {
		coeffs[i] = p.Terms[i].Coefficient
	}
	return
}

// coeff returns the coefficient of degree i, or zero if i is out of range.
func (p Polynomial[T]) coeff(i int) T {
	if i < len(p.Terms) {
		return p.Terms[i].Coefficient
	}
	return p.ring.Zero()
}

// CopyNew returns a deep copy of the term slice.
func (p Polynomial[T]) CopyNew() Polynomial[T] {
	return NewPolynomial(p.ring, p.Coeffs())
}

// Degree returns the largest degree with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial[T]) Degree() int {
	return degree(p.ring, p.Coeffs())
}

func degree[T any](r Ring[T], coeffs []T) int {
	for i := len(coeffs) - 1; i > 0; i-- {
		if !r.IsZero(coeffs[i]) {
			return i
		}
	}
	return 0
}

// IsZero returns true if all coefficients are zero.
func (p Polynomial[T]) IsZero() bool {
	for i := range p.Terms {
		if !p.ring.IsZero(p.Terms[i].Coefficient) {
			return false
		}
	}
	return true
}

// LeadingTerm returns the term of largest degree with a non-zero coefficient.
// The leading term of the zero polynomial is 0*X^0.
func (p Polynomial[T]) LeadingTerm() Term[T] {
	if len(p.Terms) == 0 {
		return Term[T]{Coefficient: p.ring.Zero()}
	}
	return p.Terms[p.Degree()]
}

// Add returns p + q. The shorter operand is padded with zeros.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	r := p.ring
	coeffs := make([]T, utils.Max(p.Len(), q.Len()))
	for i := range coeffs {
		coeffs[i] = r.Add(p.coeff(i), q.coeff(i))
	}
	return NewPolynomial(r, coeffs)
}

// Sub returns p - q. The shorter operand is padded with zeros.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	r := p.ring
	coeffs := make([]T, utils.Max(p.Len(), q.Len()))
	for i := range coeffs {
		coeffs[i] = r.Sub(p.coeff(i), q.coeff(i))
	}
	return NewPolynomial(r, coeffs)
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	return newZeroPolynomial(p.ring, p.Len()).Sub(p)
}

// Mul returns p * q, of length p.Len() + q.Len() - 1.
// An empty operand is treated as the zero polynomial [0].
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {

	r := p.ring

	if p.Len() == 0 || q.Len() == 0 {
		return newZeroPolynomial(r, utils.Max(1, p.Len())+utils.Max(1, q.Len())-1)
	}

	res := newZeroPolynomial(r, p.Len()+q.Len()-1)

	for i := range p.Terms {
		if r.IsZero(p.Terms[i].Coefficient) {
			continue
		}
		for j := range q.Terms {
			t := p.Terms[i].Mul(r, q.Terms[j])
			res.Terms[t.Degree].Coefficient = r.Add(res.Terms[t.Degree].Coefficient, t.Coefficient)
		}
	}

	return res
}

// MulTerm returns p * t.
func (p Polynomial[T]) MulTerm(t Term[T]) Polynomial[T] {
	r := p.ring
	res := newZeroPolynomial(r, p.Len()+t.Degree)
	for i := range p.Terms {
		res.Terms[i+t.Degree].Coefficient = r.Mul(p.Terms[i].Coefficient, t.Coefficient)
	}
	return res
}

// Scale returns c * p.
func (p Polynomial[T]) Scale(c T) Polynomial[T] {
	return p.MulTerm(Term[T]{Coefficient: c})
}

// Evaluate returns p(x) using Horner's method.
func (p Polynomial[T]) Evaluate(x T) (y T) {
	r := p.ring
	y = r.Zero()
	for i := len(p.Terms) - 1; i >= 0; i-- {
		y = r.Add(r.Mul(y, x), p.Terms[i].Coefficient)
	}
	return
}

// Equal returns true if p and q have the same length and the same coefficients.
// Trailing zeros are significant, see EqualTrimmed.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := range p.Terms {
		if !p.ring.Equal(p.Terms[i].Coefficient, q.Terms[i].Coefficient) {
			return false
		}
	}
	return true
}

// Trim returns a copy of p without the zero coefficients above its degree.
// The zero polynomial trims to a single zero coefficient.
func (p Polynomial[T]) Trim() Polynomial[T] {
	if p.Len() == 0 {
		return newZeroPolynomial(p.ring, 1)
	}
	return NewPolynomial(p.ring, p.Coeffs()[:p.Degree()+1])
}

// EqualTrimmed returns true if p and q are equal up to trailing zeros.
func (p Polynomial[T]) EqualTrimmed(q Polynomial[T]) bool {
	return p.Trim().Equal(q.Trim())
}

// String returns the non-zero terms in ascending degree joined by " + ".
// The zero polynomial is rendered as the empty string.
func (p Polynomial[T]) String() string {
	var terms []string
	for i := range p.Terms {
		if !p.ring.IsZero(p.Terms[i].Coefficient) {
			terms = append(terms, p.Terms[i].String())
		}
	}
	return strings.Join(terms, " + ")
}
