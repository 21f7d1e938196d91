package ring

import (
	"fmt"

	"github.com/ckksgo/ckksgo/utils"
)

// Div performs the Euclidean division of p by d and returns the quotient q and
// the remainder r such that p = q*d + r, with r zero or r.Degree() < d.Degree().
//
// The quotient has max(1, p.Degree()-d.Degree()+1) coefficients and the
// remainder has p.Len() coefficients.
//
// Returns ErrNotAField if the coefficient arithmetic of p does not implement
// Field, ErrDivisionByZero if d is the zero polynomial, and ErrInexactDivision
// if a leading coefficient of the remainder is not divisible by the leading
// coefficient of d.
func (p Polynomial[T]) Div(d Polynomial[T]) (q, r Polynomial[T], err error) {

	f, ok := p.ring.(Field[T])
	if !ok {
		return q, r, fmt.Errorf("cannot Div: %T: %w", p.ring, ErrNotAField)
	}

	if d.IsZero() {
		return q, r, fmt.Errorf("cannot Div: %w", ErrDivisionByZero)
	}

	lt := d.LeadingTerm()

	q = newZeroPolynomial[T](f, utils.Max(1, p.Degree()-lt.Degree+1))

	// scratch remainder, p is left untouched
	rem := p.Coeffs()

	for !NewPolynomial[T](f, rem).IsZero() {

		degR := degree[T](f, rem)

		if degR < lt.Degree {
			break
		}

		var t Term[T]
		if t, err = NewTerm(rem[degR], degR).Quo(f, lt); err != nil {
			return Polynomial[T]{}, Polynomial[T]{}, fmt.Errorf("cannot Div: %w", err)
		}

		q.Terms[t.Degree].Coefficient = f.Add(q.Terms[t.Degree].Coefficient, t.Coefficient)

		for j := 0; j <= lt.Degree; j++ {
			rem[t.Degree+j] = f.Sub(rem[t.Degree+j], f.Mul(t.Coefficient, d.Terms[j].Coefficient))
		}

		// forces termination with inexact coefficients
		rem[degR] = f.Zero()
	}

	return q, NewPolynomial[T](f, rem), nil
}
