// Package ring implements dense univariate polynomials over generic coefficient
// rings, with Euclidean division when the coefficients form a field.
package ring

import (
	"errors"
)

var (
	// ErrDivisionByZero is returned when dividing by a zero coefficient or by the zero polynomial.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInexactDivision is returned when a coefficient division has a non-zero remainder.
	ErrInexactDivision = errors.New("inexact coefficient division")
	// ErrNotAField is returned by Div when the coefficient arithmetic does not implement Field.
	ErrNotAField = errors.New("coefficient ring is not a field")
	// ErrDegreeMismatch is returned when adding or subtracting terms of different degrees.
	ErrDegreeMismatch = errors.New("terms have different degrees")
	// ErrNegativeDegree is returned when a term division would yield a negative degree.
	ErrNegativeDegree = errors.New("negative degree")
	// ErrOverflow is returned when an integer coefficient division overflows, i.e. MinInt / -1.
	ErrOverflow = errors.New("integer overflow")
	// ErrNotPrime is returned when a ModularField is instantiated with a composite modulus.
	ErrNotPrime = errors.New("modulus is not prime")
)

// Ring is the coefficient arithmetic of a Polynomial.
// Implementations must return fresh values and never mutate their operands.
type Ring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	IsZero(a T) bool
	Equal(a, b T) bool
}

// Field is a Ring that also supports division.
type Field[T any] interface {
	Ring[T]
	// Quo returns a / b, or an error if b is zero or,
	// for integer coefficients, if b does not divide a or the quotient overflows.
	Quo(a, b T) (T, error)
}
