package ring

import (
	"fmt"
)

// Term is a monomial Coefficient * X^Degree.
type Term[T any] struct {
	Coefficient T
	Degree      int
}

// NewTerm returns the term c * X^degree.
func NewTerm[T any](c T, degree int) Term[T] {
	return Term[T]{Coefficient: c, Degree: degree}
}

// Add returns t + u. Both terms must have the same degree.
func (t Term[T]) Add(r Ring[T], u Term[T]) (Term[T], error) {
	if t.Degree != u.Degree {
		return Term[T]{}, fmt.Errorf("cannot Add: %d != %d: %w", t.Degree, u.Degree, ErrDegreeMismatch)
	}
	return Term[T]{Coefficient: r.Add(t.Coefficient, u.Coefficient), Degree: t.Degree}, nil
}

// Sub returns t - u. Both terms must have the same degree.
func (t Term[T]) Sub(r Ring[T], u Term[T]) (Term[T], error) {
	if t.Degree != u.Degree {
		return Term[T]{}, fmt.Errorf("cannot Sub: %d != %d: %w", t.Degree, u.Degree, ErrDegreeMismatch)
	}
	return Term[T]{Coefficient: r.Sub(t.Coefficient, u.Coefficient), Degree: t.Degree}, nil
}

// Mul returns t * u.
func (t Term[T]) Mul(r Ring[T], u Term[T]) Term[T] {
	return Term[T]{Coefficient: r.Mul(t.Coefficient, u.Coefficient), Degree: t.Degree + u.Degree}
}

// Quo returns t / u, the term whose product with u is t.
func (t Term[T]) Quo(f Field[T], u Term[T]) (Term[T], error) {

	if t.Degree < u.Degree {
		return Term[T]{}, fmt.Errorf("cannot Quo: X^%d / X^%d: %w", t.Degree, u.Degree, ErrNegativeDegree)
	}

	c, err := f.Quo(t.Coefficient, u.Coefficient)
	if err != nil {
		return Term[T]{}, fmt.Errorf("cannot Quo: %w", err)
	}

	return Term[T]{Coefficient: c, Degree: t.Degree - u.Degree}, nil
}

// String returns the term formatted as <coefficient>x^<degree>.
func (t Term[T]) String() string {
	return fmt.Sprintf("%vx^%d", t.Coefficient, t.Degree)
}
