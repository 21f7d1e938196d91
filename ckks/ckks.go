// Package ckks implements the canonical embedding of the CKKS scheme: the
// encoding of a vector of slots into the coefficients of an element of the
// M-th cyclotomic ring, and its decoding by evaluation at the primitive M-th
// roots of unity.
package ckks

import (
	"errors"
)

var (
	// ErrInvalidLength is returned when the length of an input does not match the number of slots.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidParameters is returned when a ParametersLiteral is out of range.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrSingularSystem is returned when the encoding linear system is numerically singular.
	ErrSingularSystem = errors.New("singular linear system")
	// ErrNonFinite is returned when the solution of the encoding linear system contains NaN or Inf.
	ErrNonFinite = errors.New("non-finite solution")
)
