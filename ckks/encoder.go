package ckks

import (
	"fmt"

	"github.com/ckksgo/ckksgo/utils/bignum"
)

// Encoder is a type that implements the encoding and decoding of
// vectors of slots through the canonical embedding of the M-th
// cyclotomic ring. It holds no state besides its parameters and
// can be used concurrently.
type Encoder struct {
	params Parameters
}

// NewEncoder creates a new Encoder from the target parameters.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// Parameters returns the parameters of the encoder.
func (ecd Encoder) Parameters() Parameters {
	return ecd.params
}

// Encode encodes a vector of Slots() real values into the coefficients of a
// ring element, by solving V b = values where V is the Vandermonde matrix of
// the slot roots xi^{2k+1}.
func (ecd Encoder) Encode(values []float64) (enc *Encoded, err error) {
	y := make([]complex128, len(values))
	for i := range values {
		y[i] = complex(values[i], 0)
	}
	if enc, err = ecd.encode(embeddingMatrix(ecd.params.M()), y); err != nil {
		return nil, fmt.Errorf("cannot Encode: %w", err)
	}
	return
}

// EncodeComplex encodes a vector of Slots() complex values.
// See Encode.
func (ecd Encoder) EncodeComplex(values []complex128) (enc *Encoded, err error) {
	if enc, err = ecd.encode(embeddingMatrix(ecd.params.M()), values); err != nil {
		return nil, fmt.Errorf("cannot EncodeComplex: %w", err)
	}
	return
}

func (ecd Encoder) encode(V [][]complex128, values []complex128) (*Encoded, error) {

	if slots := ecd.params.Slots(); len(values) != slots {
		return nil, fmt.Errorf("len(values)=%d != %d: %w", len(values), slots, ErrInvalidLength)
	}

	b, err := SolveQR(V, values)
	if err != nil {
		return nil, err
	}

	return &Encoded{Value: b}, nil
}

// Decode evaluates the encoded ring element at the slot roots xi^{2k+1},
// 0 <= k < Slots(). For an element returned by Encode, the result
// approximates the encoded values up to the error of the linear solve.
func (ecd Encoder) Decode(enc *Encoded) (values []complex128, err error) {

	M := ecd.params.M()
	slots := ecd.params.Slots()

	if enc == nil {
		return nil, fmt.Errorf("cannot Decode: nil Encoded: %w", ErrInvalidLength)
	}

	if enc.Len() != slots {
		return nil, fmt.Errorf("cannot Decode: enc.Len()=%d != %d: %w", enc.Len(), slots, ErrInvalidLength)
	}

	roots := GetRootsComplex128(M)

	values = make([]complex128, slots)
	for k := range values {
		for i, c := range enc.Value {
			values[k] += c * roots[((2*k+1)*i)%M]
		}
	}

	return
}

// DecodeBig is the same as Decode but evaluates with arbitrary precision
// roots of unity at prec bits.
func (ecd Encoder) DecodeBig(enc *Encoded, prec uint) (values []*bignum.Complex, err error) {

	M := ecd.params.M()
	slots := ecd.params.Slots()

	if enc == nil {
		return nil, fmt.Errorf("cannot DecodeBig: nil Encoded: %w", ErrInvalidLength)
	}

	if enc.Len() != slots {
		return nil, fmt.Errorf("cannot DecodeBig: enc.Len()=%d != %d: %w", enc.Len(), slots, ErrInvalidLength)
	}

	roots := GetRootsBigComplex(M, prec)

	coeffs := make([]*bignum.Complex, slots)
	for i := range coeffs {
		coeffs[i] = bignum.ToComplex(enc.Value[i], prec)
	}

	mul := bignum.NewComplexMultiplier()
	tmp := bignum.ToComplex(0, prec)

	values = make([]*bignum.Complex, slots)
	for k := range values {
		values[k] = bignum.ToComplex(0, prec)
		for i := range coeffs {
			mul.Mul(coeffs[i], roots[((2*k+1)*i)%M], tmp)
			values[k].Add(values[k], tmp)
		}
	}

	return
}
