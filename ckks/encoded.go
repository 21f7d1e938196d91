package ckks

import (
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/ckksgo/ckksgo/ring"
	"github.com/ckksgo/ckksgo/utils/buffer"
	"github.com/ckksgo/ckksgo/utils/structs"
)

// Encoded is the coefficient representation of a ring element
// returned by Encoder.Encode.
type Encoded struct {
	Value []complex128
}

// NewEncoded returns the encoding of the zero vector.
func NewEncoded(params Parameters) *Encoded {
	return &Encoded{Value: make([]complex128, params.Slots())}
}

// Len returns the number of coefficients.
func (enc Encoded) Len() int {
	return len(enc.Value)
}

// CopyNew returns a deep copy of the object.
func (enc Encoded) CopyNew() *Encoded {
	value := make([]complex128, len(enc.Value))
	copy(value, enc.Value)
	return &Encoded{Value: value}
}

// Equal performs a deep equal.
func (enc Encoded) Equal(other *Encoded) bool {
	return cmp.Equal(enc.Value, other.Value)
}

// Polynomial returns the coefficients as a polynomial over complex128.
func (enc Encoded) Polynomial() ring.Polynomial[complex128] {
	return ring.NewPolynomial[complex128](ring.Numeric[complex128]{}, enc.Value)
}

// AddPlain returns a + b.
func AddPlain(a, b *Encoded) (*Encoded, error) {
	return elementWise("AddPlain", a, b, func(x, y complex128) complex128 { return x + y })
}

// SubPlain returns a - b.
func SubPlain(a, b *Encoded) (*Encoded, error) {
	return elementWise("SubPlain", a, b, func(x, y complex128) complex128 { return x - y })
}

// MulPlain returns the element-wise (Hadamard) product of the coefficients
// of a and b. This is not the product of the underlying ring elements and
// does not decode to the slot-wise product of the encoded values.
func MulPlain(a, b *Encoded) (*Encoded, error) {
	return elementWise("MulPlain", a, b, func(x, y complex128) complex128 { return x * y })
}

func elementWise(op string, a, b *Encoded, f func(x, y complex128) complex128) (*Encoded, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cannot %s: nil operand: %w", op, ErrInvalidLength)
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("cannot %s: a.Len()=%d != b.Len()=%d: %w", op, a.Len(), b.Len(), ErrInvalidLength)
	}
	res := make([]complex128, a.Len())
	for i := range res {
		res[i] = f(a.Value[i], b.Value[i])
	}
	return &Encoded{Value: res}, nil
}

// vector returns the coefficients as interleaved real and imaginary parts.
func (enc Encoded) vector() (v structs.Vector[float64]) {
	v = make([]float64, 2*len(enc.Value))
	for i, c := range enc.Value {
		v[2*i], v[2*i+1] = real(c), imag(c)
	}
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (enc Encoded) BinarySize() int {
	return 8 + 16*len(enc.Value)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (enc Encoded) WriteTo(w io.Writer) (n int64, err error) {
	return enc.vector().WriteTo(w)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (enc *Encoded) ReadFrom(r io.Reader) (n int64, err error) {

	var v structs.Vector[float64]
	if n, err = v.ReadFrom(r); err != nil {
		return n, fmt.Errorf("cannot ReadFrom: %w", err)
	}

	if len(v)&1 != 0 {
		return n, fmt.Errorf("cannot ReadFrom: odd number of components %d: %w", len(v), ErrInvalidLength)
	}

	enc.Value = make([]complex128, len(v)>>1)
	for i := range enc.Value {
		enc.Value[i] = complex(v[2*i], v[2*i+1])
	}

	return
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (enc Encoded) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(enc.BinarySize())
	_, err = enc.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (enc *Encoded) UnmarshalBinary(p []byte) (err error) {
	_, err = enc.ReadFrom(buffer.NewBuffer(p))
	return
}

// Digest returns the blake3 hash of the binary form of the object.
func (enc Encoded) Digest() ([]byte, error) {
	data, err := enc.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("cannot Digest: %w", err)
	}
	sum := blake3.Sum256(data)
	return sum[:], nil
}
