// Package structs implements helpers to generalize vectors of basic types
// with serialization and equality.
package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	"github.com/ckksgo/ckksgo/utils/buffer"
)

// Word64 is the set of component types a Vector can serialize.
// Each component is written as a single little-endian 64-bit word.
type Word64 interface {
	uint | uint64 | int | int64 | float64
}

// Vector is a struct wrapping a slice of 64-bit components.
type Vector[T Word64] []T

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = Vector[T](make([]T, len(v)))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[T](w, v); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", *new(T), err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int

		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 {
			return n, fmt.Errorf("cannot ReadFrom: invalid vector size %d", size)
		}

		if cap(*v) < size {
			*v = make([]T, size)
		}

		*v = (*v)[:size]

		if inc, err = buffer.ReadAsUint64Slice[T](r, *v); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", *new(T), err)
		}

		return n + inc, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {
	return cmp.Equal([]T(v), []T(other))
}
