// Package sampling implements deterministic and secure sampling of bytes, integers and floats.
package sampling

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// DeriveKey hashes the labels with blake3 and returns a KeySize-byte key
// suitable for NewKeyedPRNG. Each label is length-prefixed so that
// ("ab", "c") and ("a", "bc") yield different keys.
func DeriveKey(labels ...string) []byte {
	hasher := blake3.New()
	var lenBuf [8]byte
	for _, label := range labels {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(label)))
		hasher.Write(lenBuf[:])
		hasher.Write([]byte(label))
	}
	return hasher.Sum(nil)[:KeySize]
}

// RandUint64 return a random value between 0 and 0xFFFFFFFFFFFFFFFF read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandInt64 returns a random value in [-bound, bound] read from prng.
// bound must be non-negative.
func RandInt64(prng PRNG, bound int64) int64 {
	return int64(RandUint64(prng)%uint64(2*bound+1)) - bound
}

// RandFloat64 returns a random float between min and max read from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandComplex128 returns a random complex with the real and imaginary part between min and max.
func RandComplex128(prng PRNG, min, max float64) complex128 {
	return complex(RandFloat64(prng, min, max), RandFloat64(prng, min, max))
}
