package ckks

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

const (
	// MinLogM is the smallest supported log2 of the cyclotomic order.
	MinLogM = 2
	// MaxLogM is the largest supported log2 of the cyclotomic order.
	MaxLogM = 12
)

// DefaultParameters is the parameter set with M = 8, hence 4 slots.
var DefaultParameters = ParametersLiteral{LogM: 3}

// ParametersLiteral is a literal representation of the embedding parameters.
// It has public fields and is used to express unchecked user-defined
// parameters literally into Go programs. The NewParametersFromLiteral
// function is used to generate the actual checked parameters from the literal
// representation.
type ParametersLiteral struct {
	// LogM is the log2 of the cyclotomic order M. The ring has M/2 slots.
	LogM int `json:"LogM"`
}

// Parameters represents a parameter set for the canonical embedding.
// It is read-only and can be shared.
type Parameters struct {
	logM int
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral specification.
// It returns an error if LogM is not in [MinLogM, MaxLogM].
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {
	if pl.LogM < MinLogM || pl.LogM > MaxLogM {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: LogM=%d not in [%d, %d]: %w", pl.LogM, MinLogM, MaxLogM, ErrInvalidParameters)
	}
	return Parameters{logM: pl.LogM}, nil
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{LogM: p.logM}
}

// LogM returns the log2 of the cyclotomic order.
func (p Parameters) LogM() int {
	return p.logM
}

// M returns the cyclotomic order.
func (p Parameters) M() int {
	return 1 << p.logM
}

// LogSlots returns the log2 of the number of slots.
func (p Parameters) LogSlots() int {
	return p.logM - 1
}

// Slots returns the number of slots M/2.
func (p Parameters) Slots() int {
	return p.M() >> 1
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the one returned by MarshalJSON.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
