package ir

import (
	"strings"

	"github.com/you-not-fish/kestrel/internal/rtabi"
)

// Type is the type of an IR value.
// Kestrel has one scalar numeric type and one opaque pointer type.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeVoid         // no value
	TypeI32          // the scalar numeric type
	TypePtr          // opaque pointer: slot, string or function address
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeVoid:    "void",
	TypeI32:     "i32",
	TypePtr:     "ptr",
}

// String returns the type name, which is also its LLVM spelling.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Size returns the storage size of the type in bytes.
func (t Type) Size() int64 {
	switch t {
	case TypeI32:
		return rtabi.SizeInt
	case TypePtr:
		return rtabi.SizePtr
	}
	return 0
}

// Signature describes a function's parameter and result types.
type Signature struct {
	Params   []Type
	Result   Type
	Variadic bool // accepts extra arguments after Params
}

// NewSignature returns a signature with the given result and parameters.
func NewSignature(result Type, variadic bool, params ...Type) *Signature {
	return &Signature{Params: params, Result: result, Variadic: variadic}
}

// NumParams returns the number of fixed parameters.
func (s *Signature) NumParams() int { return len(s.Params) }

// String renders the signature as "(i32, i32) i32" or "(ptr, ...) i32".
func (s *Signature) String() string {
	parts := make([]string, 0, len(s.Params)+1)
	for _, p := range s.Params {
		parts = append(parts, p.String())
	}
	if s.Variadic {
		parts = append(parts, "...")
	}
	return "(" + strings.Join(parts, ", ") + ") " + s.Result.String()
}
