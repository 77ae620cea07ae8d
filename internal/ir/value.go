package ir

import (
	"fmt"

	"github.com/you-not-fish/kestrel/internal/syntax"
)

// ID is a unique identifier for Values and Blocks within a Func.
type ID int32

// Value represents a single IR computation.
// Each Value has exactly one definition and may be used by other Values.
type Value struct {
	// ID is a unique identifier within the containing Func.
	ID ID

	// Op is the operation this value computes.
	Op Op

	// Type is the result type of this value. TypeVoid for Store.
	Type Type

	// Elem is the type held by the slot of an OpAlloca.
	Elem Type

	// Args are the input values to this operation.
	Args []*Value

	// Block is the basic block that contains this value.
	Block *Block

	// AuxInt holds an auxiliary integer (constant value, parameter index).
	AuxInt int64

	// Aux holds auxiliary data: a slot or parameter name, *Global,
	// *Func or *Signature depending on Op.
	Aux interface{}

	// Uses tracks the number of references to this value.
	Uses int32

	// Pos is the source position associated with this value.
	Pos syntax.Pos
}

// String returns a short string representation of the value (e.g., "v5").
func (v *Value) String() string {
	return fmt.Sprintf("v%d", v.ID)
}

// LongString returns a detailed representation including op, type and args.
func (v *Value) LongString() string {
	return formatValue(v)
}

// AddArg appends a value to the argument list and increments its use count.
func (v *Value) AddArg(arg *Value) {
	v.Args = append(v.Args, arg)
	arg.Uses++
}

// IsPure reports whether this value's op has no side effects.
func (v *Value) IsPure() bool {
	return v.Op.IsPure()
}

// Callee returns the function called by an OpCall or referenced by an
// OpFuncAddr, or nil.
func (v *Value) Callee() *Func {
	if v.Op != OpCall && v.Op != OpFuncAddr {
		return nil
	}
	f, _ := v.Aux.(*Func)
	return f
}

// CallSig returns the signature a call value is made through.
func (v *Value) CallSig() *Signature {
	switch v.Op {
	case OpCall:
		if f := v.Callee(); f != nil {
			return f.Sig
		}
	case OpCallIndirect:
		s, _ := v.Aux.(*Signature)
		return s
	}
	return nil
}

// CallArgs returns the argument values of a call, excluding the callee of
// an indirect call.
func (v *Value) CallArgs() []*Value {
	if v.Op == OpCallIndirect && len(v.Args) > 0 {
		return v.Args[1:]
	}
	return v.Args
}
