// Package ir implements the low-level intermediate representation produced
// by the Kestrel compiler: modules of functions, basic blocks and values.
package ir

// Op represents an IR operation code.
type Op int

const (
	OpInvalid Op = iota

	// Constants and addresses
	OpConst32    // i32 constant; AuxInt = value
	OpGlobalAddr // address of a global; Aux = *Global
	OpFuncAddr   // address of a function; Aux = *Func

	// Function arguments
	OpArg // incoming argument; AuxInt = param index; Aux = param name

	// Memory
	OpAlloca // stack slot; Type = ptr; Elem = slot contents; Aux = name
	OpLoad   // load from slot; Args[0] = ptr
	OpStore  // store to slot; Args[0] = ptr, Args[1] = val; void

	// Arithmetic
	OpAdd32 // i32 + i32

	// Calls
	OpCall         // direct call; Aux = *Func; Args = arguments
	OpCallIndirect // indirect call; Aux = *Signature; Args[0] = callee, Args[1:] = arguments

	opCount // sentinel; must be last
)

// OpInfo holds metadata about an IR operation.
type OpInfo struct {
	Name    string // human-readable name
	IsPure  bool   // no side effects
	IsVoid  bool   // produces no value
	IsConst bool   // inlined at use sites, emits no instruction
}

var opInfoTable = [opCount]OpInfo{
	OpInvalid: {Name: "Invalid"},

	OpConst32:    {Name: "Const32", IsPure: true, IsConst: true},
	OpGlobalAddr: {Name: "GlobalAddr", IsPure: true, IsConst: true},
	OpFuncAddr:   {Name: "FuncAddr", IsPure: true, IsConst: true},

	OpArg: {Name: "Arg", IsPure: true, IsConst: true},

	OpAlloca: {Name: "Alloca"},
	OpLoad:   {Name: "Load"},
	OpStore:  {Name: "Store", IsVoid: true},

	OpAdd32: {Name: "Add32", IsPure: true},

	OpCall:         {Name: "Call"},
	OpCallIndirect: {Name: "CallIndirect"},
}

// String returns the human-readable name of the op.
func (o Op) String() string {
	return o.Info().Name
}

// Info returns the OpInfo for this op.
func (o Op) Info() OpInfo {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o]
	}
	return OpInfo{Name: "unknown"}
}

// IsPure reports whether the op has no side effects.
func (o Op) IsPure() bool { return o.Info().IsPure }

// IsVoid reports whether the op produces no value.
func (o Op) IsVoid() bool { return o.Info().IsVoid }

// IsConst reports whether the op is a constant or an argument reference,
// which have no instruction of their own.
func (o Op) IsConst() bool { return o.Info().IsConst }
