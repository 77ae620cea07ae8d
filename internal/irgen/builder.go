// Package irgen lowers Kestrel expression trees into IR.
//
// Lowering is single pass. Every top-level expression is lowered into the
// body of the program entry function, in order. Function literals become
// separate IR functions. The first error stops lowering.
package irgen

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// builder holds the state for lowering one program.
type builder struct {
	conf *Config
	log  *zap.Logger

	env *Env
	mod *ir.Module

	printf *ir.Func // output primitive, set by registerIntrinsics

	fn *ir.Func  // current function
	b  *ir.Block // current insertion block
}

func newBuilder(conf *Config) *builder {
	if conf == nil {
		conf = DefaultConfig()
	}
	return &builder{
		conf: conf,
		log:  conf.logger(),
		env:  NewEnv(),
		mod:  ir.NewModule(conf.moduleName(), conf.Triple),
	}
}

// operand is the result of lowering an expression.
type operand struct {
	v *ir.Value

	// slot is set when v is the address of named storage holding elem.
	slot bool
	elem ir.Type

	// sig is set when the operand's value is a function address.
	sig *ir.Signature
}

// typ returns the type of the operand's value once dereferenced.
func (x operand) typ() ir.Type {
	if x.slot {
		return x.elem
	}
	return x.v.Type
}

// scalar reduces x to a plain value, loading it if x is a slot.
func (b *builder) scalar(x operand, pos syntax.Pos) *ir.Value {
	if !x.slot {
		return x.v
	}
	return b.fn.NewValuePos(b.b, ir.OpLoad, x.elem, pos, x.v)
}

// entryAlloca creates a named slot holding elem in the current function's
// entry block.
func (b *builder) entryAlloca(elem ir.Type, name string, pos syntax.Pos) *ir.Value {
	slot := b.fn.NewValuePos(b.fn.Entry, ir.OpAlloca, ir.TypePtr, pos)
	slot.Elem = elem
	slot.Aux = name
	return slot
}

// store emits a store of v into slot.
func (b *builder) store(slot, v *ir.Value, pos syntax.Pos) {
	b.fn.NewValuePos(b.b, ir.OpStore, ir.TypeVoid, pos, slot, v)
}

func (b *builder) const32(n int32, pos syntax.Pos) *ir.Value {
	v := b.fn.NewValuePos(b.b, ir.OpConst32, ir.TypeI32, pos)
	v.AuxInt = int64(n)
	return v
}

func (b *builder) funcAddr(f *ir.Func, pos syntax.Pos) operand {
	v := b.fn.NewValuePos(b.b, ir.OpFuncAddr, ir.TypePtr, pos)
	v.Aux = f
	return operand{v: v, sig: f.Sig}
}

// posOf returns the position of x, or the zero Pos if x is nil.
func posOf(x syntax.Node) syntax.Pos {
	if x == nil {
		return syntax.Pos{}
	}
	return x.Pos()
}

// popScope closes the innermost variable scope.
func (b *builder) popScope() {
	s := b.env.Scope()
	b.log.Debug("closing scope",
		zap.String("scope", s.Comment()),
		zap.Strings("vars", s.Names()))
	b.env.PopScope()
}
