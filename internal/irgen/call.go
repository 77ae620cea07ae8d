package irgen

import (
	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// callExpr lowers a call. Arguments are lowered first, in order. The
// callee is the visible function of that name or else a variable holding a
// function address. The i32 result is stored in a fresh slot named after
// the callee, and that slot is the call's operand.
func (b *builder) callExpr(e *syntax.CallExpr) (operand, error) {
	name, pos := e.Fun.Value, e.Pos()

	args := make([]operand, len(e.Args))
	for i, a := range e.Args {
		x, err := b.expr(a)
		if err != nil {
			return operand{}, err
		}
		args[i] = x
	}

	var (
		callee *ir.Func
		fnSlot *Binding
		sig    *ir.Signature
	)
	if c := b.env.LookupFunc(name); c != nil {
		callee, sig = c.Func, c.Func.Sig
	} else if v := b.env.LookupVar(name); v != nil {
		if v.Sig == nil {
			return operand{}, &Error{Kind: InvalidCallTarget, Pos: pos, Name: name}
		}
		fnSlot, sig = v, v.Sig
	} else {
		return operand{}, &Error{Kind: UndefinedSymbol, Pos: pos, Name: name}
	}

	if n := sig.NumParams(); len(args) < n || (!sig.Variadic && len(args) != n) {
		return operand{}, &Error{Kind: ArityMismatch, Pos: pos, Name: name, Expected: n, Actual: len(args)}
	}

	vals := make([]*ir.Value, len(args))
	for i, x := range args {
		vals[i] = b.scalar(x, posOf(e.Args[i]))
		if i < sig.NumParams() && vals[i].Type != sig.Params[i] {
			return operand{}, &Error{
				Kind:  TypeMismatch,
				Pos:   posOf(e.Args[i]),
				Name:  name,
				Index: i,
				Want:  sig.Params[i],
				Got:   vals[i].Type,
			}
		}
	}

	var call *ir.Value
	if callee != nil {
		call = b.fn.NewValuePos(b.b, ir.OpCall, sig.Result, pos, vals...)
		call.Aux = callee
	} else {
		fp := b.fn.NewValuePos(b.b, ir.OpLoad, ir.TypePtr, pos, fnSlot.Slot)
		call = b.fn.NewValuePos(b.b, ir.OpCallIndirect, sig.Result, pos, append([]*ir.Value{fp}, vals...)...)
		call.Aux = sig
	}

	slot := b.entryAlloca(sig.Result, name, pos)
	b.store(slot, call, pos)
	return operand{v: slot, slot: true, elem: sig.Result}, nil
}
