package irgen

import (
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// assignExpr lowers name = value. Assigning a function literal defines a
// named function. Otherwise the value is stored in the name's slot, which
// is created on first assignment. The result is the stored value.
func (b *builder) assignExpr(e *syntax.AssignExpr) (operand, error) {
	if fl, ok := e.Value.(*syntax.FuncLit); ok {
		return b.funcLit(e.Name, fl)
	}

	x, err := b.expr(e.Value)
	if err != nil {
		return operand{}, err
	}

	name, pos := e.Name.Value, e.Pos()
	v := b.scalar(x, pos)

	if b.env.LookupFunc(name) != nil {
		return operand{}, &Error{Kind: SymbolConflict, Pos: pos, Name: name}
	}

	if bnd := b.env.LookupVar(name); bnd != nil {
		if bnd.Elem != v.Type {
			return operand{}, &Error{Kind: TypeMismatch, Pos: pos, Name: name, Want: bnd.Elem, Got: v.Type}
		}
		b.store(bnd.Slot, v, pos)
		bnd.Sig = x.sig
		return operand{v: v, sig: x.sig}, nil
	}

	slot := b.entryAlloca(v.Type, name, pos)
	b.store(slot, v, pos)
	b.env.DefineVar(&Binding{Name: name, Slot: slot, Elem: v.Type, Sig: x.sig})
	return operand{v: v, sig: x.sig}, nil
}
