package irgen

import (
	"strings"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// expr lowers an expression in the current block.
func (b *builder) expr(e syntax.Expr) (operand, error) {
	switch e := e.(type) {
	case *syntax.IntLit:
		return operand{v: b.const32(e.Value, e.Pos())}, nil

	case *syntax.Name:
		return b.nameExpr(e)

	case *syntax.StringLit:
		return b.stringLit(e), nil

	case *syntax.AssignExpr:
		return b.assignExpr(e)

	case *syntax.CallExpr:
		return b.callExpr(e)

	case *syntax.FuncLit:
		return operand{}, &Error{Kind: UnassignedFunction, Pos: e.Pos()}

	default:
		// PartialExpr is folded by the parser and EmptyExpr has no value.
		return operand{}, &Error{Kind: UnsupportedNode, Pos: posOf(e), Name: syntax.KindOf(e)}
	}
}

// nameExpr resolves a name to its variable slot, or to the address of a
// visible function when no variable of that name exists.
func (b *builder) nameExpr(e *syntax.Name) (operand, error) {
	if v := b.env.LookupVar(e.Value); v != nil {
		return operand{v: v.Slot, slot: true, elem: v.Elem, sig: v.Sig}, nil
	}
	if c := b.env.LookupFunc(e.Value); c != nil {
		return b.funcAddr(c.Func, e.Pos()), nil
	}
	return operand{}, &Error{Kind: UndefinedSymbol, Pos: e.Pos(), Name: e.Value}
}

// stringLit emits a string constant and yields its address.
func (b *builder) stringLit(e *syntax.StringLit) operand {
	g := b.mod.StringConst(unescape(e.Value))
	v := b.fn.NewValuePos(b.b, ir.OpGlobalAddr, ir.TypePtr, e.Pos())
	v.Aux = g
	return operand{v: v}
}

// unescape interprets the \n escape. Other backslashes are kept as is.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
