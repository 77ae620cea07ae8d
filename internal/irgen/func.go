package irgen

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// funcLit lowers name = (params) { body } into a new IR function and
// yields the function's address in the current block.
//
// The function is entered in the function table before its body is
// lowered, so the body may call it. The body sees only its own parameters
// and locals.
func (b *builder) funcLit(name *syntax.Name, fl *syntax.FuncLit) (operand, error) {
	pos := fl.Pos()
	// A function name is global, so it must not shadow a live variable in
	// any enclosing function either.
	if b.env.LookupVarAny(name.Value) != nil {
		return operand{}, &Error{Kind: SymbolConflict, Pos: name.Pos(), Name: name.Value}
	}

	params := make([]string, len(fl.Params))
	types := make([]ir.Type, len(fl.Params))
	for i, p := range fl.Params {
		n, ok := p.(*syntax.Name)
		if !ok {
			return operand{}, &Error{Kind: UnknownParameterShape, Pos: posOf(p), Index: i}
		}
		params[i] = n.Value
		types[i] = ir.TypeI32
	}

	fn := b.mod.NewFunc(name.Value, ir.NewSignature(ir.TypeI32, false, types...))
	fn.ParamNames = params
	b.env.DefineFunc(&Callable{Name: name.Value, Func: fn})

	b.log.Debug("defining function",
		zap.String("name", name.Value),
		zap.String("ir_name", fn.Name),
		zap.Strings("params", params),
		zap.Stringer("pos", pos))

	if err := b.funcBody(fn, name.Value, fl); err != nil {
		return operand{}, err
	}
	return b.funcAddr(fn, pos), nil
}

// funcBody lowers the body of fl into fn. The caller's insertion point and
// scope are restored on return.
func (b *builder) funcBody(fn *ir.Func, name string, fl *syntax.FuncLit) error {
	prevFn, prevB := b.fn, b.b
	b.fn, b.b = fn, fn.Entry
	b.env.PushScope("function " + name)
	defer func() {
		b.popScope()
		b.fn, b.b = prevFn, prevB
	}()

	for i, p := range fn.ParamNames {
		ppos := fl.Params[i].Pos()
		arg := fn.NewValuePos(fn.Entry, ir.OpArg, ir.TypeI32, ppos)
		arg.AuxInt = int64(i)
		arg.Aux = p
		slot := b.entryAlloca(ir.TypeI32, p, ppos)
		b.store(slot, arg, ppos)
		b.env.DefineVar(&Binding{Name: p, Slot: slot, Elem: ir.TypeI32})
	}

	if len(fl.Body) == 0 {
		return &Error{Kind: NoTailExpression, Pos: fl.Pos(), Name: name}
	}

	var tail operand
	for _, x := range fl.Body {
		var err error
		if tail, err = b.expr(x); err != nil {
			return err
		}
	}

	last := fl.Body[len(fl.Body)-1]
	ret := b.scalar(tail, last.Pos())
	if ret.Type != fn.Sig.Result {
		return &Error{Kind: TypeMismatch, Pos: last.Pos(), Name: name, Want: fn.Sig.Result, Got: ret.Type}
	}
	b.b.Return(ret)
	return nil
}
