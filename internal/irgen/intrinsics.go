package irgen

import (
	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/rtabi"
)

// registerIntrinsics adds the built-in functions to the module and the
// function table. It must run before any program code is lowered.
func (b *builder) registerIntrinsics() {
	out, _ := rtabi.LookupExternal(rtabi.OutputPrimitive)
	b.printf = b.mod.NewExtern(out.Name, ir.NewSignature(ir.TypeI32, out.Variadic, ir.TypePtr))
	b.env.DefineFunc(&Callable{Name: out.Name, Func: b.printf, Hidden: true})

	b.defineIntrinsic(rtabi.AddFunc, []string{"a", "b"}, func(f *ir.Func, args []*ir.Value) *ir.Value {
		return f.NewValue(f.Entry, ir.OpAdd32, ir.TypeI32, args[0], args[1])
	})

	b.defineIntrinsic(rtabi.PrintFunc, []string{"x"}, func(f *ir.Func, args []*ir.Value) *ir.Value {
		format := f.NewValue(f.Entry, ir.OpGlobalAddr, ir.TypePtr)
		format.Aux = b.mod.StringConst(rtabi.PrintFormat)
		call := f.NewValue(f.Entry, ir.OpCall, ir.TypeI32, format, args[0])
		call.Aux = b.printf
		return call
	})
}

// defineIntrinsic creates a visible function taking one i32 per name in
// params and returning the i32 computed by body.
func (b *builder) defineIntrinsic(name string, params []string, body func(f *ir.Func, args []*ir.Value) *ir.Value) {
	types := make([]ir.Type, len(params))
	for i := range types {
		types[i] = ir.TypeI32
	}
	f := b.mod.NewFunc(name, ir.NewSignature(ir.TypeI32, false, types...))
	f.ParamNames = params

	args := make([]*ir.Value, len(params))
	for i, p := range params {
		args[i] = f.NewValue(f.Entry, ir.OpArg, ir.TypeI32)
		args[i].AuxInt = int64(i)
		args[i].Aux = p
	}
	f.Entry.Return(body(f, args))

	b.env.DefineFunc(&Callable{Name: name, Func: f})
}
