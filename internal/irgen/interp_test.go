package irgen

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/rtabi"
)

// interp executes IR modules directly so tests can observe program
// behavior without a native toolchain.
type interp struct {
	m     *ir.Module
	out   strings.Builder
	depth int
}

// cell is the storage behind an OpAlloca.
type cell struct {
	v interface{}
}

const maxCallDepth = 1000

func newInterp(m *ir.Module) *interp {
	return &interp{m: m}
}

// run executes the entry function and returns its result.
func (in *interp) run() (int32, error) {
	main := in.m.Func(rtabi.EntryFunc)
	if main == nil {
		return 0, fmt.Errorf("no %s function", rtabi.EntryFunc)
	}
	r, err := in.call(main, nil)
	if err != nil {
		return 0, err
	}
	return r.(int32), nil
}

func (in *interp) call(f *ir.Func, args []interface{}) (interface{}, error) {
	if f.Extern {
		return in.external(f, args)
	}
	if in.depth >= maxCallDepth {
		return nil, fmt.Errorf("call depth exceeded in %s", f.Name)
	}
	in.depth++
	defer func() { in.depth-- }()

	b := f.Entry
	vals := make(map[*ir.Value]interface{})
	for _, v := range b.Values {
		r, err := in.eval(f, v, vals, args)
		if err != nil {
			return nil, err
		}
		vals[v] = r
	}
	if b.Kind != ir.BlockReturn {
		return nil, fmt.Errorf("func %s: block %s does not return", f.Name, b)
	}
	return vals[b.Controls[0]], nil
}

func (in *interp) eval(f *ir.Func, v *ir.Value, vals map[*ir.Value]interface{}, args []interface{}) (interface{}, error) {
	arg := func(i int) interface{} { return vals[v.Args[i]] }

	switch v.Op {
	case ir.OpConst32:
		return int32(v.AuxInt), nil
	case ir.OpGlobalAddr, ir.OpFuncAddr:
		return v.Aux, nil
	case ir.OpArg:
		return args[v.AuxInt], nil
	case ir.OpAlloca:
		return &cell{}, nil
	case ir.OpLoad:
		return arg(0).(*cell).v, nil
	case ir.OpStore:
		arg(0).(*cell).v = arg(1)
		return nil, nil
	case ir.OpAdd32:
		return arg(0).(int32) + arg(1).(int32), nil
	case ir.OpCall:
		return in.call(v.Callee(), in.collect(v.Args, vals))
	case ir.OpCallIndirect:
		callee, ok := arg(0).(*ir.Func)
		if !ok {
			return nil, fmt.Errorf("func %s, %s: indirect call through %T", f.Name, v, arg(0))
		}
		return in.call(callee, in.collect(v.Args[1:], vals))
	}
	return nil, fmt.Errorf("func %s, %s: unhandled op %s", f.Name, v, v.Op)
}

func (in *interp) collect(list []*ir.Value, vals map[*ir.Value]interface{}) []interface{} {
	args := make([]interface{}, len(list))
	for i, a := range list {
		args[i] = vals[a]
	}
	return args
}

// external implements the C library functions the compiler declares.
func (in *interp) external(f *ir.Func, args []interface{}) (interface{}, error) {
	if f.Name != rtabi.OutputPrimitive {
		return nil, fmt.Errorf("unknown external function %s", f.Name)
	}
	format, ok := args[0].(*ir.Global)
	if !ok {
		return nil, fmt.Errorf("%s: format is %T", f.Name, args[0])
	}
	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		if g, ok := a.(*ir.Global); ok {
			a = g.Data
		}
		rest[i] = a
	}
	s := fmt.Sprintf(format.Data, rest...)
	in.out.WriteString(s)
	return int32(len(s)), nil
}
