package ir

import (
	"fmt"

	"go.uber.org/multierr"
)

// VerifyModule checks the structural integrity of every function in m.
// It returns all violations found combined into one error, or nil if valid.
func VerifyModule(m *Module) error {
	var err error
	seen := make(map[string]bool, len(m.Globals)+len(m.Funcs))
	for _, g := range m.Globals {
		if seen[g.Name] {
			err = multierr.Append(err, fmt.Errorf("module %s: duplicate global name %q", m.Name, g.Name))
		}
		seen[g.Name] = true
	}
	for _, f := range m.Funcs {
		if seen[f.Name] {
			err = multierr.Append(err, fmt.Errorf("module %s: duplicate global name %q", m.Name, f.Name))
		}
		seen[f.Name] = true
		if f.Module != m {
			err = multierr.Append(err, fmt.Errorf("func %s: Module pointer mismatch", f.Name))
		}
		err = multierr.Append(err, Verify(f))
	}
	return err
}

// Verify checks the structural integrity of an IR function.
// It returns an error describing all violations found, or nil if valid.
func Verify(f *Func) error {
	var errs error

	add := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if f.Sig == nil {
		add("func %s: nil signature", f.Name)
		return errs
	}

	if f.Extern {
		if len(f.Blocks) != 0 {
			add("func %s: extern function has %d blocks", f.Name, len(f.Blocks))
		}
		return errs
	}

	if f.Entry == nil {
		add("func %s: entry block is nil", f.Name)
		return errs
	}
	if len(f.Blocks) == 0 {
		add("func %s: no blocks", f.Name)
		return errs
	}
	if f.Blocks[0] != f.Entry {
		add("func %s: Blocks[0] is not the entry block", f.Name)
	}

	// defined holds every value seen so far, in definition order.
	defined := make(map[*Value]bool)

	for _, b := range f.Blocks {
		if b.Func != f {
			add("func %s, %s: block Func pointer mismatch", f.Name, b)
		}

		for _, v := range b.Values {
			if v.Block != b {
				add("func %s, %s, %s: value Block pointer is %s, want %s",
					f.Name, b, v, v.Block, b)
			}
			for i, arg := range v.Args {
				switch {
				case arg == nil:
					add("func %s, %s, %s: arg[%d] is nil", f.Name, b, v, i)
				case !defined[arg]:
					add("func %s, %s, %s: arg[%d] (%s) used before definition or not in function",
						f.Name, b, v, i, arg)
				}
			}
			verifyValue(f, v, add)
			defined[v] = true
		}

		switch b.Kind {
		case BlockReturn:
			if len(b.Controls) != 1 || b.Controls[0] == nil {
				add("func %s, %s: return block has %d controls, want 1",
					f.Name, b, len(b.Controls))
				break
			}
			c := b.Controls[0]
			if !defined[c] {
				add("func %s, %s: control %s not found in function", f.Name, b, c)
			}
			if c.Type != f.Sig.Result {
				add("func %s, %s: returns %s, want %s", f.Name, b, c.Type, f.Sig.Result)
			}
		default:
			add("func %s, %s: block kind %s is not a return", f.Name, b, b.Kind)
		}
	}

	return errs
}

// verifyValue checks the operand and result types of a single value.
func verifyValue(f *Func, v *Value, add func(string, ...interface{})) {
	want := func(n int) bool {
		if len(v.Args) != n {
			add("func %s, %s (%s): has %d args, want %d", f.Name, v, v.Op, len(v.Args), n)
			return false
		}
		for _, a := range v.Args {
			if a == nil {
				return false
			}
		}
		return true
	}
	typ := func(t Type) {
		if v.Type != t {
			add("func %s, %s (%s): type %s, want %s", f.Name, v, v.Op, v.Type, t)
		}
	}

	switch v.Op {
	case OpConst32:
		want(0)
		typ(TypeI32)
	case OpGlobalAddr:
		want(0)
		typ(TypePtr)
		if g, ok := v.Aux.(*Global); !ok || g == nil {
			add("func %s, %s: GlobalAddr without *Global aux", f.Name, v)
		}
	case OpFuncAddr:
		want(0)
		typ(TypePtr)
		if v.Callee() == nil {
			add("func %s, %s: FuncAddr without *Func aux", f.Name, v)
		}
	case OpArg:
		want(0)
		if v.AuxInt < 0 || int(v.AuxInt) >= f.Sig.NumParams() {
			add("func %s, %s: Arg index %d out of range", f.Name, v, v.AuxInt)
			return
		}
		typ(f.Sig.Params[v.AuxInt])
	case OpAlloca:
		want(0)
		typ(TypePtr)
		if v.Elem != TypeI32 && v.Elem != TypePtr {
			add("func %s, %s: Alloca of %s", f.Name, v, v.Elem)
		}
		if v.Block != f.Entry {
			add("func %s, %s: Alloca outside the entry block", f.Name, v)
		}
	case OpLoad:
		if !want(1) {
			return
		}
		p := v.Args[0]
		if p.Type != TypePtr {
			add("func %s, %s: Load from %s", f.Name, v, p.Type)
		}
		if p.Op == OpAlloca && p.Elem != v.Type {
			add("func %s, %s: Load <%s> from slot of %s", f.Name, v, v.Type, p.Elem)
		}
	case OpStore:
		typ(TypeVoid)
		if !want(2) {
			return
		}
		p, x := v.Args[0], v.Args[1]
		if p.Type != TypePtr {
			add("func %s, %s: Store to %s", f.Name, v, p.Type)
		}
		if p.Op == OpAlloca && p.Elem != x.Type {
			add("func %s, %s: Store of %s into slot of %s", f.Name, v, x.Type, p.Elem)
		}
	case OpAdd32:
		typ(TypeI32)
		if !want(2) {
			return
		}
		for i, a := range v.Args {
			if a.Type != TypeI32 {
				add("func %s, %s: Add32 arg[%d] is %s", f.Name, v, i, a.Type)
			}
		}
	case OpCall, OpCallIndirect:
		sig := v.CallSig()
		if sig == nil {
			add("func %s, %s (%s): missing callee signature", f.Name, v, v.Op)
			return
		}
		typ(sig.Result)
		if v.Op == OpCallIndirect {
			if len(v.Args) == 0 || v.Args[0] == nil || v.Args[0].Type != TypePtr {
				add("func %s, %s: CallIndirect callee is not a ptr", f.Name, v)
				return
			}
		}
		args := v.CallArgs()
		if len(args) < sig.NumParams() || (!sig.Variadic && len(args) != sig.NumParams()) {
			add("func %s, %s: call with %d args, signature %s", f.Name, v, len(args), sig)
			return
		}
		for i, p := range sig.Params {
			if args[i] != nil && args[i].Type != p {
				add("func %s, %s: call arg[%d] is %s, want %s", f.Name, v, i, args[i].Type, p)
			}
		}
	default:
		add("func %s, %s: invalid op %s", f.Name, v, v.Op)
	}
}
