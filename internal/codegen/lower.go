package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/kestrel/internal/ir"
)

// lowerFunc emits the LLVM IR for a single defined function.
func (g *generator) lowerFunc(fn *ir.Func) {
	params := make([]string, len(fn.Sig.Params))
	for i, p := range fn.Sig.Params {
		params[i] = llvmType(p) + " " + argName(int64(i))
	}

	g.e.emit("define %s %s(%s) {", llvmType(fn.Sig.Result), globalName(fn.Name), join(params))
	for _, b := range fn.Blocks {
		g.lowerBlock(b, fn)
	}
	g.e.emit("}")
}

// lowerBlock emits the LLVM IR for a single basic block.
func (g *generator) lowerBlock(b *ir.Block, fn *ir.Func) {
	g.e.emitLabel(b)

	for _, v := range b.Values {
		g.lowerValue(fn, v)
	}

	g.lowerTerminator(b)
}

// lowerValue emits the LLVM IR for a single IR value.
func (g *generator) lowerValue(fn *ir.Func, v *ir.Value) {
	switch v.Op {
	// Constants and arguments are inlined at use sites.
	case ir.OpConst32, ir.OpGlobalAddr, ir.OpFuncAddr, ir.OpArg:
		return

	case ir.OpAlloca:
		if name, ok := v.Aux.(string); ok && name != "" {
			g.e.emitInst("%s = alloca %s ; %s", valueName(v), llvmType(v.Elem), name)
		} else {
			g.e.emitInst("%s = alloca %s", valueName(v), llvmType(v.Elem))
		}
	case ir.OpLoad:
		g.e.emitInst("%s = load %s, ptr %s", valueName(v), llvmType(v.Type), g.operand(v.Args[0]))
	case ir.OpStore:
		x := v.Args[1]
		g.e.emitInst("store %s %s, ptr %s", llvmType(x.Type), g.operand(x), g.operand(v.Args[0]))

	case ir.OpAdd32:
		g.e.emitInst("%s = add i32 %s, %s", valueName(v), g.operand(v.Args[0]), g.operand(v.Args[1]))

	case ir.OpCall:
		f := v.Callee()
		if f == nil {
			g.errorf("func %s, %s: call without callee", fn.Name, v)
			return
		}
		g.emitCall(v, f.Sig, globalName(f.Name), v.Args)
	case ir.OpCallIndirect:
		sig := v.CallSig()
		if sig == nil || len(v.Args) == 0 {
			g.errorf("func %s, %s: indirect call without signature", fn.Name, v)
			return
		}
		g.emitCall(v, sig, g.operand(v.Args[0]), v.Args[1:])

	default:
		g.errorf("func %s, %s: unhandled op %s", fn.Name, v, v.Op)
	}
}

// emitCall emits a call through callee with signature sig.
// Variadic callees are called with their full function type.
func (g *generator) emitCall(v *ir.Value, sig *ir.Signature, callee string, args []*ir.Value) {
	argStrs := make([]string, len(args))
	for i, a := range args {
		argStrs[i] = llvmType(a.Type) + " " + g.operand(a)
	}
	ty := llvmType(sig.Result)
	if sig.Variadic {
		ty = llvmFuncType(sig)
	}
	g.e.emitInst("%s = call %s %s(%s)", valueName(v), ty, callee, join(argStrs))
}

// lowerTerminator emits the block terminator instruction.
// A block that was never terminated renders as unreachable.
func (g *generator) lowerTerminator(b *ir.Block) {
	switch b.Kind {
	case ir.BlockReturn:
		if len(b.Controls) > 0 && b.Controls[0] != nil {
			retVal := b.Controls[0]
			g.e.emitInst("ret %s %s", llvmType(retVal.Type), g.operand(retVal))
		} else {
			g.e.emitInst("ret void")
		}
	default:
		g.e.emitInst("unreachable")
	}
}

// operand returns the LLVM IR operand string for an IR value.
// Constants and addresses are inlined, others use their %vN name.
func (g *generator) operand(v *ir.Value) string {
	switch v.Op {
	case ir.OpConst32:
		return strconv.FormatInt(v.AuxInt, 10)
	case ir.OpGlobalAddr:
		if gl, ok := v.Aux.(*ir.Global); ok {
			return globalName(gl.Name)
		}
	case ir.OpFuncAddr:
		if f := v.Callee(); f != nil {
			return globalName(f.Name)
		}
	case ir.OpArg:
		return argName(v.AuxInt)
	}
	return valueName(v)
}

func join(list []string) string {
	return strings.Join(list, ", ")
}

// llvmEscapeString returns an LLVM IR escaped string literal.
// Non-printable characters, quote and backslash are escaped as \HH.
func llvmEscapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' || c < 0x20 || c >= 0x7f {
			fmt.Fprintf(&b, "\\%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
