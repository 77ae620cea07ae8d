package ir

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FprintModule writes the IR representation of a module to w:
// its globals, then every function in order.
func FprintModule(w io.Writer, m *Module) {
	fmt.Fprintf(w, "module %s", m.Name)
	if m.Triple != "" {
		fmt.Fprintf(w, " [%s]", m.Triple)
	}
	fmt.Fprintf(w, "\n")
	for _, g := range m.Globals {
		fmt.Fprintf(w, "global %s = %s\n", g.Name, strconv.Quote(g.Data))
	}
	for _, f := range m.Funcs {
		Fprint(w, f)
	}
}

// Fprint writes the IR representation of a function to w.
//
// Format:
//
//	func add(a i32, b i32) i32:
//	  b0: (entry)
//	    v0 = Arg <i32> [0] {a}
//	    v1 = Arg <i32> [1] {b}
//	    v2 = Add32 <i32> v0 v1
//	    Return v2
func Fprint(w io.Writer, f *Func) {
	fmt.Fprintf(w, "func %s(", f.Name)
	if f.Sig != nil {
		for i, t := range f.Sig.Params {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			if name := f.ParamName(i); name != "" {
				fmt.Fprintf(w, "%s ", name)
			}
			fmt.Fprintf(w, "%s", t)
		}
		if f.Sig.Variadic {
			if len(f.Sig.Params) > 0 {
				fmt.Fprintf(w, ", ")
			}
			fmt.Fprintf(w, "...")
		}
	}
	fmt.Fprintf(w, ")")
	if f.Sig != nil {
		fmt.Fprintf(w, " %s", f.Sig.Result)
	}
	if f.Extern {
		fmt.Fprintf(w, " extern\n")
		return
	}
	fmt.Fprintf(w, ":\n")

	for _, b := range f.Blocks {
		fprintBlock(w, b, f)
	}
}

func fprintBlock(w io.Writer, b *Block, f *Func) {
	label := ""
	if b == f.Entry {
		label = " (entry)"
	}
	fmt.Fprintf(w, "  %s:%s\n", b, label)

	for _, v := range b.Values {
		fmt.Fprintf(w, "    %s\n", formatValue(v))
	}
	fmt.Fprintf(w, "    %s\n", formatTerminator(b))
}

func formatValue(v *Value) string {
	var sb strings.Builder

	if v.Op.IsVoid() {
		sb.WriteString(v.Op.String())
	} else {
		fmt.Fprintf(&sb, "v%d = %s <%s>", v.ID, v.Op, v.Type)
	}

	switch v.Op {
	case OpConst32, OpArg:
		fmt.Fprintf(&sb, " [%d]", v.AuxInt)
	}

	if v.Op == OpAlloca {
		fmt.Fprintf(&sb, " {%s %s}", v.Elem, formatAux(v.Aux))
	} else if v.Aux != nil {
		fmt.Fprintf(&sb, " {%s}", formatAux(v.Aux))
	}

	for _, arg := range v.Args {
		fmt.Fprintf(&sb, " v%d", arg.ID)
	}
	return sb.String()
}

func formatTerminator(b *Block) string {
	switch b.Kind {
	case BlockPlain:
		return "Plain"
	case BlockReturn:
		if len(b.Controls) > 0 && b.Controls[0] != nil {
			return fmt.Sprintf("Return v%d", b.Controls[0].ID)
		}
		return "Return"
	default:
		return "???"
	}
}

func formatAux(aux interface{}) string {
	switch a := aux.(type) {
	case *Func:
		return a.Name
	case *Global:
		return a.Name
	case *Signature:
		return a.String()
	case string:
		return a
	default:
		return fmt.Sprintf("%v", aux)
	}
}

// Sprint returns the IR representation of a function as a string.
func Sprint(f *Func) string {
	var sb strings.Builder
	Fprint(&sb, f)
	return sb.String()
}

// SprintModule returns the IR representation of a module as a string.
func SprintModule(m *Module) string {
	var sb strings.Builder
	FprintModule(&sb, m)
	return sb.String()
}

// Print writes the IR representation of a function to stdout.
func Print(f *Func) {
	Fprint(os.Stdout, f)
}
