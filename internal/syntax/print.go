package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual representation of the expressions in list to w.
func Fprint(w io.Writer, list []Expr) {
	p := &printer{w: w}
	for _, x := range list {
		p.print(x)
	}
}

// Sprint returns the textual representation of a single expression.
func Sprint(x Expr) string {
	var sb strings.Builder
	p := &printer{w: &sb}
	p.print(x)
	return sb.String()
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) list(label string, list []Expr) {
	if len(list) == 0 {
		p.printf("%s: (none)\n", label)
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, x := range list {
		p.print(x)
	}
	p.indent--
}

func (p *printer) print(x Expr) {
	switch n := x.(type) {
	case nil:
		p.printf("<nil>\n")

	case *IntLit:
		p.printf("Integer %d %s\n", n.Value, n.pos)

	case *Name:
		p.printf("Identifier %q %s\n", n.Value, n.pos)

	case *StringLit:
		p.printf("StringLiteral %s %s\n", strconv.Quote(n.Value), n.pos)

	case *AssignExpr:
		p.printf("Assignment %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Value:\n")
		p.indent++
		p.print(n.Value)
		p.indent -= 2

	case *CallExpr:
		p.printf("Call %s\n", n.pos)
		p.indent++
		p.printf("Fun: %s\n", n.Fun.Value)
		p.list("Args", n.Args)
		p.indent--

	case *FuncLit:
		p.printf("Function %s\n", n.pos)
		p.indent++
		p.list("Params", n.Params)
		p.list("Body", n.Body)
		p.indent--

	case *PartialExpr:
		p.printf("Partial %s\n", n.pos)
		p.indent++
		p.printf("Op: %s\n", n.Op.Value)
		p.printf("Y:\n")
		p.indent++
		p.print(n.Y)
		p.indent -= 2

	case *EmptyExpr:
		p.printf("Empty %s\n", n.pos)

	default:
		p.printf("%T\n", x)
	}
}
