// Package codegen renders an IR module as LLVM IR text.
package codegen

import (
	"fmt"
	"io"

	"github.com/you-not-fish/kestrel/internal/ir"
)

// generator holds the state for rendering one module.
type generator struct {
	e   *emitter
	m   *ir.Module
	err error // first malformed-IR error
}

// Generate writes m to w as LLVM IR text.
//
// The output contains the module header, the string globals, a declaration
// for every extern function and a definition for every other function, in
// module order. The same module always renders to the same text.
func Generate(w io.Writer, m *ir.Module) error {
	g := &generator{
		e: &emitter{w: w},
		m: m,
	}
	g.module()
	if g.e.err != nil {
		return g.e.err
	}
	return g.err
}

func (g *generator) module() {
	g.e.emitComment(fmt.Sprintf("ModuleID = '%s'", g.m.Name))
	g.e.emit("source_filename = \"%s\"", llvmEscapeString(g.m.Name))
	if g.m.Triple != "" {
		g.e.emit("target triple = \"%s\"", g.m.Triple)
	}

	if len(g.m.Globals) > 0 {
		g.e.emitLine()
		for _, gl := range g.m.Globals {
			g.e.emit("%s = private unnamed_addr constant %s c\"%s\\00\", align 1",
				globalName(gl.Name), llvmArrayType(gl), llvmEscapeString(gl.Data))
		}
	}

	var defined []*ir.Func
	var externs []*ir.Func
	for _, f := range g.m.Funcs {
		if f.Extern {
			externs = append(externs, f)
		} else {
			defined = append(defined, f)
		}
	}

	if len(externs) > 0 {
		g.e.emitLine()
		for _, f := range externs {
			g.declareFunc(f)
		}
	}

	for _, f := range defined {
		g.e.emitLine()
		g.lowerFunc(f)
	}
}

// declareFunc emits the declaration of an extern function.
func (g *generator) declareFunc(f *ir.Func) {
	params := make([]string, 0, f.Sig.NumParams()+1)
	for _, p := range f.Sig.Params {
		params = append(params, llvmType(p))
	}
	if f.Sig.Variadic {
		params = append(params, "...")
	}
	g.e.emit("declare %s %s(%s)", llvmType(f.Sig.Result), globalName(f.Name), join(params))
}

// errorf records the first malformed-IR error.
func (g *generator) errorf(format string, args ...interface{}) {
	if g.err == nil {
		g.err = fmt.Errorf(format, args...)
	}
}
