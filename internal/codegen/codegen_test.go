package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/rtabi"
)

var (
	sigAdd    = ir.NewSignature(ir.TypeI32, false, ir.TypeI32, ir.TypeI32)
	sigPrintf = ir.NewSignature(ir.TypeI32, true, ir.TypePtr)
	sigMain   = ir.NewSignature(ir.TypeI32, false)
)

func const32(f *ir.Func, n int64) *ir.Value {
	v := f.NewValue(f.Entry, ir.OpConst32, ir.TypeI32)
	v.AuxInt = n
	return v
}

func makeAdd(m *ir.Module) *ir.Func {
	add := m.NewFunc(rtabi.AddFunc, sigAdd)
	a := add.NewValue(add.Entry, ir.OpArg, ir.TypeI32)
	b := add.NewValue(add.Entry, ir.OpArg, ir.TypeI32)
	b.AuxInt = 1
	add.Entry.Return(add.NewValue(add.Entry, ir.OpAdd32, ir.TypeI32, a, b))
	return add
}

func generate(t *testing.T, m *ir.Module) string {
	t.Helper()
	require.NoError(t, ir.VerifyModule(m))
	var sb strings.Builder
	require.NoError(t, Generate(&sb, m))
	return sb.String()
}

func TestGenerateProgram(t *testing.T) {
	m := ir.NewModule("main", rtabi.DefaultTriple)
	printf := m.NewExtern(rtabi.OutputPrimitive, sigPrintf)
	add := makeAdd(m)

	main := m.NewFunc(rtabi.EntryFunc, sigMain)
	call := main.NewValue(main.Entry, ir.OpCall, ir.TypeI32, const32(main, 2), const32(main, 3))
	call.Aux = add
	slot := main.NewValue(main.Entry, ir.OpAlloca, ir.TypePtr)
	slot.Elem = ir.TypeI32
	slot.Aux = "+"
	main.NewValue(main.Entry, ir.OpStore, ir.TypeVoid, slot, call)
	x := main.NewValue(main.Entry, ir.OpLoad, ir.TypeI32, slot)
	format := main.NewValue(main.Entry, ir.OpGlobalAddr, ir.TypePtr)
	format.Aux = m.StringConst(rtabi.PrintFormat)
	out := main.NewValue(main.Entry, ir.OpCall, ir.TypeI32, format, x)
	out.Aux = printf
	main.Entry.Return(const32(main, rtabi.EntryStatus))

	want := `; ModuleID = 'main'
source_filename = "main"
target triple = "x86_64-pc-linux-gnu"

@.str.0 = private unnamed_addr constant [4 x i8] c"%d\0A\00", align 1

declare i32 @printf(ptr, ...)

define i32 @"+"(i32 %arg0, i32 %arg1) {
entry:
  %v2 = add i32 %arg0, %arg1
  ret i32 %v2
}

define i32 @main() {
entry:
  %v2 = call i32 @"+"(i32 2, i32 3)
  %v3 = alloca i32 ; +
  store i32 %v2, ptr %v3
  %v5 = load i32, ptr %v3
  %v7 = call i32 (ptr, ...) @printf(ptr @.str.0, i32 %v5)
  ret i32 0
}
`
	if diff := cmp.Diff(want, generate(t, m)); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIndirectCall(t *testing.T) {
	m := ir.NewModule("ind", "")
	add := makeAdd(m)

	main := m.NewFunc(rtabi.EntryFunc, sigMain)
	fa := main.NewValue(main.Entry, ir.OpFuncAddr, ir.TypePtr)
	fa.Aux = add
	slot := main.NewValue(main.Entry, ir.OpAlloca, ir.TypePtr)
	slot.Elem = ir.TypePtr
	slot.Aux = "g"
	main.NewValue(main.Entry, ir.OpStore, ir.TypeVoid, slot, fa)
	fn := main.NewValue(main.Entry, ir.OpLoad, ir.TypePtr, slot)
	call := main.NewValue(main.Entry, ir.OpCallIndirect, ir.TypeI32, fn, const32(main, 1), const32(main, 2))
	call.Aux = sigAdd
	main.Entry.Return(call)

	got := generate(t, m)
	assert.NotContains(t, got, "target triple")
	assert.Contains(t, got, `store ptr @"+", ptr %v1`)
	assert.Contains(t, got, "%v3 = load ptr, ptr %v1")
	assert.Contains(t, got, "%v6 = call i32 %v3(i32 1, i32 2)")
	assert.Contains(t, got, "ret i32 %v6")
}

func TestGeneratePartialFunction(t *testing.T) {
	m := ir.NewModule("partial", "")
	main := m.NewFunc(rtabi.EntryFunc, sigMain)
	const32(main, 1)

	var sb strings.Builder
	require.NoError(t, Generate(&sb, m))
	assert.True(t, strings.HasSuffix(sb.String(), "entry:\n  unreachable\n}\n"), sb.String())
}

func TestGenerateDeterministic(t *testing.T) {
	build := func() *ir.Module {
		m := ir.NewModule("d", rtabi.DefaultTriple)
		makeAdd(m)
		m.StringConst("a")
		m.StringConst("b")
		main := m.NewFunc(rtabi.EntryFunc, sigMain)
		main.Entry.Return(const32(main, 0))
		return m
	}
	assert.Equal(t, generate(t, build()), generate(t, build()))
}

func TestGenerateUnhandledOp(t *testing.T) {
	m := ir.NewModule("bad", "")
	main := m.NewFunc(rtabi.EntryFunc, sigMain)
	main.NewValue(main.Entry, ir.OpInvalid, ir.TypeI32)
	main.Entry.Return(const32(main, 0))

	var sb strings.Builder
	err := Generate(&sb, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unhandled op Invalid")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateWriteError(t *testing.T) {
	m := ir.NewModule("w", "")
	err := Generate(failWriter{}, m)
	require.Error(t, err)
	assert.Equal(t, "disk full", err.Error())
}

func TestGlobalName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main", "@main"},
		{"f.1", "@f.1"},
		{".str.0", "@.str.0"},
		{"+", `@"+"`},
		{"a b", `@"a b"`},
		{"1x", `@"1x"`},
		{`q"`, `@"q\22"`},
	}
	for _, tt := range tests {
		if got := globalName(tt.name); got != tt.want {
			t.Errorf("globalName(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestLLVMEscapeString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"%d\n", `%d\0A`},
		{`a\b`, `a\5Cb`},
		{"tab\t", `tab\09`},
		{"\x7f", `\7F`},
	}
	for _, tt := range tests {
		if got := llvmEscapeString(tt.in); got != tt.want {
			t.Errorf("llvmEscapeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLLVMFuncType(t *testing.T) {
	assert.Equal(t, "i32 (ptr, ...)", llvmFuncType(sigPrintf))
	assert.Equal(t, "i32 (i32, i32)", llvmFuncType(sigAdd))
	assert.Equal(t, "i32 ()", llvmFuncType(sigMain))
}
