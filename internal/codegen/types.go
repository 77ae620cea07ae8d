package codegen

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/rtabi"
)

// llvmType maps an IR type to its LLVM IR type string.
func llvmType(t ir.Type) string {
	switch t {
	case ir.TypeI32:
		return rtabi.LLVMTypeInt
	case ir.TypePtr:
		return rtabi.LLVMTypePtr
	}
	return rtabi.LLVMTypeVoid
}

// llvmFuncType returns the LLVM function type for sig, e.g. "i32 (ptr, ...)".
func llvmFuncType(sig *ir.Signature) string {
	params := make([]string, 0, len(sig.Params)+1)
	for _, p := range sig.Params {
		params = append(params, llvmType(p))
	}
	if sig.Variadic {
		params = append(params, "...")
	}
	return llvmType(sig.Result) + " (" + strings.Join(params, ", ") + ")"
}

// llvmArrayType returns the LLVM type of a string global's storage.
func llvmArrayType(g *ir.Global) string {
	return "[" + strconv.Itoa(g.Size()) + " x i8]"
}

var plainIdent = regexp.MustCompile(`^[-a-zA-Z$._][-a-zA-Z$._0-9]*$`)

// globalName returns the LLVM global identifier for name, quoting names
// such as "+" that are not plain identifiers.
func globalName(name string) string {
	if plainIdent.MatchString(name) {
		return "@" + name
	}
	return `@"` + llvmEscapeString(name) + `"`
}
