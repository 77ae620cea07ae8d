// Package rtabi defines the ABI constants shared between the IR generator
// and the LLVM code generator. These values must be kept in sync with the
// C library the output is linked against.
package rtabi

// Target configuration
const (
	// DefaultTriple is the LLVM target triple used when none is configured.
	DefaultTriple = "x86_64-pc-linux-gnu"

	// DefaultModule is the module name used when none is configured.
	DefaultModule = "main"
)

// Basic type sizes in bytes
const (
	SizeInt = 4 // int32_t
	SizePtr = 8 // pointer
)

// LLVM type names for code generation
const (
	LLVMTypeInt  = "i32"
	LLVMTypePtr  = "ptr" // opaque pointer (LLVM 15+)
	LLVMTypeVoid = "void"
)
