package rtabi

// Function names known to the compiler.
const (
	// EntryFunc is the program entry point; it returns EntryStatus.
	EntryFunc = "main"

	// OutputPrimitive is the C library formatted output function.
	OutputPrimitive = "printf"

	// AddFunc is the built-in integer addition.
	AddFunc = "+"

	// PrintFunc is the built-in that prints one integer and a newline.
	PrintFunc = "print"
)

// PrintFormat is the format string PrintFunc passes to OutputPrimitive.
const PrintFormat = "%d\n"

// EntryStatus is the value returned from EntryFunc.
const EntryStatus = 0

// FuncSignature describes an external function's signature for code generation.
type FuncSignature struct {
	Name       string   // Function name
	ReturnType string   // LLVM return type
	ParamTypes []string // LLVM fixed parameter types
	Variadic   bool     // accepts extra arguments
}

// ExternalFunctions returns the signatures of the C library functions the
// generated code may call.
func ExternalFunctions() []FuncSignature {
	return []FuncSignature{
		{Name: OutputPrimitive, ReturnType: LLVMTypeInt, ParamTypes: []string{LLVMTypePtr}, Variadic: true},
	}
}

// LookupExternal returns the signature of the named external function.
func LookupExternal(name string) (FuncSignature, bool) {
	for _, fs := range ExternalFunctions() {
		if fs.Name == name {
			return fs, true
		}
	}
	return FuncSignature{}, false
}
