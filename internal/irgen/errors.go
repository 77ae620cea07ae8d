package irgen

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// ErrorKind classifies a lowering error.
type ErrorKind int

const (
	_ ErrorKind = iota

	UndefinedSymbol       // Name
	ArityMismatch         // Name, Expected, Actual
	InvalidCallTarget     // Name
	UnassignedFunction    // function literal outside an assignment
	UnsupportedNode       // Name holds the node kind
	NoTailExpression      // Name is the function
	UnknownParameterShape // Index
	TypeMismatch          // Name, Want, Got
	SymbolConflict        // Name
)

var errorKindNames = [...]string{
	UndefinedSymbol:       "UndefinedSymbol",
	ArityMismatch:         "ArityMismatch",
	InvalidCallTarget:     "InvalidCallTarget",
	UnassignedFunction:    "UnassignedFunction",
	UnsupportedNode:       "UnsupportedNode",
	NoTailExpression:      "NoTailExpression",
	UnknownParameterShape: "UnknownParameterShape",
	TypeMismatch:          "TypeMismatch",
	SymbolConflict:        "SymbolConflict",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a lowering error. Which fields are set depends on Kind.
type Error struct {
	Kind ErrorKind
	Pos  syntax.Pos

	Name     string
	Expected int // ArityMismatch
	Actual   int // ArityMismatch
	Index    int // UnknownParameterShape
	Want     ir.Type
	Got      ir.Type
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.message()
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case UndefinedSymbol:
		return fmt.Sprintf("no defined function or variable %s", e.Name)
	case ArityMismatch:
		return fmt.Sprintf("incorrect arguments to call %s: got %d, expected %d", e.Name, e.Actual, e.Expected)
	case InvalidCallTarget:
		return fmt.Sprintf("%s is not a function", e.Name)
	case UnassignedFunction:
		return "unassigned function"
	case UnsupportedNode:
		return fmt.Sprintf("unsupported expression %s", e.Name)
	case NoTailExpression:
		return fmt.Sprintf("no tail expression in function %s", e.Name)
	case UnknownParameterShape:
		return fmt.Sprintf("unknown type for parameter %d", e.Index)
	case TypeMismatch:
		return fmt.Sprintf("type mismatch for %s: want %s, got %s", e.Name, e.Want, e.Got)
	case SymbolConflict:
		return fmt.Sprintf("%s is already defined", e.Name)
	}
	return e.Kind.String()
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// CompileError is returned by Compile. It carries the first error and the
// IR rendered up to the point of failure.
type CompileError struct {
	Err error
	IR  string
}

// Error returns the diagnostic followed by the partial IR.
func (e *CompileError) Error() string {
	return e.Err.Error() + "\n" + e.IR
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error { return e.Err }
