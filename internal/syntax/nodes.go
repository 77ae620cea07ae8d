package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Kestrel programs are sequences of expressions. The set of expression node
// types is closed: the marker methods below are unexported, so only this
// package can add implementations, and consumers switch over the concrete
// types listed in this file.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Expressions

// IntLit represents an integer literal.
type IntLit struct {
	expr
	Value int32
}

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// StringLit represents a string literal. Value is the raw text between the
// quotes; the \n escape has not been interpreted yet.
type StringLit struct {
	expr
	Value string
}

// AssignExpr represents Name = Value.
// It is the only place a FuncLit may appear.
type AssignExpr struct {
	expr
	Name  *Name
	Value Expr
}

// CallExpr represents Fun(Args...), and also infix forms such as a + b,
// which the parser rewrites to +(a, b).
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// FuncLit represents a function literal: (Params) { Body }
// Params holds *Name nodes when produced by the parser.
type FuncLit struct {
	expr
	Params []Expr
	Body   []Expr
}

// PartialExpr is the right half of an infix call, Op Y, before its left
// operand is attached. The parser folds it into a CallExpr right away.
type PartialExpr struct {
	expr
	Op *Name
	Y  Expr
}

// EmptyExpr is a placeholder node.
type EmptyExpr struct {
	expr
}

// NewName returns a Name node at pos.
func NewName(pos Pos, value string) *Name {
	n := &Name{Value: value}
	n.pos = pos
	return n
}

// KindOf returns a short name for the node type of e.
func KindOf(e Expr) string {
	switch e.(type) {
	case *IntLit:
		return "Integer"
	case *Name:
		return "Identifier"
	case *StringLit:
		return "StringLiteral"
	case *AssignExpr:
		return "Assignment"
	case *CallExpr:
		return "Call"
	case *FuncLit:
		return "Function"
	case *PartialExpr:
		return "Partial"
	case *EmptyExpr:
		return "Empty"
	case nil:
		return "nil"
	}
	return "unknown"
}
