// Package syntax implements lexical and syntactic analysis for the Kestrel
// expression language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name   // identifier: x, add, +, print
	_Int    // integer literal: 42
	_Float  // float literal: 1.5 (scanned but not accepted by the parser)
	_String // string literal: "hello\n"

	// Delimiters
	_Assign // =
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Colon  // :
	_At     // @

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "NAME",
	_Int:    "INT",
	_Float:  "FLOAT",
	_String: "STRING",

	_Assign: "=",
	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",
	_At:     "@",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", t)
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t == _EOF }

// IsLiteral reports whether the token carries a literal value.
func (t Token) IsLiteral() bool {
	return t == _Int || t == _Float || t == _String
}

// delimiters maps single-character delimiters to their tokens.
var delimiters = map[rune]Token{
	'=': _Assign,
	'(': _Lparen,
	')': _Rparen,
	'{': _Lbrace,
	'}': _Rbrace,
	',': _Comma,
	';': _Semi,
	':': _Colon,
}
