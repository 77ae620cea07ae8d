package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// Error is a lexical or syntax error.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// token is a scanned token kept in the parser's lookahead buffer.
type token struct {
	tok Token
	lit string
	pos Pos
}

// Parser performs syntax analysis on Kestrel source code.
// It stops at the first lexical or syntax error; there is no recovery.
type Parser struct {
	scanner *Scanner

	// Current token
	tok Token
	lit string
	pos Pos

	peeked *token // one token of lookahead, nil if not yet scanned

	errh  func(pos Pos, msg string)
	first *Error // first error encountered
}

// NewParser creates a new Parser for src.
// errh, if non-nil, is called with the first error.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh}
	p.scanner = NewScanner(filename, src, p.errorAt)
	p.next()
	return p
}

// Parse parses a whole program and returns its top-level expressions.
func Parse(filename string, src io.Reader) ([]Expr, error) {
	p := NewParser(filename, src, nil)
	list := p.Parse()
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	return list, nil
}

// FirstError returns the error that stopped parsing, or nil.
func (p *Parser) FirstError() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	if p.first != nil {
		p.tok = _EOF
		return
	}
	var t token
	if p.peeked != nil {
		t = *p.peeked
		p.peeked = nil
	} else {
		t = p.scan()
	}
	p.tok, p.lit, p.pos = t.tok, t.lit, t.pos
	if p.tok == _Error {
		// The scanner already reported it.
		p.tok = _EOF
	}
}

// peek returns the token after the current one without consuming it.
func (p *Parser) peek() Token {
	if p.peeked == nil {
		t := p.scan()
		p.peeked = &t
	}
	return p.peeked.tok
}

func (p *Parser) scan() token {
	p.scanner.Next()
	return token{p.scanner.Token(), p.scanner.Literal(), p.scanner.Pos()}
}

func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String())
	}
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) syntaxError(msg string) {
	if p.tok == _EOF && p.first == nil {
		msg += ", found EOF"
	} else if p.first == nil {
		msg += fmt.Sprintf(", found %s", tokenText(p.tok, p.lit))
	}
	p.errorAt(p.pos, msg)
}

// errorAt records the first error; later ones are dropped.
func (p *Parser) errorAt(pos Pos, msg string) {
	if p.first != nil {
		return
	}
	p.first = &Error{Pos: pos, Msg: msg}
	if p.errh != nil {
		p.errh(pos, msg)
	}
	p.tok = _EOF
}

func tokenText(tok Token, lit string) string {
	switch tok {
	case _Name:
		return "name " + lit
	case _Int, _Float:
		return "literal " + lit
	case _String:
		return "literal " + strconv.Quote(lit)
	}
	return tok.String()
}

// ----------------------------------------------------------------------------
// Grammar

// Parse parses: [ expr { ";" expr } ] [ ";" ] EOF
func (p *Parser) Parse() []Expr {
	list := p.exprList(_EOF)
	if p.first == nil && p.tok != _EOF {
		p.syntaxError("expected ; or end of input")
	}
	if p.first != nil {
		return nil
	}
	return list
}

// exprList parses a semicolon-separated list ending before end.
// A trailing semicolon is allowed.
func (p *Parser) exprList(end Token) []Expr {
	var list []Expr
	for p.first == nil && p.tok != end && p.tok != _EOF {
		list = append(list, p.expr())
		if !p.got(_Semi) {
			break
		}
	}
	return list
}

// expr parses:
//
//	NAME "=" expr
//	NAME "(" args
//	"(" params "{" body "}"
//	atom [ NAME expr ]
func (p *Parser) expr() Expr {
	pos := p.pos
	switch p.tok {
	case _Name:
		switch p.peek() {
		case _Assign:
			name := p.name()
			p.want(_Assign)
			a := &AssignExpr{Name: name}
			a.pos = pos
			a.Value = p.expr()
			return a
		case _Lparen:
			c := &CallExpr{Fun: p.name()}
			c.pos = pos
			p.want(_Lparen)
			c.Args = p.args()
			return c
		}
	case _Lparen:
		return p.funcLit()
	}

	x := p.atom()
	if p.tok != _Name {
		return x
	}
	partial := &PartialExpr{Op: p.name()}
	partial.pos = pos
	partial.Y = p.expr()
	return foldPartial(x, partial)
}

// foldPartial attaches the left operand x to an infix tail, producing
// the call Op(x, Y).
func foldPartial(x Expr, partial *PartialExpr) *CallExpr {
	c := &CallExpr{Fun: partial.Op, Args: []Expr{x, partial.Y}}
	c.pos = x.Pos()
	return c
}

// atom parses: NAME | INT | STRING
func (p *Parser) atom() Expr {
	pos := p.pos
	switch p.tok {
	case _Name:
		return p.name()
	case _Int:
		v, _ := strconv.ParseInt(p.lit, 10, 32) // range checked by the scanner
		x := &IntLit{Value: int32(v)}
		x.pos = pos
		p.next()
		return x
	case _String:
		x := &StringLit{Value: p.lit}
		x.pos = pos
		p.next()
		return x
	case _Float:
		p.errorAt(pos, "float literals are not supported")
	default:
		p.syntaxError("expected expression")
	}
	bad := &EmptyExpr{}
	bad.pos = pos
	return bad
}

func (p *Parser) name() *Name {
	n := NewName(p.pos, p.lit)
	p.want(_Name)
	return n
}

// args parses: ")" | expr { "," expr } ")"
func (p *Parser) args() []Expr {
	var list []Expr
	if p.got(_Rparen) {
		return list
	}
	for p.first == nil {
		list = append(list, p.expr())
		if !p.got(_Comma) {
			break
		}
	}
	p.want(_Rparen)
	return list
}

// funcLit parses: "(" params "{" body "}"
func (p *Parser) funcLit() *FuncLit {
	f := &FuncLit{}
	f.pos = p.pos
	p.want(_Lparen)
	if !p.got(_Rparen) {
		for p.first == nil {
			f.Params = append(f.Params, p.name())
			if !p.got(_Comma) {
				break
			}
		}
		p.want(_Rparen)
	}
	p.want(_Lbrace)
	f.Body = p.exprList(_Rbrace)
	p.want(_Rbrace)
	return f
}
