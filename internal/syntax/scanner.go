package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner performs lexical analysis on Kestrel source code.
type Scanner struct {
	source

	tok    Token  // token type
	lit    string // token literal (name, number text, string content)
	tokPos Pos    // token start position

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for src.
// errh is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
	}
}

// Next advances to the next token.
// Malformed input produces an _Error token and a call to the error handler;
// scanning never aborts the process.
func (s *Scanner) Next() {
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()

	if s.ch < 0 {
		s.tok = _EOF
		s.lit = ""
		return
	}

	if tok, ok := delimiters[s.ch]; ok {
		s.tok = tok
		s.lit = string(s.ch)
		s.nextch()
		return
	}

	switch {
	case s.ch == '"':
		s.scanString()
	case isWordChar(s.ch):
		s.scanWord()
	default:
		s.errorAt(s.tokPos, fmt.Sprintf("unexpected character %q", s.ch))
		s.tok = _Error
		s.lit = string(s.ch)
		s.nextch()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token { return s.tok }

// Literal returns the current token's literal text.
func (s *Scanner) Literal() string { return s.lit }

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos { return s.tokPos }

// scanWord scans a maximal run of word characters and classifies it.
// A run of digits is an integer, digits.digits is a float, a lone @ is
// the at-sign, and everything else is a name.
func (s *Scanner) scanWord() {
	s.litBuf.Reset()
	for isWordChar(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()

	switch {
	case s.lit == "@":
		s.tok = _At
	case isIntText(s.lit):
		if _, err := strconv.ParseInt(s.lit, 10, 32); err != nil {
			s.errorAt(s.tokPos, fmt.Sprintf("integer literal %s overflows i32", s.lit))
			s.tok = _Error
			return
		}
		s.tok = _Int
	case isFloatText(s.lit):
		s.tok = _Float
	default:
		s.tok = _Name
	}
}

// scanString scans a double-quoted string literal.
// The content is kept raw; escape sequences are interpreted later.
func (s *Scanner) scanString() {
	s.nextch() // opening quote
	s.litBuf.Reset()
	for s.ch != '"' {
		if s.ch < 0 {
			s.errorAt(s.tokPos, "string literal not terminated")
			s.tok = _Error
			s.lit = s.litBuf.String()
			return
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.nextch() // closing quote

	s.lit = s.litBuf.String()
	if s.lit == "" {
		s.errorAt(s.tokPos, "empty string literal")
		s.tok = _Error
		return
	}
	s.tok = _String
}

func isIntText(lit string) bool {
	for _, r := range lit {
		if !isDigit(r) {
			return false
		}
	}
	return lit != ""
}

func isFloatText(lit string) bool {
	whole, frac, ok := strings.Cut(lit, ".")
	return ok && isIntText(whole) && isIntText(frac)
}
