package syntax

import (
	"strings"
	"testing"
)

// scanAll returns every token of src up to and including EOF or the first error.
func scanAll(src string) ([]Token, []string, []string) {
	var errs []string
	errh := func(pos Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	}
	s := NewScanner("", strings.NewReader(src), errh)

	var toks []Token
	var lits []string
	for {
		s.Next()
		toks = append(toks, s.Token())
		lits = append(lits, s.Literal())
		if s.Token() == _EOF || s.Token() == _Error {
			break
		}
	}
	return toks, lits, errs
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		{"empty", "", []Token{_EOF}, []string{""}},
		{"ident", "foo", []Token{_Name, _EOF}, []string{"foo", ""}},
		{"ident_digits", "foo123", []Token{_Name, _EOF}, []string{"foo123", ""}},
		{"ident_digit_prefix", "12abc", []Token{_Name, _EOF}, []string{"12abc", ""}},
		{"ident_plus", "+", []Token{_Name, _EOF}, []string{"+", ""}},
		{"ident_minus_number", "-5", []Token{_Name, _EOF}, []string{"-5", ""}},
		{"ident_at_prefix", "@x", []Token{_Name, _EOF}, []string{"@x", ""}},
		{"int", "42", []Token{_Int, _EOF}, []string{"42", ""}},
		{"int_max", "2147483647", []Token{_Int, _EOF}, []string{"2147483647", ""}},
		{"float", "1.5", []Token{_Float, _EOF}, []string{"1.5", ""}},
		{"float_like_name", "1.", []Token{_Name, _EOF}, []string{"1.", ""}},
		{"string", `"hi there"`, []Token{_String, _EOF}, []string{"hi there", ""}},
		{"string_raw_escape", `"%d\n"`, []Token{_String, _EOF}, []string{`%d\n`, ""}},
		{"string_multiline", "\"a\nb\"", []Token{_String, _EOF}, []string{"a\nb", ""}},
		{"at", "@", []Token{_At, _EOF}, []string{"@", ""}},
		{
			"delimiters", "= ( ) { } , ; :",
			[]Token{_Assign, _Lparen, _Rparen, _Lbrace, _Rbrace, _Comma, _Semi, _Colon, _EOF},
			[]string{"=", "(", ")", "{", "}", ",", ";", ":", ""},
		},
		{
			"assignment", "x=1",
			[]Token{_Name, _Assign, _Int, _EOF},
			[]string{"x", "=", "1", ""},
		},
		{
			"call", "add(2,3)",
			[]Token{_Name, _Lparen, _Int, _Comma, _Int, _Rparen, _EOF},
			[]string{"add", "(", "2", ",", "3", ")", ""},
		},
		{
			"infix", "a + b",
			[]Token{_Name, _Name, _Name, _EOF},
			[]string{"a", "+", "b", ""},
		},
		{
			"whitespace", " \t\r\nx\n",
			[]Token{_Name, _EOF},
			[]string{"x", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, lits, errs := scanAll(tt.src)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(toks) != len(tt.tokens) {
				t.Fatalf("got %d tokens %v, want %d %v", len(toks), toks, len(tt.tokens), tt.tokens)
			}
			for i := range toks {
				if toks[i] != tt.tokens[i] {
					t.Errorf("token[%d] = %v, want %v", i, toks[i], tt.tokens[i])
				}
				if lits[i] != tt.lits[i] {
					t.Errorf("lit[%d] = %q, want %q", i, lits[i], tt.lits[i])
				}
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty_string", `x ""`, `1:3: empty string literal`},
		{"unterminated_string", `"abc`, `1:1: string literal not terminated`},
		{"int_overflow", `2147483648`, `1:1: integer literal 2147483648 overflows i32`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _, errs := scanAll(tt.src)
			if len(errs) != 1 {
				t.Fatalf("got %d errors %v, want 1", len(errs), errs)
			}
			if errs[0] != tt.msg {
				t.Errorf("error = %q, want %q", errs[0], tt.msg)
			}
			if last := toks[len(toks)-1]; last != _Error {
				t.Errorf("last token = %v, want ERROR", last)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	s := NewScanner("pos.ks", strings.NewReader("a =\n  (x)"), nil)

	want := []struct {
		tok       Token
		line, col uint32
	}{
		{_Name, 1, 1},
		{_Assign, 1, 3},
		{_Lparen, 2, 3},
		{_Name, 2, 4},
		{_Rparen, 2, 5},
		{_EOF, 2, 6},
	}
	for i, w := range want {
		s.Next()
		pos := s.Pos()
		if s.Token() != w.tok || pos.Line() != w.line || pos.Col() != w.col {
			t.Errorf("token %d = %v at %d:%d, want %v at %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), w.tok, w.line, w.col)
		}
		if pos.Filename() != "pos.ks" {
			t.Errorf("token %d filename = %q", i, pos.Filename())
		}
	}
}

func TestPosString(t *testing.T) {
	if got := NewPos("f.ks", 3, 7).String(); got != "f.ks:3:7" {
		t.Errorf("String() = %q", got)
	}
	if got := NewPos("", 3, 7).String(); got != "3:7" {
		t.Errorf("String() without file = %q", got)
	}
	var zero Pos
	if zero.IsValid() {
		t.Error("zero Pos is valid")
	}
	if got := zero.String(); got != "-" {
		t.Errorf("zero String() = %q", got)
	}
}

func TestTokenString(t *testing.T) {
	if _Assign.String() != "=" || _EOF.String() != "EOF" || _Name.String() != "NAME" {
		t.Errorf("unexpected token names: %v %v %v", _Assign, _EOF, _Name)
	}
	if got := Token(999).String(); got != "Token(999)" {
		t.Errorf("out of range token = %q", got)
	}
	if !_String.IsLiteral() || _Name.IsLiteral() {
		t.Error("IsLiteral mismatch")
	}
}
