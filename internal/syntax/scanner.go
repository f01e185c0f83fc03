package syntax

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Scanner performs lexical analysis on afll source code.
// A Scanner is single-use; every scan owns its own cursor and line count.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token
	lit    string
	val    int64
	ovf    bool
	tokPos Pos

	errh ErrorHandler
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh ErrorHandler) *Scanner {
	s := &Scanner{errh: errh}
	s.source = *newSource(filename, src, errh)
	return s
}

// A rule tries to match at the current character. matched reports
// whether the rule consumed input; emit reports whether it produced a
// token.
type rule struct {
	name string
	scan func(s *Scanner) (matched, emit bool)
}

// rules lists the lexical rules in priority order. The first rule that
// matches at the current character wins.
var rules = [...]rule{
	{"identifier", (*Scanner).scanIdent},
	{"number", (*Scanner).scanNumber},
	{"string", (*Scanner).scanString},
	{"operator", (*Scanner).scanOperator},
	{"newline", (*Scanner).skipNewlines},
	{"whitespace", (*Scanner).skipWhitespace},
	{"illegal", (*Scanner).skipIllegal},
}

// operators is the fixed-text table. Longer spellings come before the
// shorter ones they overlap with.
var operators = [...]struct {
	text string
	tok  Token
}{
	{"++", _Increment},
	{"==", _Eql},
	{"=", _Assign},
	{">", _Gtr},
	{"<", _Lss},
	{"+", _Add},
	{"-", _Sub},
	{"*", _Mul},
	{"/", _Div},
	{"(", _Lparen},
	{")", _Rparen},
	{"{", _Lbrace},
	{"}", _Rbrace},
	{":", _Colon},
	{",", _Comma},
	{";", _Semi},
}

// Next advances to the next token. At end of input it keeps returning EOF.
func (s *Scanner) Next() {
	for {
		s.tokPos = s.pos()
		s.val = 0
		s.ovf = false
		if s.ch < 0 {
			s.tok = _EOF
			s.lit = ""
			return
		}
		for _, r := range rules {
			matched, emit := r.scan(s)
			if !matched {
				continue
			}
			if emit {
				return
			}
			break
		}
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's raw source text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Value returns the integer value of the current NUMBER token.
func (s *Scanner) Value() int64 {
	return s.val
}

// Overflow reports whether the current NUMBER token exceeds int64.
func (s *Scanner) Overflow() bool {
	return s.ovf
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Lexeme returns the current token as a Lexeme.
func (s *Scanner) Lexeme() Lexeme {
	return Lexeme{Tok: s.tok, Lit: s.lit, Value: s.val, Overflow: s.ovf, Pos: s.tokPos}
}

func (s *Scanner) error(err error) {
	if s.errh != nil {
		s.errh(err)
	}
}

// scanIdent scans an identifier and resolves keyword reservation in the
// same step, so a keyword spelling never yields IDENTIFIER.
func (s *Scanner) scanIdent() (matched, emit bool) {
	if !isLetter(s.ch) {
		return false, false
	}
	start := s.chOffs
	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextch()
	}
	s.lit = s.segment(start)
	s.tok = LookupKeyword(s.lit)
	return true, true
}

// scanNumber scans a run of decimal digits. Any length is a valid
// NUMBER; a value beyond int64 is clamped and flagged.
func (s *Scanner) scanNumber() (matched, emit bool) {
	if !isDigit(s.ch) {
		return false, false
	}
	start := s.chOffs
	for isDigit(s.ch) {
		s.nextch()
	}
	s.lit = s.segment(start)
	s.tok = _Number

	v, err := strconv.ParseInt(s.lit, 10, 64)
	if err != nil {
		v = math.MaxInt64
		s.ovf = true
	}
	s.val = v
	return true, true
}

// scanString scans a double-quoted string. A quote with no closing
// partner is left for the illegal character rule.
func (s *Scanner) scanString() (matched, emit bool) {
	if s.ch != '"' || !s.closes('"') {
		return false, false
	}
	start := s.chOffs
	s.nextch() // opening "
	for s.ch != '"' {
		s.nextch()
	}
	s.nextch() // closing "
	s.lit = s.segment(start)
	s.tok = _String
	return true, true
}

// scanOperator matches the fixed-text table.
func (s *Scanner) scanOperator() (matched, emit bool) {
	rest := s.rest()
	for _, op := range operators {
		if len(rest) >= len(op.text) && string(rest[:len(op.text)]) == op.text {
			s.skip(len(op.text))
			s.tok = op.tok
			s.lit = op.text
			return true, true
		}
	}
	return false, false
}

// skipNewlines consumes a run of newlines; the source advances the line count.
func (s *Scanner) skipNewlines() (matched, emit bool) {
	if s.ch != '\n' {
		return false, false
	}
	for s.ch == '\n' {
		s.nextch()
	}
	return true, false
}

// skipWhitespace skips spaces and tabs.
func (s *Scanner) skipWhitespace() (matched, emit bool) {
	if !isWhitespace(s.ch) {
		return false, false
	}
	for isWhitespace(s.ch) {
		s.nextch()
	}
	return true, false
}

// skipIllegal reports the current character and skips exactly it.
func (s *Scanner) skipIllegal() (matched, emit bool) {
	s.error(&LexicalError{Pos: s.pos(), Char: s.ch})
	s.nextch()
	return true, false
}

// Tokenize scans src to completion and returns its tokens, without the
// trailing EOF, together with every lexical error met on the way.
func Tokenize(filename, src string) ([]Lexeme, ErrorList) {
	var errs ErrorList
	s := NewScanner(filename, strings.NewReader(src), func(err error) {
		if le, ok := err.(*LexicalError); ok {
			errs = append(errs, le)
		}
	})

	var toks []Lexeme
	for {
		s.Next()
		if s.tok == _EOF {
			break
		}
		toks = append(toks, s.Lexeme())
	}
	return toks, errs
}
