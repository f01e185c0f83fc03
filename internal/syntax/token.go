package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name    // identifier: x, something_else
	_Number  // 123
	_String  // "hello"
	_Boolean // true, false

	// Operators
	_Assign    // =
	_Eql       // ==
	_Lss       // <
	_Gtr       // >
	_Add       // +
	_Sub       // -
	_Mul       // *
	_Div       // /
	_Increment // ++

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Colon  // :
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Break
	_Case
	_Def
	_Else
	_For
	_If
	_In
	_Range
	_Return
	_Switch

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "IDENTIFIER",
	_Number:  "NUMBER",
	_String:  "STRING",
	_Boolean: "BOOLEAN",

	_Assign:    "=",
	_Eql:       "==",
	_Lss:       "<",
	_Gtr:       ">",
	_Add:       "+",
	_Sub:       "-",
	_Mul:       "*",
	_Div:       "/",
	_Increment: "++",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Colon:  ":",
	_Comma:  ",",
	_Semi:   ";",

	_Break:  "break",
	_Case:   "case",
	_Def:    "def",
	_Else:   "else",
	_For:    "for",
	_If:     "if",
	_In:     "in",
	_Range:  "range",
	_Return: "return",
	_Switch: "switch",
}

// kindNames maps tokens to the upper-case kind names used in token dumps.
var kindNames = [...]string{
	_EOF: "EOF",

	_Name:    "IDENTIFIER",
	_Number:  "NUMBER",
	_String:  "STRING",
	_Boolean: "BOOLEAN",

	_Assign:    "EQUALS",
	_Eql:       "EQ",
	_Lss:       "LT",
	_Gtr:       "GT",
	_Add:       "PLUS",
	_Sub:       "MINUS",
	_Mul:       "TIMES",
	_Div:       "DIVIDE",
	_Increment: "INCREMENT",

	_Lparen: "LPAREN",
	_Rparen: "RPAREN",
	_Lbrace: "LBRACE",
	_Rbrace: "RBRACE",
	_Colon:  "COLON",
	_Comma:  "COMMA",
	_Semi:   "SEMICOLON",

	_Break:  "BREAK",
	_Case:   "CASE",
	_Def:    "DEF",
	_Else:   "ELSE",
	_For:    "FOR",
	_If:     "IF",
	_In:     "IN",
	_Range:  "RANGE",
	_Return: "RETURN",
	_Switch: "SWITCH",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Kind returns the token's kind name, e.g. "LPAREN" or "IDENTIFIER".
func (t Token) Kind() string {
	if t < tokenCount {
		return kindNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for arithmetic operators.
// Returns 0 for non-operators. Relational operators are not part of
// expression precedence; they only appear in conditions.
//
//	1: + -
//	2: * /
func (t Token) Precedence() int {
	switch t {
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Break && t <= _Switch
}

// IsLiteral reports whether t is a NUMBER, STRING or BOOLEAN token.
func (t Token) IsLiteral() bool {
	return t >= _Number && t <= _Boolean
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Increment
}

// IsRelational reports whether t is one of the condition operators > < ==.
func (t Token) IsRelational() bool {
	return t == _Gtr || t == _Lss || t == _Eql
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported tokens for callers inspecting operators and lexemes.
const (
	EOF     Token = _EOF
	Ident   Token = _Name
	Number  Token = _Number
	String  Token = _String
	Boolean Token = _Boolean

	Add Token = _Add // +
	Sub Token = _Sub // -
	Mul Token = _Mul // *
	Div Token = _Div // /
	Gtr Token = _Gtr // >
	Lss Token = _Lss // <
	Eql Token = _Eql // ==
)

// LitKind represents the kind of a literal atom.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	StringLit                // "hello"
	BoolLit                  // true, false
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	StringLit: "string",
	BoolLit:   "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords is the reservation table consulted after an identifier has
// been scanned. true and false are reserved as BOOLEAN literals.
var keywords = map[string]Token{
	"break":  _Break,
	"case":   _Case,
	"def":    _Def,
	"else":   _Else,
	"false":  _Boolean,
	"for":    _For,
	"if":     _If,
	"in":     _In,
	"range":  _Range,
	"return": _Return,
	"switch": _Switch,
	"true":   _Boolean,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is reserved, returns the keyword (or BOOLEAN) token.
// Otherwise, returns the IDENTIFIER token.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Lexeme is one classified token produced by the scanner.
type Lexeme struct {
	Tok      Token  // token kind
	Lit      string // raw matched text (strings keep their quotes)
	Value    int64  // parsed integer, only set for NUMBER
	Overflow bool   // NUMBER does not fit in int64; Value is clamped, Lit is exact
	Pos      Pos    // start position
}

// Line returns the 1-based source line of the lexeme.
func (l Lexeme) Line() uint32 {
	return l.Pos.Line()
}

// String formats the lexeme as KIND(text)@line.
func (l Lexeme) String() string {
	if l.Tok == _EOF {
		return fmt.Sprintf("EOF@%d", l.Pos.Line())
	}
	return fmt.Sprintf("%s(%s)@%d", l.Tok.Kind(), l.Lit, l.Pos.Line())
}
