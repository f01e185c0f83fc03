package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
		kind string
	}{
		{_EOF, "EOF", "EOF"},

		{_Name, "IDENTIFIER", "IDENTIFIER"},
		{_Number, "NUMBER", "NUMBER"},
		{_String, "STRING", "STRING"},
		{_Boolean, "BOOLEAN", "BOOLEAN"},

		{_Assign, "=", "EQUALS"},
		{_Eql, "==", "EQ"},
		{_Lss, "<", "LT"},
		{_Gtr, ">", "GT"},
		{_Add, "+", "PLUS"},
		{_Sub, "-", "MINUS"},
		{_Mul, "*", "TIMES"},
		{_Div, "/", "DIVIDE"},
		{_Increment, "++", "INCREMENT"},

		{_Lparen, "(", "LPAREN"},
		{_Rparen, ")", "RPAREN"},
		{_Lbrace, "{", "LBRACE"},
		{_Rbrace, "}", "RBRACE"},
		{_Colon, ":", "COLON"},
		{_Comma, ",", "COMMA"},
		{_Semi, ";", "SEMICOLON"},

		{_Break, "break", "BREAK"},
		{_Case, "case", "CASE"},
		{_Def, "def", "DEF"},
		{_Else, "else", "ELSE"},
		{_For, "for", "FOR"},
		{_If, "if", "IF"},
		{_In, "in", "IN"},
		{_Range, "range", "RANGE"},
		{_Return, "return", "RETURN"},
		{_Switch, "switch", "SWITCH"},
	}

	assert.Len(t, tests, int(tokenCount), "every token needs a row")
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
			assert.Equal(t, tt.kind, tt.tok.Kind())
		})
	}
}

func TestTokenStringUnknown(t *testing.T) {
	tok := Token(999)
	assert.True(t, strings.HasPrefix(tok.String(), "token("))
	assert.True(t, strings.HasPrefix(tok.Kind(), "token("))
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		tok  Token
		want int
	}{
		// Relational operators are not expression operators.
		{_Eql, 0},
		{_Lss, 0},
		{_Gtr, 0},

		{_EOF, 0},
		{_Name, 0},
		{_Assign, 0},
		{_Increment, 0},
		{_Lparen, 0},

		{_Add, 1},
		{_Sub, 1},

		{_Mul, 2},
		{_Div, 2},
	}

	for _, tt := range tests {
		t.Run(tt.tok.Kind(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.Precedence())
		})
	}
}

func TestTokenClasses(t *testing.T) {
	keywords := []Token{_Break, _Case, _Def, _Else, _For, _If, _In, _Range, _Return, _Switch}
	for _, tok := range keywords {
		assert.True(t, tok.IsKeyword(), "%v", tok)
		assert.False(t, tok.IsOperator(), "%v", tok)
	}

	literals := []Token{_Number, _String, _Boolean}
	for _, tok := range literals {
		assert.True(t, tok.IsLiteral(), "%v", tok)
		assert.False(t, tok.IsKeyword(), "%v", tok)
	}

	operators := []Token{_Assign, _Eql, _Lss, _Gtr, _Add, _Sub, _Mul, _Div, _Increment}
	for _, tok := range operators {
		assert.True(t, tok.IsOperator(), "%v", tok)
		assert.False(t, tok.IsLiteral(), "%v", tok)
	}

	for _, tok := range []Token{_EOF, _Name, _Lparen, _Semi} {
		assert.False(t, tok.IsKeyword(), "%v", tok)
		assert.False(t, tok.IsLiteral(), "%v", tok)
		assert.False(t, tok.IsOperator(), "%v", tok)
	}

	assert.True(t, _EOF.IsEOF())
	assert.False(t, _Semi.IsEOF())
}

func TestTokenIsRelational(t *testing.T) {
	for _, tok := range []Token{_Gtr, _Lss, _Eql} {
		assert.True(t, tok.IsRelational(), "%v", tok)
	}
	for _, tok := range []Token{_Assign, _Add, _Increment, _Name} {
		assert.False(t, tok.IsRelational(), "%v", tok)
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"if", _If},
		{"else", _Else},
		{"for", _For},
		{"in", _In},
		{"range", _Range},
		{"switch", _Switch},
		{"case", _Case},
		{"return", _Return},
		{"break", _Break},
		{"def", _Def},
		{"true", _Boolean},
		{"false", _Boolean},

		{"foo", _Name},
		{"IF", _Name},
		{"True", _Name},
		{"print", _Name},
		{"elif", _Name},
		{"while", _Name},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupKeyword(tt.ident))
		})
	}
}

func TestExportedTokens(t *testing.T) {
	tests := []struct {
		tok  Token
		want Token
	}{
		{EOF, _EOF},
		{Ident, _Name},
		{Number, _Number},
		{String, _String},
		{Boolean, _Boolean},
		{Add, _Add},
		{Sub, _Sub},
		{Mul, _Mul},
		{Div, _Div},
		{Gtr, _Gtr},
		{Lss, _Lss},
		{Eql, _Eql},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok, tt.want.Kind())
	}

	// Operators seen on parsed nodes compare against the exported names.
	s := singleStmt[*AssignStmt](t, "x = a * b;")
	assert.Equal(t, Mul, s.Value.(*Operation).Op)
	toks, _ := Tokenize("", "x")
	assert.Equal(t, Ident, toks[0].Tok)
}

func TestLitKindString(t *testing.T) {
	assert.Equal(t, "int", IntLit.String())
	assert.Equal(t, "string", StringLit.String())
	assert.Equal(t, "bool", BoolLit.String())
	assert.Equal(t, "LitKind(9)", LitKind(9).String())
}
