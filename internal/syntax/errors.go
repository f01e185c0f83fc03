package syntax

import (
	"fmt"
	"strings"
)

// ErrorHandler receives non-fatal diagnostics while scanning. The
// value is a *LexicalError, or the read error of the underlying input.
type ErrorHandler func(err error)

// LexicalError reports a character outside the token alphabet.
// Scanning continues after the offending character.
type LexicalError struct {
	Pos  Pos
	Char rune
}

func (e *LexicalError) Error() string {
	return e.prefix() + fmt.Sprintf("illegal character '%c' (line %d)", e.Char, e.Pos.Line())
}

func (e *LexicalError) prefix() string {
	if e.Pos.Filename() != "" {
		return e.Pos.Filename() + ": "
	}
	return ""
}

// SyntaxError reports the first token that cannot extend any production.
// It is fatal to the parse that produced it.
type SyntaxError struct {
	Pos Pos
	Tok Token
	Lit string // offending token text; empty at end of input
}

// AtEOF reports whether the error was raised at end of input.
func (e *SyntaxError) AtEOF() bool {
	return e.Tok == _EOF
}

func (e *SyntaxError) Error() string {
	var prefix string
	if e.Pos.Filename() != "" {
		prefix = e.Pos.Filename() + ": "
	}
	if e.AtEOF() {
		return prefix + "syntax error at EOF"
	}
	return prefix + fmt.Sprintf("syntax error at '%s' (line %d)", e.Lit, e.Pos.Line())
}

// ErrorList is a list of lexical errors in source order.
type ErrorList []*LexicalError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	b.WriteString(l[0].Error())
	fmt.Fprintf(&b, " (and %d more errors)", len(l)-1)
	return b.String()
}

// Err returns nil for an empty list and the list itself otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
