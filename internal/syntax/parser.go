package syntax

import (
	"io"
	"strings"
)

// tokenSource supplies tokens to a Parser one at a time.
type tokenSource interface {
	Next()
	Lexeme() Lexeme
}

// Parser performs syntax analysis on afll source code.
//
// Parsing is fail-fast: the first token that cannot extend any
// production ends the parse with a *SyntaxError and no AST. A Parser
// owns its token source and parses exactly once.
type Parser struct {
	src tokenSource

	// Current token info (cached from the source)
	tok Token
	lit string
	val int64
	ovf bool
	pos Pos

	err *SyntaxError // the error that stopped the parse
}

// bailout unwinds the recursive descent after the first syntax error.
type bailout struct{}

// NewParser creates a new Parser for the given source. Lexical errors
// are reported through errh while parsing continues.
func NewParser(filename string, src io.Reader, errh ErrorHandler) *Parser {
	return newParser(NewScanner(filename, src, errh))
}

// NewTokenParser creates a Parser over an already scanned token
// sequence, such as the result of Tokenize.
func NewTokenParser(toks []Lexeme) *Parser {
	return newParser(&sliceSource{toks: toks})
}

func newParser(src tokenSource) *Parser {
	p := &Parser{src: src}
	p.next() // prime the parser with first token
	return p
}

// Parse parses src as a complete program.
func Parse(filename, src string, errh ErrorHandler) (*Program, error) {
	return NewParser(filename, strings.NewReader(src), errh).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.src.Next()
	l := p.src.Lexeme()
	p.tok, p.lit, p.val, p.ovf, p.pos = l.Tok, l.Lit, l.Value, l.Overflow, l.Pos
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, it stops the parse.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError()
	}
}

// expect is like want but returns the position of the expected token.
func (p *Parser) expect(tok Token) Pos {
	pos := p.pos
	p.want(tok)
	return pos
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError records the current token as the offending one and
// unwinds to Parse.
func (p *Parser) syntaxError() {
	p.err = &SyntaxError{Pos: p.pos, Tok: p.tok, Lit: p.lit}
	panic(bailout{})
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program: one or more statements up to EOF.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog, err = nil, p.err
		}
	}()

	prog = &Program{}
	prog.pos = p.pos

	if p.tok == _EOF {
		p.syntaxError()
	}
	for p.tok != _EOF {
		prog.Stmts = append(prog.Stmts, p.stmt())
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.syntaxError()
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	case _For:
		return p.forStmt()

	case _Switch:
		return p.switchStmt()

	case _Def:
		return p.funcDef()

	case _Return:
		return p.returnStmt()

	case _Name:
		return p.simpleStmt()

	default:
		p.syntaxError()
		return nil
	}
}

// simpleStmt parses the statements that start with an identifier:
// an assignment or a call.
func (p *Parser) simpleStmt() Stmt {
	n := p.name()

	switch p.tok {
	case _Assign:
		return p.assignStmt(n)
	case _Lparen:
		return p.callStmt(n)
	default:
		p.syntaxError()
		return nil
	}
}

// assignStmt parses: Target = Value ;
func (p *Parser) assignStmt(target *Name) Stmt {
	s := &AssignStmt{Target: target}
	s.pos = target.Pos()

	p.want(_Assign)
	s.Value = p.expr()
	p.want(_Semi)

	return s
}

// callStmt parses: Fun ( [args] ) ;
func (p *Parser) callStmt(fun *Name) Stmt {
	s := &CallStmt{Fun: fun}
	s.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		s.Args = p.exprList()
	}
	p.want(_Rparen)
	p.want(_Semi)

	return s
}

// blockStmt parses { stmts... [break ;] }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)

	for p.tok != _Rbrace && p.tok != _Break {
		b.Stmts = append(b.Stmts, p.stmt())
	}

	if p.tok == _Break {
		b.Break = p.pos
		p.next()
		p.want(_Semi)
	}

	b.Rbrace = p.expect(_Rbrace)
	return b
}

// ifStmt parses: if ( cond ) { then } [else { else }]
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	p.want(_Lparen)
	s.Cond = p.condition()
	p.want(_Rparen)
	s.Then = p.blockStmt()

	if p.got(_Else) {
		s.Else = p.blockStmt()
	}

	return s
}

// forStmt parses: for name in range ( NUMBER ) { body }
func (p *Parser) forStmt() Stmt {
	s := &ForStmt{}
	s.pos = p.pos

	p.want(_For)
	s.Var = p.name()
	p.want(_In)
	p.want(_Range)
	p.want(_Lparen)

	if p.tok != _Number {
		p.syntaxError()
	}
	s.Range = p.literal()

	p.want(_Rparen)
	s.Body = p.blockStmt()
	return s
}

// switchStmt parses: switch ( expr ) { case... }
func (p *Parser) switchStmt() Stmt {
	s := &SwitchStmt{}
	s.pos = p.pos

	p.want(_Switch)
	p.want(_Lparen)
	s.Tag = p.expr()
	p.want(_Rparen)
	p.want(_Lbrace)

	for {
		s.Cases = append(s.Cases, p.caseClause())
		if p.tok != _Case {
			break
		}
	}

	p.want(_Rbrace)
	return s
}

// caseClause parses: case expr : stmts... break ;
func (p *Parser) caseClause() *CaseClause {
	c := &CaseClause{}
	c.pos = p.pos

	p.want(_Case)
	c.Value = p.expr()
	p.want(_Colon)

	for p.tok != _Break {
		c.Body = append(c.Body, p.stmt())
	}

	c.Break = p.expect(_Break)
	p.want(_Semi)
	return c
}

// funcDef parses: def name ( ) : stmt
func (p *Parser) funcDef() Stmt {
	d := &FuncDef{Params: []*Name{}}
	d.pos = p.pos

	p.want(_Def)
	d.Name = p.name()
	p.want(_Lparen)
	p.want(_Rparen)
	p.want(_Colon)
	d.Body = p.stmt()

	return d
}

// returnStmt parses: return expr ;
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	p.want(_Return)
	s.Result = p.expr()
	p.want(_Semi)
	return s
}

// ----------------------------------------------------------------------------
// Conditions and expressions

// condition parses: expr ( > | < | == ) expr
func (p *Parser) condition() *Condition {
	c := &Condition{}
	c.pos = p.pos

	c.X = p.expr()
	if !p.tok.IsRelational() {
		p.syntaxError()
	}
	c.Op = p.tok
	p.next()
	c.Y = p.expr()

	return c
}

// expr parses an arithmetic expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Operators of equal precedence associate to the left.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.operand()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// operand parses an identifier, a literal or a parenthesized expression.
// Parentheses only group; they leave no node behind.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		return p.name()

	case _Number, _String, _Boolean:
		return p.literal()

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	default:
		p.syntaxError()
		return nil
	}
}

// literal parses the current NUMBER, STRING or BOOLEAN token.
func (p *Parser) literal() *BasicLit {
	lit := &BasicLit{Value: p.lit}
	lit.pos = p.pos
	switch p.tok {
	case _Number:
		lit.Kind = IntLit
		lit.Int = p.val
		lit.Overflow = p.ovf
	case _String:
		lit.Kind = StringLit
	case _Boolean:
		lit.Kind = BoolLit
	default:
		p.syntaxError()
	}
	p.next()
	return lit
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}

// ----------------------------------------------------------------------------
// Token slices

// sliceSource replays a scanned token sequence, then returns EOF.
type sliceSource struct {
	toks []Lexeme
	i    int
	cur  Lexeme
}

func (s *sliceSource) Next() {
	if s.i < len(s.toks) {
		s.cur = s.toks[s.i]
		s.i++
		return
	}
	pos := NewPos("", 1, 1)
	if n := len(s.toks); n > 0 {
		pos = s.toks[n-1].Pos
	}
	s.cur = Lexeme{Tok: _EOF, Pos: pos}
}

func (s *sliceSource) Lexeme() Lexeme {
	return s.cur
}
