// Package syntax implements lexical and syntactic analysis for the afll language.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes are either statements or expressions. Conditions are neither:
// they only appear as the guard of an if statement, so a comparison can
// never be nested in arithmetic or used as a statement.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root of every successful parse.
type Program struct {
	node
	Stmts []Stmt // top-level statements, at least one
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit represents a number, string or boolean literal.
type BasicLit struct {
	expr
	Value    string  // source text; strings keep their quotes
	Kind     LitKind // IntLit, StringLit, BoolLit
	Int      int64   // parsed value, only for IntLit
	Overflow bool    // IntLit beyond int64; Int is clamped, Value is exact
}

// Operation represents a binary arithmetic operation X Op Y.
type Operation struct {
	expr
	Op Token // Add, Sub, Mul or Div
	X  Expr  // left operand
	Y  Expr  // right operand
}

// Condition represents a comparison X Op Y guarding an if statement.
type Condition struct {
	node
	Op Token // Gtr, Lss or Eql
	X  Expr
	Y  Expr
}

// ----------------------------------------------------------------------------
// Statements

// BlockStmt represents a braced statement list: { Stmts... [break;] }
type BlockStmt struct {
	stmt
	Stmts  []Stmt // statements, possibly none
	Break  Pos    // position of a terminating break, invalid if absent
	Rbrace Pos    // position of closing brace
}

// Breaks reports whether the block ends with a break.
func (b *BlockStmt) Breaks() bool {
	return b.Break.IsValid()
}

// IfStmt represents: if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond *Condition
	Then *BlockStmt
	Else *BlockStmt // nil if absent
}

// ForStmt represents: for Var in range(Range) Body
type ForStmt struct {
	stmt
	Var   *Name
	Range *BasicLit // IntLit bound
	Body  *BlockStmt
}

// SwitchStmt represents: switch (Tag) { Cases... }
type SwitchStmt struct {
	stmt
	Tag   Expr
	Cases []*CaseClause // at least one
}

// CaseClause represents: case Value: Body... break;
// It is only reachable through SwitchStmt.Cases.
type CaseClause struct {
	node
	Value Expr
	Body  []Stmt // statements before the break, possibly none
	Break Pos    // position of the terminating break
}

// FuncDef represents: def Name(): Body
// The body is a single statement, not necessarily a block.
type FuncDef struct {
	stmt
	Name   *Name
	Params []*Name // always empty; the grammar has no parameters
	Body   Stmt
}

// ReturnStmt represents: return Result;
type ReturnStmt struct {
	stmt
	Result Expr
}

// CallStmt represents a call used as a statement: Fun(Args...);
type CallStmt struct {
	stmt
	Fun  *Name
	Args []Expr
}

// AssignStmt represents: Target = Value;
type AssignStmt struct {
	stmt
	Target *Name
	Value  Expr
}
