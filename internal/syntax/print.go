package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// section prints a labelled child one level deeper.
func (p *printer) section(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) stmts(label string, list []Stmt) {
	if len(list) == 0 {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, s := range list {
		p.print(s)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		if n.Breaks() {
			p.printf("Break %s\n", n.Break)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.section("Cond", n.Cond)
		p.section("Then", n.Then)
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		p.printf("Var: %s\n", n.Var.Value)
		p.printf("Range: %s\n", n.Range.Value)
		p.section("Body", n.Body)
		p.indent--

	case *SwitchStmt:
		p.printf("SwitchStmt %s\n", n.pos)
		p.indent++
		p.section("Tag", n.Tag)
		for _, c := range n.Cases {
			p.print(c)
		}
		p.indent--

	case *CaseClause:
		p.printf("CaseClause %s\n", n.pos)
		p.indent++
		p.section("Value", n.Value)
		p.stmts("Body", n.Body)
		p.indent--

	case *FuncDef:
		p.printf("FuncDef %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.section("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		p.indent++
		p.print(n.Result)
		p.indent--

	case *CallStmt:
		p.printf("CallStmt %s\n", n.pos)
		p.indent++
		p.printf("Fun: %s\n", n.Fun.Value)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("Target: %s\n", n.Target.Value)
		p.section("Value", n.Value)
		p.indent--

	case *Condition:
		p.printf("Condition %s %s\n", n.pos, n.Op)
		p.indent++
		p.section("X", n.X)
		p.section("Y", n.Y)
		p.indent--

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s %s\n", n.pos, n.Kind, n.Value)

	case *Operation:
		p.printf("BinaryOp %s %s %s\n", n.pos, n.Op, exprString(n))
		p.indent++
		p.section("X", n.X)
		p.section("Y", n.Y)
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// exprString returns a fully parenthesized rendering of an expression,
// e.g. (5 + (3 * (10 - 4))).
func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch x := e.(type) {
	case *Name:
		return x.Value
	case *BasicLit:
		return x.Value
	case *Operation:
		return "(" + exprString(x.X) + " " + x.Op.String() + " " + exprString(x.Y) + ")"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
