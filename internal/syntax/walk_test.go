package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectOrder(t *testing.T) {
	prog := mustParse(t, "x = a + b * c;\nprint(x, y);")

	var names []string
	Inspect(prog, func(n Node) bool {
		if name, ok := n.(*Name); ok {
			names = append(names, name.Value)
		}
		return true
	})

	assert.Equal(t, []string{"x", "a", "b", "c", "print", "x", "y"}, names)
}

func TestInspectPrune(t *testing.T) {
	prog := mustParse(t, "def f(): { g(); }\nh();")

	var calls []string
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(*FuncDef); ok {
			return false
		}
		if c, ok := n.(*CallStmt); ok {
			calls = append(calls, c.Fun.Value)
		}
		return true
	})

	assert.Equal(t, []string{"h"}, calls)
}

func TestInspectVisitsEveryKind(t *testing.T) {
	src := `
for i in range(3) { break; }
if (i > 1) { y = 2; } else { y = 3; }
switch (y) { case 2: z = "two"; break; }
def f(): return true;
`
	prog := mustParse(t, src)

	seen := map[string]bool{}
	Inspect(prog, func(n Node) bool {
		switch n.(type) {
		case *Program:
			seen["Program"] = true
		case *ForStmt:
			seen["ForStmt"] = true
		case *BlockStmt:
			seen["BlockStmt"] = true
		case *IfStmt:
			seen["IfStmt"] = true
		case *Condition:
			seen["Condition"] = true
		case *SwitchStmt:
			seen["SwitchStmt"] = true
		case *CaseClause:
			seen["CaseClause"] = true
		case *FuncDef:
			seen["FuncDef"] = true
		case *ReturnStmt:
			seen["ReturnStmt"] = true
		case *AssignStmt:
			seen["AssignStmt"] = true
		case *Name:
			seen["Name"] = true
		case *BasicLit:
			seen["BasicLit"] = true
		}
		return true
	})

	for _, kind := range []string{
		"Program", "ForStmt", "BlockStmt", "IfStmt", "Condition", "SwitchStmt",
		"CaseClause", "FuncDef", "ReturnStmt", "AssignStmt", "Name", "BasicLit",
	} {
		assert.True(t, seen[kind], "%s not visited", kind)
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Stats
	}{
		{
			name: "assignment",
			src:  "x = 1 + 2;",
			// Program > AssignStmt > {Name, Operation > {BasicLit, BasicLit}}
			want: Stats{TopLevel: 1, Statements: 1, Nodes: 6, MaxDepth: 4},
		},
		{
			name: "if else",
			src:  "if (x > 1) { y = 2; } else { z = 3; }",
			want: Stats{TopLevel: 1, Statements: 5, Nodes: 13, MaxDepth: 5},
		},
		{
			name: "empty call",
			src:  "f();\ng();",
			want: Stats{TopLevel: 2, Statements: 2, Nodes: 5, MaxDepth: 3},
		},
		{
			name: "for with break",
			src:  "for i in range(10) { break; }",
			// Program > ForStmt > {Name, BasicLit, BlockStmt}
			want: Stats{TopLevel: 1, Statements: 2, Nodes: 5, MaxDepth: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(mustParse(t, tt.src)))
		})
	}
}
