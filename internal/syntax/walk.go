package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *ForStmt:
		Walk(n.Var, v)
		Walk(n.Range, v)
		Walk(n.Body, v)

	case *SwitchStmt:
		Walk(n.Tag, v)
		for _, c := range n.Cases {
			Walk(c, v)
		}

	case *CaseClause:
		Walk(n.Value, v)
		for _, s := range n.Body {
			Walk(s, v)
		}

	case *FuncDef:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Body, v)

	case *ReturnStmt:
		Walk(n.Result, v)

	case *CallStmt:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *AssignStmt:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *Condition:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Operation:
		Walk(n.X, v)
		Walk(n.Y, v)

	// Leaf nodes: Name, BasicLit
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Stats summarizes the shape of a parsed program.
type Stats struct {
	TopLevel   int // statements directly under the program
	Statements int // statements at any depth
	Nodes      int // all nodes, including the program itself
	MaxDepth   int // deepest nesting of nodes; the program is depth 1
}

// Count walks prog and returns its Stats.
func Count(prog *Program) Stats {
	st := Stats{TopLevel: len(prog.Stmts)}

	var depth int
	var visit Visitor
	visit = func(n Node) bool {
		st.Nodes++
		if _, ok := n.(Stmt); ok {
			st.Statements++
		}
		depth++
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		Walk(n, childrenOnly(visit))
		depth--
		return false
	}
	Walk(prog, visit)
	return st
}

// childrenOnly adapts v so that the node Walk starts from is skipped
// and only its children reach v.
func childrenOnly(v Visitor) Visitor {
	first := true
	return func(n Node) bool {
		if first {
			first = false
			return true
		}
		return v(n)
	}
}
