package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// toTree converts a node into nested maps and slices. The same tree
// backs the JSON and YAML dumps.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtTree),
		}

	case *BlockStmt:
		m := map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, stmtTree),
		}
		if n.Breaks() {
			m["break"] = n.Break.String()
		}
		return m

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toTree(n.Cond),
			"then": toTree(n.Then),
		}
		if n.Else != nil {
			m["else"] = toTree(n.Else)
		}
		return m

	case *ForStmt:
		var bound interface{} = n.Range.Int
		if n.Range.Overflow {
			bound = n.Range.Value
		}
		return map[string]interface{}{
			"type":  "ForStmt",
			"pos":   n.pos.String(),
			"var":   n.Var.Value,
			"range": bound,
			"body":  toTree(n.Body),
		}

	case *SwitchStmt:
		return map[string]interface{}{
			"type":  "SwitchStmt",
			"pos":   n.pos.String(),
			"tag":   toTree(n.Tag),
			"cases": mapSlice(n.Cases, func(c *CaseClause) interface{} { return toTree(c) }),
		}

	case *CaseClause:
		return map[string]interface{}{
			"type":  "CaseClause",
			"pos":   n.pos.String(),
			"value": toTree(n.Value),
			"body":  mapSlice(n.Body, stmtTree),
		}

	case *FuncDef:
		return map[string]interface{}{
			"type":   "FuncDef",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": mapSlice(n.Params, func(p *Name) interface{} { return p.Value }),
			"body":   toTree(n.Body),
		}

	case *ReturnStmt:
		return map[string]interface{}{
			"type":   "ReturnStmt",
			"pos":    n.pos.String(),
			"result": toTree(n.Result),
		}

	case *CallStmt:
		return map[string]interface{}{
			"type": "CallStmt",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, exprTree),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":   "AssignStmt",
			"pos":    n.pos.String(),
			"target": n.Target.Value,
			"value":  toTree(n.Value),
		}

	case *Condition:
		return map[string]interface{}{
			"type": "Condition",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		m := map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}
		if n.Kind == IntLit && !n.Overflow {
			m["int"] = n.Int
		}
		return m

	case *Operation:
		return map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func stmtTree(s Stmt) interface{} { return toTree(s) }
func exprTree(e Expr) interface{} { return toTree(e) }

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
