package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: count all variable references
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.VarRef); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	// Program-level
	case *Program:
		for _, c := range n.Consts {
			Walk(c, fn)
		}
		for _, v := range n.Vars {
			Walk(v, fn)
		}
		for _, s := range n.Subs {
			Walk(s, fn)
		}

	case *ConstDecl:
		Walk(n.Value, fn)

	case *VarDecl:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *Subroutine:
		for _, p := range n.Params {
			Walk(p, fn)
		}
		for _, s := range n.Body {
			Walk(s, fn)
		}

	case *Param:
		// no children

	// Expressions
	case *IntLit, *StringLit, *BoolLit, *VarRef:
		// no children

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpr:
		Walk(n.Expr, fn)

	case *CallExpr:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	// Statements
	case *AssignStmt:
		Walk(n.Value, fn)

	case *ReturnStmt:
		Walk(n.Value, fn)

	case *PrintStmt:
		Walk(n.Value, fn)

	case *CallStmt:
		Walk(n.Call, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		for _, s := range n.Then {
			Walk(s, fn)
		}
		for _, s := range n.Else {
			Walk(s, fn)
		}

	case *WhileStmt:
		Walk(n.Cond, fn)
		for _, s := range n.Body {
			Walk(s, fn)
		}
	}
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root
// node. If fn returns false, the children of that node are not visited.
func Inspect(root Node, fn func(n, parent Node) bool) {
	inspect(root, nil, fn)
}

func inspect(node, parent Node, fn func(n, parent Node) bool) {
	if node == nil || !fn(node, parent) {
		return
	}
	Walk(node, func(child Node) bool {
		if child == node {
			return true
		}
		inspect(child, node, fn)
		return false // inspect recursed already
	})
}
