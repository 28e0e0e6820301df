package ast

import "fmt"

// Inspect traverses the tree rooted at n in depth-first pre-order, calling
// f for each node. Children are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *File:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
	case *FuncDecl:
		Inspect(n.Header, f)
		Inspect(n.Body, f)
	case *FuncHeader:
		for _, p := range n.Params {
			Inspect(p, f)
		}
	case *FuncProto:
		for _, p := range n.Params {
			Inspect(p, f)
		}
	case *BlockStmt:
		for _, v := range n.Locals {
			Inspect(v, f)
		}
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *ReturnStmt:
		if n.Expr != nil {
			Inspect(n.Expr, f)
		}
	case *ExprStmt:
		Inspect(n.X, f)
	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)
	case *AssignExpr:
		Inspect(n.Value, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *UnaryExpr:
		Inspect(n.X, f)
	case *CallExpr:
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *VarDecl, *Param, *ParamPtr, *Ellipsis, *Ident, *IntLit, *CharLit, *StringLit:
		// leaves
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	c := 0
	Inspect(n, func(Node) bool {
		c++
		return true
	})
	return c
}
