// Package rewrite implements component B: the fixed-order family of
// tree-to-tree surface normalizations applied to the source AST before
// translation. Each rewrite yields a new tree; the original may be
// discarded (§3 lifecycle note, §4.B).
package rewrite

import "github.com/mugwort-rc/py2cpp/internal/ast"

// Module applies every mandated surface rewrite, in the fixed order
// §4.B lists them, to a module's top-level statements and returns the
// rewritten tree. The module invokes this on itself before translation
// begins (§4.C "Module").
func Module(m *ast.Module) *ast.Module {
	body := make([]ast.Statement, len(m.Body))
	copy(body, m.Body)
	for i, stmt := range body {
		body[i] = Statement(stmt)
	}
	return &ast.Module{BaseNode: m.BaseNode, Body: body}
}

// Statement rewrites a single statement and every statement/expression
// nested within it, applying all four mandated rewrites (§4.B).
func Statement(s ast.Statement) ast.Statement {
	switch n := s.(type) {
	case *ast.FunctionDef:
		return &ast.FunctionDef{
			BaseNode:   n.BaseNode,
			Name:       n.Name,
			Args:       rewriteArgs(n.Args),
			Body:       Statements(n.Body),
			Returns:    n.Returns,
			Decorators: Expressions(n.Decorators),
		}
	case *ast.ClassDef:
		return &ast.ClassDef{
			BaseNode: n.BaseNode,
			Name:     n.Name,
			Bases:    Expressions(n.Bases),
			Body:     Statements(n.Body),
		}
	case *ast.Return:
		return &ast.Return{BaseNode: n.BaseNode, Value: maybeExpr(n.Value)}
	case *ast.Assign:
		return &ast.Assign{BaseNode: n.BaseNode, Targets: Expressions(n.Targets), Value: Expression(n.Value)}
	case *ast.AugAssign:
		return rewriteAugAssign(n)
	case *ast.For:
		return &ast.For{BaseNode: n.BaseNode, Target: Expression(n.Target), Iter: Expression(n.Iter), Body: Statements(n.Body)}
	case *ast.While:
		return &ast.While{BaseNode: n.BaseNode, Test: Expression(n.Test), Body: Statements(n.Body)}
	case *ast.If:
		return &ast.If{BaseNode: n.BaseNode, Test: Expression(n.Test), Body: Statements(n.Body), Orelse: Statements(n.Orelse)}
	case *ast.Raise:
		return &ast.Raise{BaseNode: n.BaseNode, Exc: maybeExpr(n.Exc), Args: Expressions(n.Args)}
	case *ast.ExprStmt:
		return &ast.ExprStmt{BaseNode: n.BaseNode, Value: Expression(n.Value)}
	case *ast.Print:
		return rewritePrint(n)
	default:
		return s
	}
}

// Statements rewrites each statement in a body, in order.
func Statements(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, len(stmts))
	for i, s := range stmts {
		out[i] = Statement(s)
	}
	return out
}

func maybeExpr(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	return Expression(e)
}

func rewriteArgs(a *ast.Arguments) *ast.Arguments {
	if a == nil {
		return nil
	}
	return &ast.Arguments{
		Args:     a.Args,
		Defaults: Expressions(a.Defaults),
		Vararg:   a.Vararg,
		Kwarg:    a.Kwarg,
	}
}

// Expressions rewrites each expression in a slice, in order.
func Expressions(exprs []ast.Expression) []ast.Expression {
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = Expression(e)
	}
	return out
}

// Expression rewrites a single expression and everything nested within
// it, then applies rules 1-3 of §4.B (power, floor-div, tuple literal)
// to the node itself if it matches.
func Expression(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.BoolOp:
		return &ast.BoolOp{BaseNode: n.BaseNode, Op: n.Op, Values: Expressions(n.Values)}
	case *ast.BinOp:
		return rewriteBinOp(n)
	case *ast.UnaryOp:
		return &ast.UnaryOp{BaseNode: n.BaseNode, Op: n.Op, Operand: Expression(n.Operand)}
	case *ast.Lambda:
		return &ast.Lambda{BaseNode: n.BaseNode, Args: rewriteArgs(n.Args), Body: Expression(n.Body)}
	case *ast.IfExp:
		return &ast.IfExp{BaseNode: n.BaseNode, Test: Expression(n.Test), Body: Expression(n.Body), Orelse: Expression(n.Orelse)}
	case *ast.Compare:
		return &ast.Compare{BaseNode: n.BaseNode, Left: Expression(n.Left), Ops: n.Ops, Comparators: Expressions(n.Comparators)}
	case *ast.Call:
		return rewriteCall(n)
	case *ast.Attribute:
		return &ast.Attribute{BaseNode: n.BaseNode, Value: Expression(n.Value), Attr: n.Attr}
	case *ast.Subscript:
		return &ast.Subscript{BaseNode: n.BaseNode, Value: Expression(n.Value), Index: Expression(n.Index)}
	case *ast.List:
		return &ast.List{BaseNode: n.BaseNode, Elts: Expressions(n.Elts)}
	case *ast.Tuple:
		return rewriteTuple(n)
	default:
		// Name, Num, Str, NameConstant: leaves, nothing to rewrite.
		return e
	}
}

func rewriteCall(n *ast.Call) *ast.Call {
	return &ast.Call{
		BaseNode: n.BaseNode,
		Func:     Expression(n.Func),
		Args:     Expressions(n.Args),
		Keywords: rewriteKeywords(n.Keywords),
		Starargs: maybeExpr(n.Starargs),
	}
}

func rewriteKeywords(kw []*ast.Keyword) []*ast.Keyword {
	out := make([]*ast.Keyword, len(kw))
	for i, k := range kw {
		out[i] = &ast.Keyword{Name: k.Name, Value: Expression(k.Value)}
	}
	return out
}

// rewriteBinOp implements §4.B rules 1 and 2: power -> math.pow(x, y),
// floor-div -> int(x / y).
func rewriteBinOp(n *ast.BinOp) ast.Expression {
	left := Expression(n.Left)
	right := Expression(n.Right)
	switch n.Op {
	case ast.BinPow:
		return mathPowCall(n.BaseNode, left, right)
	case ast.BinFloorDiv:
		return intCastDiv(n.BaseNode, left, right)
	default:
		return &ast.BinOp{BaseNode: n.BaseNode, Left: left, Op: n.Op, Right: right}
	}
}

func mathPowCall(base ast.BaseNode, left, right ast.Expression) *ast.Call {
	return &ast.Call{
		BaseNode: base,
		Func: &ast.Attribute{
			BaseNode: base,
			Value:    &ast.Name{BaseNode: base, Id: "math"},
			Attr:     "pow",
		},
		Args: []ast.Expression{left, right},
	}
}

func intCastDiv(base ast.BaseNode, left, right ast.Expression) *ast.Call {
	return &ast.Call{
		BaseNode: base,
		Func:     &ast.Name{BaseNode: base, Id: "int"},
		Args: []ast.Expression{
			&ast.BinOp{BaseNode: base, Left: left, Op: ast.BinDiv, Right: right},
		},
	}
}

// rewriteAugAssign decomposes "x **= y" into "x = math.pow(x, y)" and
// "x //= y" into "x = int(x / y)"; every other augmented-assignment
// operator passes through unchanged (§4.B rules 1-2).
func rewriteAugAssign(n *ast.AugAssign) ast.Statement {
	target := Expression(n.Target)
	value := Expression(n.Value)
	switch n.Op {
	case ast.AugPow:
		return &ast.Assign{BaseNode: n.BaseNode, Targets: []ast.Expression{target}, Value: mathPowCall(n.BaseNode, target, value)}
	case ast.AugFloorDiv:
		return &ast.Assign{BaseNode: n.BaseNode, Targets: []ast.Expression{target}, Value: intCastDiv(n.BaseNode, target, value)}
	default:
		return &ast.AugAssign{BaseNode: n.BaseNode, Target: target, Op: n.Op, Value: value}
	}
}

// rewriteTuple implements §4.B rule 3: a tuple literal becomes a call to
// the name "tuple" whose arguments are the element expressions.
func rewriteTuple(n *ast.Tuple) *ast.Call {
	return &ast.Call{
		BaseNode: n.BaseNode,
		Func:     &ast.Name{BaseNode: n.BaseNode, Id: "tuple"},
		Args:     Expressions(n.Elts),
	}
}

// rewritePrint implements §4.B rule 4: a legacy print statement becomes
// an expression-statement wrapping a call to the name "print"; a
// no-trailing-newline flag becomes a keyword argument end="".
func rewritePrint(n *ast.Print) *ast.ExprStmt {
	call := &ast.Call{
		BaseNode: n.BaseNode,
		Func:     &ast.Name{BaseNode: n.BaseNode, Id: "print"},
		Args:     Expressions(n.Values),
	}
	if n.NoNewline {
		call.Keywords = append(call.Keywords, &ast.Keyword{
			Name:  "end",
			Value: &ast.Str{BaseNode: n.BaseNode, Value: ""},
		})
	}
	return &ast.ExprStmt{BaseNode: n.BaseNode, Value: call}
}
