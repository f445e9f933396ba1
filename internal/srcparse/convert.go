package srcparse

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/mugwort-rc/py2cpp/internal/ast"
)

func pos(p lexer.Position) ast.Position {
	return ast.Position{Line: p.Line, Column: p.Column}
}

func base(p lexer.Position) ast.BaseNode {
	return ast.BaseNode{Position: pos(p)}
}

// ToAST converts a parsed grammar module into the internal/ast tree
// the translator core consumes.
func ToAST(m *Module) *ast.Module {
	return &ast.Module{BaseNode: base(m.Pos), Body: statements(m.Stmts)}
}

func statements(stmts []*Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, statement(s))
	}
	return out
}

func statement(s *Statement) ast.Statement {
	switch {
	case s.FunctionDef != nil:
		return functionDef(s.FunctionDef)
	case s.ClassDef != nil:
		return classDef(s.ClassDef)
	case s.If != nil:
		return ifStmt(s.If)
	case s.While != nil:
		return whileStmt(s.While)
	case s.For != nil:
		return forStmt(s.For)
	case s.Simple != nil:
		return simpleStmt(s.Simple)
	default:
		return &ast.Pass{BaseNode: base(s.Pos)}
	}
}

func functionDef(f *FunctionDef) *ast.FunctionDef {
	args := &ast.Arguments{}
	var defaults []ast.Expression
	for _, p := range f.Params {
		arg := &ast.Arg{Name: p.Name}
		if p.Annotation != nil {
			arg.Annotation = *p.Annotation
		}
		args.Args = append(args.Args, arg)
		if p.Default != nil {
			defaults = append(defaults, expr(p.Default))
		}
	}
	args.Defaults = defaults

	returns := ""
	if f.Returns != nil {
		returns = *f.Returns
	}

	return &ast.FunctionDef{
		BaseNode: base(f.Pos),
		Name:     f.Name,
		Args:     args,
		Body:     statements(f.Body),
		Returns:  returns,
	}
}

func classDef(c *ClassDef) *ast.ClassDef {
	bases := make([]ast.Expression, len(c.Bases))
	for i, b := range c.Bases {
		bases[i] = &ast.Name{Id: b}
	}
	return &ast.ClassDef{
		BaseNode: base(c.Pos),
		Name:     c.Name,
		Bases:    bases,
		Body:     statements(c.Body),
	}
}

func ifStmt(i *IfStmt) *ast.If {
	return &ast.If{
		BaseNode: base(i.Pos),
		Test:     expr(i.Cond),
		Body:     statements(i.Body),
		Orelse:   statements(i.Else),
	}
}

func whileStmt(w *WhileStmt) *ast.While {
	return &ast.While{
		BaseNode: base(w.Pos),
		Test:     expr(w.Cond),
		Body:     statements(w.Body),
	}
}

func forStmt(f *ForStmt) *ast.For {
	return &ast.For{
		BaseNode: base(f.Pos),
		Target:   &ast.Name{Id: f.Var},
		Iter:     expr(f.Iter),
		Body:     statements(f.Body),
	}
}

func simpleStmt(s *SimpleStmt) ast.Statement {
	switch {
	case s.Return != nil:
		var v ast.Expression
		if s.Return.Value != nil {
			v = expr(s.Return.Value)
		}
		return &ast.Return{BaseNode: base(s.Pos), Value: v}
	case s.Raise != nil:
		var v ast.Expression
		if s.Raise.Exc != nil {
			v = expr(s.Raise.Exc)
		}
		return &ast.Raise{BaseNode: base(s.Pos), Exc: v}
	case s.Pass:
		return &ast.Pass{BaseNode: base(s.Pos)}
	case s.Break:
		return &ast.Break{BaseNode: base(s.Pos)}
	case s.Continue:
		return &ast.Continue{BaseNode: base(s.Pos)}
	case s.Print != nil:
		values := make([]ast.Expression, len(s.Print.Values))
		for i, v := range s.Print.Values {
			values[i] = expr(v)
		}
		return &ast.Print{BaseNode: base(s.Pos), Values: values, NoNewline: s.Print.NoNewline}
	case s.Expr != nil:
		return exprOrAssign(s.Pos, s.Expr)
	default:
		return &ast.Pass{BaseNode: base(s.Pos)}
	}
}

var augOpTable = map[string]ast.AugOp{
	"+=":  ast.AugAdd,
	"-=":  ast.AugSub,
	"*=":  ast.AugMul,
	"/=":  ast.AugDiv,
	"%=":  ast.AugMod,
	"**=": ast.AugPow,
	"//=": ast.AugFloorDiv,
	"<<=": ast.AugLShift,
	">>=": ast.AugRShift,
	"|=":  ast.AugBitOr,
	"^=":  ast.AugBitXor,
	"&=":  ast.AugBitAnd,
}

func exprOrAssign(p lexer.Position, e *ExprOrAssign) ast.Statement {
	left := expr(e.Left)
	if e.Op == nil {
		return &ast.ExprStmt{BaseNode: base(p), Value: left}
	}
	value := expr(e.Right)
	if *e.Op == "=" {
		return &ast.Assign{BaseNode: base(p), Targets: []ast.Expression{left}, Value: value}
	}
	op, ok := augOpTable[*e.Op]
	if !ok {
		return &ast.ExprStmt{BaseNode: base(p), Value: left}
	}
	return &ast.AugAssign{BaseNode: base(p), Target: left, Op: op, Value: value}
}

func expr(e *Expr) ast.Expression {
	body := orExpr(e.Body)
	if e.Test == nil {
		return body
	}
	return &ast.IfExp{Test: orExpr(e.Test), Body: body, Orelse: expr(e.Orelse)}
}

func orExpr(o *OrExpr) ast.Expression {
	values := []ast.Expression{andExpr(o.Left)}
	for _, r := range o.Rest {
		values = append(values, andExpr(r))
	}
	if len(values) == 1 {
		return values[0]
	}
	return &ast.BoolOp{Op: ast.BoolOr, Values: values}
}

func andExpr(a *AndExpr) ast.Expression {
	values := []ast.Expression{notExpr(a.Left)}
	for _, r := range a.Rest {
		values = append(values, notExpr(r))
	}
	if len(values) == 1 {
		return values[0]
	}
	return &ast.BoolOp{Op: ast.BoolAnd, Values: values}
}

func notExpr(n *NotExpr) ast.Expression {
	v := comparison(n.Value)
	if !n.Not {
		return v
	}
	return &ast.UnaryOp{Op: ast.UnaryNot, Operand: v}
}

var cmpOpTable = map[string]ast.CmpOp{
	"==": ast.CmpEq,
	"!=": ast.CmpNotEq,
	"<":  ast.CmpLt,
	"<=": ast.CmpLtE,
	">":  ast.CmpGt,
	">=": ast.CmpGtE,
}

func comparison(c *Comparison) ast.Expression {
	left := bitExpr(c.Left)
	if c.Op == nil {
		return left
	}
	return &ast.Compare{
		Left:        left,
		Ops:         []ast.CmpOp{cmpOpTable[*c.Op]},
		Comparators: []ast.Expression{bitExpr(c.Right)},
	}
}

var bitOpTable = map[string]ast.BinOpKind{
	"|":  ast.BinBitOr,
	"^":  ast.BinBitXor,
	"&":  ast.BinBitAnd,
	"<<": ast.BinLShift,
	">>": ast.BinRShift,
}

func bitExpr(b *BitExpr) ast.Expression {
	result := arith(b.Left)
	for _, op := range b.Ops {
		result = &ast.BinOp{Left: result, Op: bitOpTable[op.Op], Right: arith(op.Right)}
	}
	return result
}

var arithOpTable = map[string]ast.BinOpKind{"+": ast.BinAdd, "-": ast.BinSub}

func arith(a *Arith) ast.Expression {
	result := term(a.Left)
	for _, op := range a.Ops {
		result = &ast.BinOp{Left: result, Op: arithOpTable[op.Op], Right: term(op.Right)}
	}
	return result
}

var termOpTable = map[string]ast.BinOpKind{
	"*":  ast.BinMul,
	"/":  ast.BinDiv,
	"//": ast.BinFloorDiv,
	"%":  ast.BinMod,
}

func term(t *Term) ast.Expression {
	result := factor(t.Left)
	for _, op := range t.Ops {
		result = &ast.BinOp{Left: result, Op: termOpTable[op.Op], Right: factor(op.Right)}
	}
	return result
}

var unaryOpTable = map[string]ast.UnaryOpKind{
	"+": ast.UnaryAdd,
	"-": ast.UnarySub,
	"~": ast.UnaryInvert,
}

func factor(f *Factor) ast.Expression {
	v := power(f.Value)
	if f.Op == nil {
		return v
	}
	return &ast.UnaryOp{Op: unaryOpTable[*f.Op], Operand: v}
}

func power(p *Power) ast.Expression {
	baseExpr := atomTrailer(p.Base)
	if p.Exp == nil {
		return baseExpr
	}
	return &ast.BinOp{Left: baseExpr, Op: ast.BinPow, Right: factor(p.Exp)}
}

func atomTrailer(a *AtomTrailer) ast.Expression {
	result := atom(a.Atom)
	for _, t := range a.Trailers {
		switch {
		case t.Attr != nil:
			result = &ast.Attribute{Value: result, Attr: *t.Attr}
		case t.Call != nil:
			args := make([]ast.Expression, len(t.Call.Args))
			for i, a := range t.Call.Args {
				args[i] = expr(a)
			}
			result = &ast.Call{Func: result, Args: args}
		case t.Index != nil:
			result = &ast.Subscript{Value: result, Index: expr(t.Index)}
		}
	}
	return result
}

func atom(a *Atom) ast.Expression {
	switch {
	case a.True_:
		return &ast.NameConstant{Value: "True"}
	case a.False_:
		return &ast.NameConstant{Value: "False"}
	case a.None_:
		return &ast.NameConstant{Value: "None"}
	case a.Num != nil:
		return &ast.Num{Value: *a.Num}
	case a.Str != nil:
		return &ast.Str{Value: unquote(*a.Str)}
	case a.Triple != nil:
		return &ast.Str{Value: unquoteTriple(*a.Triple)}
	case a.Name != nil:
		return &ast.Name{Id: *a.Name}
	case a.List != nil:
		return &ast.List{Elts: exprList(a.List)}
	case a.Paren != nil:
		items := exprList(a.Paren)
		if len(items) == 1 {
			return items[0]
		}
		return &ast.Tuple{Elts: items}
	default:
		return &ast.NameConstant{Value: "None"}
	}
}

func exprList(l *ExprList) []ast.Expression {
	out := make([]ast.Expression, len(l.Items))
	for i, e := range l.Items {
		out[i] = expr(e)
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

func unquoteTriple(s string) string {
	if len(s) >= 6 {
		return s[3 : len(s)-3]
	}
	return s
}
