package translate

import (
	"github.com/mugwort-rc/py2cpp/internal/ast"
	"github.com/mugwort-rc/py2cpp/internal/perr"
	"github.com/mugwort-rc/py2cpp/internal/target"
)

func (t *Translator) expressions(exprs []ast.Expression) ([]target.Expression, error) {
	out := make([]target.Expression, 0, len(exprs))
	for _, e := range exprs {
		te, err := t.expression(e)
		if err != nil {
			return nil, err
		}
		out = append(out, te)
	}
	return out, nil
}

func (t *Translator) expression(e ast.Expression) (target.Expression, error) {
	built, err := t.dispatchExpression(e)
	if err != nil {
		return nil, err
	}
	return asExpression(t.Hooks.Apply(e, built)), nil
}

func asExpression(n target.Node) target.Expression {
	if expr, ok := n.(target.Expression); ok {
		return expr
	}
	return &target.Unsupported{SourceKind: "(hook produced non-expression)"}
}

var boolOpTable = map[ast.BoolOpKind]target.BoolOpKind{
	ast.BoolAnd: target.BoolAnd,
	ast.BoolOr:  target.BoolOr,
}

var binOpTable = map[ast.BinOpKind]target.BinOpKind{
	ast.BinAdd:    target.BinAdd,
	ast.BinSub:    target.BinSub,
	ast.BinMul:    target.BinMul,
	ast.BinDiv:    target.BinDiv,
	ast.BinMod:    target.BinMod,
	ast.BinLShift: target.BinLShift,
	ast.BinRShift: target.BinRShift,
	ast.BinBitOr:  target.BinBitOr,
	ast.BinBitXor: target.BinBitXor,
	ast.BinBitAnd: target.BinBitAnd,
}

var unaryOpTable = map[ast.UnaryOpKind]target.UnaryOpKind{
	ast.UnaryInvert: target.UnaryInvert,
	ast.UnaryNot:    target.UnaryNot,
	ast.UnaryAdd:    target.UnaryAdd,
	ast.UnarySub:    target.UnarySub,
}

var cmpOpTable = map[ast.CmpOp]target.CmpOp{
	ast.CmpEq:    target.CmpEq,
	ast.CmpNotEq: target.CmpNotEq,
	ast.CmpLt:    target.CmpLt,
	ast.CmpLtE:   target.CmpLtE,
	ast.CmpGt:    target.CmpGt,
	ast.CmpGtE:   target.CmpGtE,
}

func (t *Translator) dispatchExpression(e ast.Expression) (target.Expression, error) {
	switch n := e.(type) {
	case *ast.BoolOp:
		return t.boolOp(n)
	case *ast.BinOp:
		return t.binOp(n)
	case *ast.UnaryOp:
		return t.unaryOp(n)
	case *ast.Lambda:
		return t.lambda(n)
	case *ast.IfExp:
		return t.ifExp(n)
	case *ast.Compare:
		return t.compare(n)
	case *ast.Call:
		return t.call(n)
	case *ast.Num:
		return &target.Num{Value: n.Value}, nil
	case *ast.Str:
		return &target.Str{Value: n.Value}, nil
	case *ast.NameConstant:
		return &target.Name{Ident: n.Value}, nil
	case *ast.Name:
		return &target.Name{Ident: n.Id}, nil
	case *ast.Attribute:
		return t.attribute(n)
	case *ast.Subscript:
		return t.subscript(n)
	case *ast.List:
		return t.list(n)
	default:
		return &target.Unsupported{SourceKind: e.Kind()}, nil
	}
}

func (t *Translator) boolOp(n *ast.BoolOp) (target.Expression, error) {
	op, ok := boolOpTable[n.Op]
	if !ok {
		return nil, perr.NewFatal(n.Pos(), "unknown boolean operator "+string(n.Op))
	}
	values, err := t.expressions(n.Values)
	if err != nil {
		return nil, err
	}
	return &target.BoolOp{Op: op, Values: values}, nil
}

func (t *Translator) binOp(n *ast.BinOp) (target.Expression, error) {
	if n.Op == ast.BinPow || n.Op == ast.BinFloorDiv {
		return nil, perr.NewFatal(n.Pos(), "BinOp reached the translator with a "+string(n.Op)+" operator; the surface rewriter should have eliminated it")
	}
	op, ok := binOpTable[n.Op]
	if !ok {
		return nil, perr.NewFatal(n.Pos(), "unknown binary operator "+string(n.Op))
	}
	left, err := t.expression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.expression(n.Right)
	if err != nil {
		return nil, err
	}
	return &target.BinOp{Left: left, Op: op, Right: right}, nil
}

func (t *Translator) unaryOp(n *ast.UnaryOp) (target.Expression, error) {
	op, ok := unaryOpTable[n.Op]
	if !ok {
		return nil, perr.NewFatal(n.Pos(), "unknown unary operator "+string(n.Op))
	}
	operand, err := t.expression(n.Operand)
	if err != nil {
		return nil, err
	}
	return &target.UnaryOp{Op: op, Operand: operand}, nil
}

// lambda becomes a capture-by-reference closure with a deduced return
// type (§4.C, §4.E); every parameter's type is resolved through the
// registry exactly like a function's, since a lambda carries no
// separate annotation/docstring machinery of its own.
func (t *Translator) lambda(n *ast.Lambda) (target.Expression, error) {
	params := make([]target.Param, 0)
	if n.Args != nil {
		for _, arg := range n.Args.Args {
			params = append(params, target.Param{
				Type: t.Types.Detect(arg.Annotation, false),
				Name: arg.Name,
			})
		}
	}
	body, err := t.expression(n.Body)
	if err != nil {
		return nil, err
	}
	return &target.Lambda{Params: params, Body: body}, nil
}

func (t *Translator) ifExp(n *ast.IfExp) (target.Expression, error) {
	test, err := t.expression(n.Test)
	if err != nil {
		return nil, err
	}
	body, err := t.expression(n.Body)
	if err != nil {
		return nil, err
	}
	orelse, err := t.expression(n.Orelse)
	if err != nil {
		return nil, err
	}
	return &target.Conditional{Test: test, Body: body, Orelse: orelse}, nil
}

// compare preserves the n-operator chain verbatim (§4.C). A chain using
// an unsupported operator (is/is not/in/not in, GLOSSARY) becomes an
// unsupported-placeholder expression rather than a partial translation.
func (t *Translator) compare(n *ast.Compare) (target.Expression, error) {
	ops := make([]target.CmpOp, len(n.Ops))
	for i, op := range n.Ops {
		mapped, ok := cmpOpTable[op]
		if !ok {
			return &target.Unsupported{SourceKind: "Compare (" + string(op) + ")"}, nil
		}
		ops[i] = mapped
	}
	left, err := t.expression(n.Left)
	if err != nil {
		return nil, err
	}
	comparators, err := t.expressions(n.Comparators)
	if err != nil {
		return nil, err
	}
	return &target.Compare{Left: left, Ops: ops, Comparators: comparators}, nil
}

func (t *Translator) call(n *ast.Call) (target.Expression, error) {
	fn, err := t.expression(n.Func)
	if err != nil {
		return nil, err
	}
	args, err := t.expressions(n.Args)
	if err != nil {
		return nil, err
	}
	if n.Starargs != nil {
		star, err := t.expression(n.Starargs)
		if err != nil {
			return nil, err
		}
		args = append(args, &target.Spread{Value: star})
	}
	keywords := make([]*target.Keyword, 0, len(n.Keywords))
	for _, kw := range n.Keywords {
		v, err := t.expression(kw.Value)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, &target.Keyword{Name: kw.Name, Value: v})
	}
	return &target.Call{Func: fn, Args: args, Keywords: keywords}, nil
}

func (t *Translator) attribute(n *ast.Attribute) (target.Expression, error) {
	value, err := t.expression(n.Value)
	if err != nil {
		return nil, err
	}
	return &target.Attribute{Value: value, Attr: n.Attr}, nil
}

func (t *Translator) subscript(n *ast.Subscript) (target.Expression, error) {
	value, err := t.expression(n.Value)
	if err != nil {
		return nil, err
	}
	index, err := t.expression(n.Index)
	if err != nil {
		return nil, err
	}
	return &target.Subscript{Value: value, Index: index}, nil
}

func (t *Translator) list(n *ast.List) (target.Expression, error) {
	elts, err := t.expressions(n.Elts)
	if err != nil {
		return nil, err
	}
	return &target.ListLiteral{Elts: elts}, nil
}
