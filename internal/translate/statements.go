package translate

import (
	"github.com/mugwort-rc/py2cpp/internal/ast"
	"github.com/mugwort-rc/py2cpp/internal/perr"
	"github.com/mugwort-rc/py2cpp/internal/target"
)

// functionDef extracts the docstring (removing it from the translated
// body, §3/§4.C), resolves parameter and return types from annotations
// via the type registry (docstring gaps are filled later by the
// docstring-typing hook), and builds the target function.
func (t *Translator) functionDef(n *ast.FunctionDef) (target.Statement, error) {
	body := n.Body
	if len(body) > 0 {
		if stmt, ok := body[0].(*ast.ExprStmt); ok {
			if _, ok := stmt.Value.(*ast.Str); ok {
				body = body[1:]
			}
		}
	}

	params := make([]target.FuncParam, 0)
	if n.Args != nil {
		for i, arg := range n.Args.Args {
			ty := t.Types.Detect(arg.Annotation, false)
			var def target.Expression
			if d := n.Args.DefaultFor(i); d != nil {
				var err error
				def, err = t.expression(d)
				if err != nil {
					return nil, err
				}
			}
			params = append(params, target.FuncParam{Type: ty, Name: arg.Name, Default: def})
		}
	}

	translatedBody, err := t.statements(body)
	if err != nil {
		return nil, err
	}

	returnType := ""
	if n.Returns != "" {
		returnType = t.Types.Detect(n.Returns, true)
	}

	return &target.FunctionDef{
		Name:       n.Name,
		Params:     params,
		ReturnType: returnType,
		Body:       translatedBody,
	}, nil
}

// classDef translates base-class expressions into a public-inheritance
// list (§4.C) and extracts the class's own docstring the same way a
// function's is extracted.
func (t *Translator) classDef(n *ast.ClassDef) (target.Statement, error) {
	body := n.Body
	if len(body) > 0 {
		if stmt, ok := body[0].(*ast.ExprStmt); ok {
			if _, ok := stmt.Value.(*ast.Str); ok {
				body = body[1:]
			}
		}
	}

	bases := make([]string, 0, len(n.Bases))
	for _, b := range n.Bases {
		if name, ok := b.(*ast.Name); ok {
			bases = append(bases, name.Id)
			continue
		}
		// A non-name base expression has no direct inheritance spelling;
		// fall back to its translated text rather than dropping it.
		be, err := t.expression(b)
		if err != nil {
			return nil, err
		}
		bases = append(bases, be.Build(target.Root()))
	}

	translatedBody, err := t.statements(body)
	if err != nil {
		return nil, err
	}

	return &target.ClassDef{Name: n.Name, Bases: bases, Body: translatedBody}, nil
}

func (t *Translator) returnStmt(n *ast.Return) (target.Statement, error) {
	if n.Value == nil {
		return &target.Return{}, nil
	}
	v, err := t.expression(n.Value)
	if err != nil {
		return nil, err
	}
	return &target.Return{Value: v}, nil
}

func (t *Translator) assign(n *ast.Assign) (target.Statement, error) {
	targets, err := t.expressions(n.Targets)
	if err != nil {
		return nil, err
	}
	value, err := t.expression(n.Value)
	if err != nil {
		return nil, err
	}
	return &target.Assign{Targets: targets, Value: value}, nil
}

// augOpTable maps every augmented-assignment operator the translator may
// legally see. Power and floor-div are absent: the surface rewriter
// eliminates them before translation, and their presence here is a
// fatal invariant violation (§4.C, §7 case 2).
var augOpTable = map[ast.AugOp]string{
	ast.AugAdd:    "+=",
	ast.AugSub:    "-=",
	ast.AugMul:    "*=",
	ast.AugDiv:    "/=",
	ast.AugMod:    "%=",
	ast.AugLShift: "<<=",
	ast.AugRShift: ">>=",
	ast.AugBitOr:  "|=",
	ast.AugBitXor: "^=",
	ast.AugBitAnd: "&=",
}

func (t *Translator) augAssign(n *ast.AugAssign) (target.Statement, error) {
	if n.Op == ast.AugPow || n.Op == ast.AugFloorDiv {
		return nil, perr.NewFatal(n.Pos(), "AugAssign reached the translator with a "+string(n.Op)+" operator; the surface rewriter should have eliminated it")
	}
	op, ok := augOpTable[n.Op]
	if !ok {
		return nil, perr.NewFatal(n.Pos(), "unknown augmented-assignment operator "+string(n.Op))
	}
	tgtExpr, err := t.expression(n.Target)
	if err != nil {
		return nil, err
	}
	value, err := t.expression(n.Value)
	if err != nil {
		return nil, err
	}
	return &target.AugAssign{Target: tgtExpr, Op: op, Value: value}, nil
}

func (t *Translator) forStmt(n *ast.For) (target.Statement, error) {
	name, ok := n.Target.(*ast.Name)
	if !ok {
		return &target.Unsupported{SourceKind: "For (non-Name loop target)"}, nil
	}
	iter, err := t.expression(n.Iter)
	if err != nil {
		return nil, err
	}
	body, err := t.statements(n.Body)
	if err != nil {
		return nil, err
	}
	return &target.For{Target: name.Id, Iter: iter, Body: body}, nil
}

func (t *Translator) whileStmt(n *ast.While) (target.Statement, error) {
	test, err := t.expression(n.Test)
	if err != nil {
		return nil, err
	}
	body, err := t.statements(n.Body)
	if err != nil {
		return nil, err
	}
	return &target.While{Test: test, Body: body}, nil
}

func (t *Translator) ifStmt(n *ast.If) (target.Statement, error) {
	test, err := t.expression(n.Test)
	if err != nil {
		return nil, err
	}
	body, err := t.statements(n.Body)
	if err != nil {
		return nil, err
	}
	orelse, err := t.statements(n.Orelse)
	if err != nil {
		return nil, err
	}
	return &target.If{Test: test, Body: body, Orelse: orelse}, nil
}

// raiseStmt always instantiates a default-constructed exception; any
// arguments on the source raise are intentionally dropped here, since
// target.Raise carries only the exception name (§9, §4.E) — Args survive
// on the source node for fidelity.
func (t *Translator) raiseStmt(n *ast.Raise) (target.Statement, error) {
	name := "std::exception"
	switch exc := n.Exc.(type) {
	case *ast.Name:
		name = exc.Id
	case *ast.Call:
		if fn, ok := exc.Func.(*ast.Name); ok {
			name = fn.Id
		}
	}
	return &target.Raise{ExceptionName: name}, nil
}

func (t *Translator) exprStmt(n *ast.ExprStmt) (target.Statement, error) {
	v, err := t.expression(n.Value)
	if err != nil {
		return nil, err
	}
	return &target.ExprStmt{Value: v}, nil
}
