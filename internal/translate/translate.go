// Package translate implements component C: a visitor over the
// (already surface-rewritten) source AST that builds a parallel target
// AST, consulting the hook layer (component D) after every node.
package translate

import (
	"fmt"

	"github.com/mugwort-rc/py2cpp/internal/ast"
	"github.com/mugwort-rc/py2cpp/internal/hook"
	"github.com/mugwort-rc/py2cpp/internal/rewrite"
	"github.com/mugwort-rc/py2cpp/internal/target"
	"github.com/mugwort-rc/py2cpp/internal/typeinfo"
)

// Translator builds a target AST from a source AST. The zero value is
// not ready to use; call New.
type Translator struct {
	Types *typeinfo.Registry
	Hooks *hook.Registry
}

// New returns a translator with the default type registry and the six
// mandated hooks installed.
func New() *Translator {
	types := typeinfo.NewRegistry()
	return &Translator{Types: types, Hooks: hook.DefaultRegistry(types)}
}

// Module runs the surface rewriter on m (§4.C: "Module invokes the
// surface rewriter in order on itself"), then translates the rewritten
// tree into a target module. The only error this (or any other Translator
// method) returns is *perr.Fatal for an invariant violation (§7 case 2);
// unsupported constructs are never errors, only placeholder nodes.
func (t *Translator) Module(m *ast.Module) (*target.Module, error) {
	rewritten := rewrite.Module(m)
	body, err := t.statements(rewritten.Body)
	if err != nil {
		return nil, err
	}
	return &target.Module{Body: body}, nil
}

func (t *Translator) statements(stmts []ast.Statement) ([]target.Statement, error) {
	out := make([]target.Statement, 0, len(stmts))
	for _, s := range stmts {
		ts, err := t.statement(s)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

func (t *Translator) statement(s ast.Statement) (target.Statement, error) {
	built, err := t.dispatchStatement(s)
	if err != nil {
		return nil, err
	}
	return asStatement(t.Hooks.Apply(s, built)), nil
}

func asStatement(n target.Node) target.Statement {
	if stmt, ok := n.(target.Statement); ok {
		return stmt
	}
	// A hook returned an expression where a statement was expected; this
	// never happens for the mandated hooks, but fail safe rather than
	// panic on a caller-registered hook bug.
	return &target.Unsupported{SourceKind: fmt.Sprintf("%T (hook produced non-statement)", n)}
}

func (t *Translator) dispatchStatement(s ast.Statement) (target.Statement, error) {
	switch n := s.(type) {
	case *ast.FunctionDef:
		return t.functionDef(n)
	case *ast.ClassDef:
		return t.classDef(n)
	case *ast.Return:
		return t.returnStmt(n)
	case *ast.Assign:
		return t.assign(n)
	case *ast.AugAssign:
		return t.augAssign(n)
	case *ast.For:
		return t.forStmt(n)
	case *ast.While:
		return t.whileStmt(n)
	case *ast.If:
		return t.ifStmt(n)
	case *ast.Raise:
		return t.raiseStmt(n)
	case *ast.ExprStmt:
		return t.exprStmt(n)
	case *ast.Pass:
		return &target.Pass{}, nil
	case *ast.Break:
		return &target.Break{}, nil
	case *ast.Continue:
		return &target.Continue{}, nil
	default:
		return &target.Unsupported{SourceKind: s.Kind()}, nil
	}
}
