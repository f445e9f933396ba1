package ast_test

import (
	"testing"

	"github.com/mugwort-rc/py2cpp/internal/ast"
)

func TestArgumentsDefaultFor(t *testing.T) {
	args := &ast.Arguments{
		Args: []*ast.Arg{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Defaults: []ast.Expression{
			&ast.Num{Value: "1"},
			&ast.Num{Value: "2"},
		},
	}

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"no default for first arg", 0, ""},
		{"default for second arg", 1, "1"},
		{"default for third arg", 2, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := args.DefaultFor(tt.index)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("DefaultFor(%d) = %v, want nil", tt.index, got)
				}
				return
			}
			num, ok := got.(*ast.Num)
			if !ok || num.Value != tt.want {
				t.Fatalf("DefaultFor(%d) = %v, want Num(%s)", tt.index, got, tt.want)
			}
		})
	}
}

func TestNodeKinds(t *testing.T) {
	nodes := []ast.Node{
		&ast.Module{},
		&ast.FunctionDef{},
		&ast.ClassDef{},
		&ast.Return{},
		&ast.Assign{},
		&ast.AugAssign{},
		&ast.For{},
		&ast.While{},
		&ast.If{},
		&ast.Raise{},
		&ast.ExprStmt{},
		&ast.Pass{},
		&ast.Break{},
		&ast.Continue{},
		&ast.Print{},
		&ast.BoolOp{},
		&ast.BinOp{},
		&ast.UnaryOp{},
		&ast.Lambda{},
		&ast.IfExp{},
		&ast.Compare{},
		&ast.Call{},
		&ast.Num{},
		&ast.Str{},
		&ast.NameConstant{},
		&ast.Attribute{},
		&ast.Subscript{},
		&ast.Name{},
		&ast.Tuple{},
		&ast.List{},
	}

	seen := map[string]bool{}
	for _, n := range nodes {
		kind := n.Kind()
		if kind == "" {
			t.Errorf("node %T has empty Kind()", n)
		}
		if seen[kind] {
			t.Errorf("duplicate Kind() %q", kind)
		}
		seen[kind] = true
	}
}

func TestPositionString(t *testing.T) {
	p := ast.Position{Line: 3, Column: 7}
	if got, want := p.String(), "3:7"; got != want {
		t.Fatalf("Position.String() = %q, want %q", got, want)
	}
}
