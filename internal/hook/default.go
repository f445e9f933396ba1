package hook

import (
	"github.com/mugwort-rc/py2cpp/internal/ast"
	"github.com/mugwort-rc/py2cpp/internal/target"
	"github.com/mugwort-rc/py2cpp/internal/typeinfo"
)

// DefaultRegistry returns the registry seeded with the six mandated
// hooks (§4.D), in the order spec.md lists them. types is the same type
// registry the translator resolves annotations with, so a docstring
// type name ("float", "str", ...) maps to the same target spelling an
// explicit annotation would.
func DefaultRegistry(types *typeinfo.Registry) *Registry {
	r := NewRegistry()
	r.Register(mathPowHook())
	r.Register(tupleFactoryHook())
	r.Register(rangeHook())
	r.Register(noneLiteralHook())
	r.Register(printToStreamHook())
	r.Register(docstringTypingHook(types))
	return r
}

func isAttrCall(e ast.Expression, owner, attr string) bool {
	call, ok := e.(*ast.Call)
	if !ok {
		return false
	}
	a, ok := call.Func.(*ast.Attribute)
	if !ok || a.Attr != attr {
		return false
	}
	name, ok := a.Value.(*ast.Name)
	return ok && name.Id == owner
}

func isNameCall(e ast.Expression, name string) bool {
	call, ok := e.(*ast.Call)
	if !ok {
		return false
	}
	n, ok := call.Func.(*ast.Name)
	return ok && n.Id == name
}

// mathPowHook rewrites a call to math.pow into std::pow.
func mathPowHook() Hook {
	return Hook{
		Name: "math-pow",
		Match: func(src ast.Node) bool {
			e, ok := src.(ast.Expression)
			return ok && isAttrCall(e, "math", "pow")
		},
		Apply: func(_ ast.Node, tgt target.Node) target.Node {
			call, ok := tgt.(*target.Call)
			if !ok {
				return tgt
			}
			call.Func = &target.NamespaceScope{Namespace: "std", Member: "pow"}
			return call
		},
	}
}

// tupleFactoryHook rewrites a call to the bare name "tuple" into
// std::make_tuple.
func tupleFactoryHook() Hook {
	return Hook{
		Name: "tuple-factory",
		Match: func(src ast.Node) bool {
			e, ok := src.(ast.Expression)
			return ok && isNameCall(e, "tuple")
		},
		Apply: func(_ ast.Node, tgt target.Node) target.Node {
			call, ok := tgt.(*target.Call)
			if !ok {
				return tgt
			}
			call.Func = &target.NamespaceScope{Namespace: "std", Member: "make_tuple"}
			return call
		},
	}
}

// rangeHook rewrites a call to "range" into the runtime helper
// py2cpp::range (§4.D, §6: "a runtime companion header is assumed to
// exist").
func rangeHook() Hook {
	return Hook{
		Name: "range",
		Match: func(src ast.Node) bool {
			e, ok := src.(ast.Expression)
			return ok && isNameCall(e, "range")
		},
		Apply: func(_ ast.Node, tgt target.Node) target.Node {
			call, ok := tgt.(*target.Call)
			if !ok {
				return tgt
			}
			call.Func = &target.NamespaceScope{Namespace: "py2cpp", Member: "range"}
			return call
		},
	}
}

// noneLiteralHook rewrites the source null literal, whether spelled as a
// bare name or a distinct constant node, into the nullptr name.
func noneLiteralHook() Hook {
	return Hook{
		Name: "none-literal",
		Match: func(src ast.Node) bool {
			switch n := src.(type) {
			case *ast.NameConstant:
				return n.Value == "None"
			case *ast.Name:
				return n.Id == "None"
			default:
				return false
			}
		},
		Apply: func(_ ast.Node, _ target.Node) target.Node {
			return &target.Name{Ident: "nullptr"}
		},
	}
}

// printToStreamHook rewrites an expression-statement wrapping a call to
// "print" into a chained stream-insertion statement.
func printToStreamHook() Hook {
	return Hook{
		Name: "print-to-stream",
		Match: func(src ast.Node) bool {
			stmt, ok := src.(*ast.ExprStmt)
			if !ok {
				return false
			}
			return isNameCall(stmt.Value, "print")
		},
		Apply: func(src ast.Node, tgt target.Node) target.Node {
			srcStmt := src.(*ast.ExprStmt)
			srcCall := srcStmt.Value.(*ast.Call)

			exprStmt, ok := tgt.(*target.ExprStmt)
			if !ok {
				return tgt
			}
			call, ok := exprStmt.Value.(*target.Call)
			if !ok {
				return tgt
			}

			noNewline := false
			for _, kw := range srcCall.Keywords {
				if kw.Name == "end" {
					noNewline = true
				}
			}

			return &target.StreamOutput{Args: call.Args, NoNewline: noNewline}
		},
	}
}

// docstringTypingHook parses a function-def's docstring (re-extracted
// from the source node the same way the translator does, §3) and fills
// any parameter/return type the source's own annotations left
// unresolved. Annotations always take precedence over docstring fields
// (§3 "Argument-type table": writable by hooks, read by the arguments
// emitter).
func docstringTypingHook(types *typeinfo.Registry) Hook {
	return Hook{
		Name: "docstring-typing",
		Match: func(src ast.Node) bool {
			_, ok := src.(*ast.FunctionDef)
			return ok
		},
		Apply: func(src ast.Node, tgt target.Node) target.Node {
			fn := src.(*ast.FunctionDef)
			fnTarget, ok := tgt.(*target.FunctionDef)
			if !ok {
				return tgt
			}
			doc, ok := docstringOf(fn)
			if !ok {
				return fnTarget
			}
			parsed := typeinfo.Parse(doc)

			byName := make(map[string]string, len(parsed.Params))
			for _, p := range parsed.Params {
				if p.Type != "" {
					byName[p.Name] = p.Type
				}
			}

			var srcArgs []*ast.Arg
			if fn.Args != nil {
				srcArgs = fn.Args.Args
			}
			for i, arg := range srcArgs {
				if arg.Annotation != "" {
					continue // explicit annotation wins over docstring
				}
				if srcType, ok := byName[arg.Name]; ok && i < len(fnTarget.Params) {
					fnTarget.Params[i].Type = types.Detect(srcType, false)
				}
			}

			if fn.Returns == "" && parsed.RType != nil {
				fnTarget.ReturnType = rtypeSpelling(types, parsed.RType)
			}

			return fnTarget
		},
	}
}

// rtypeSpelling projects a parsed ":rtype:" expression to a target
// spelling: a bare type name goes through the same registry an
// annotation would, so "float" and ":rtype: float" agree; a compound
// "T of U" expression has no generic-parameter substitution rule in the
// registry, so its Head is used directly as the container spelling
// (§4.F: "the emitter projects the head as the container spelling").
func rtypeSpelling(types *typeinfo.Registry, rt *typeinfo.TypeExpr) string {
	if rt.Of == nil {
		return types.Detect(rt.Head, true)
	}
	return rt.Head
}

// docstringOf re-derives a function's docstring the same way the
// translator does: the first body statement, if it is a bare string
// literal expression-statement (§3).
func docstringOf(fn *ast.FunctionDef) (string, bool) {
	if len(fn.Body) == 0 {
		return "", false
	}
	stmt, ok := fn.Body[0].(*ast.ExprStmt)
	if !ok {
		return "", false
	}
	str, ok := stmt.Value.(*ast.Str)
	if !ok {
		return "", false
	}
	return str.Value, true
}
