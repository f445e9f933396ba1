package target

import "strings"

// ConstructorSentinel is the source function name that the emitter
// recognizes as the class constructor when the enclosing context is
// inside a class (§4.E "Constructor special case").
const ConstructorSentinel = "__init__"

// SelfParam is the conventional receiver parameter name the emitter
// drops from a class method's argument list (§4.E).
const SelfParam = "self"

// PlaceholderType is the default spelling for a parameter whose type
// could not be resolved (§4.F, §9: "Integer placeholder for unknown
// types").
const PlaceholderType = "int"

// FuncParam is one emitted function parameter.
type FuncParam struct {
	Type    string
	Name    string
	Default Expression // nil if this parameter has no default
}

func (p FuncParam) build(ctx *Context) string {
	s := p.Type + " " + p.Name
	if p.Default != nil {
		s += "=" + p.Default.Build(ctx)
	}
	return s
}

// buildParams renders a parameter list, dropping a leading "self" when
// building a class method (§4.E).
func buildParams(ctx *Context, params []FuncParam, isMethod bool) string {
	if isMethod && len(params) > 0 && params[0].Name == SelfParam {
		params = params[1:]
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.build(ctx)
	}
	return strings.Join(parts, ", ")
}

// FunctionDef is a function or method definition.
type FunctionDef struct {
	Name       string
	Params     []FuncParam
	ReturnType string // "" resolves to "void" at build time
	Body       []Statement
}

func (f *FunctionDef) statementNode() {}

func (f *FunctionDef) Build(ctx *Context) string {
	inner := ctx.Enter(f)
	isMethod := ctx.ImmediateParentIsClass()
	isCtor := isMethod && f.Name == ConstructorSentinel

	var sb strings.Builder
	sb.WriteString(ctx.Indent())

	switch {
	case isCtor:
		className := enclosingClassName(ctx)
		sb.WriteString(className)
	default:
		returnType := f.ReturnType
		if returnType == "" {
			returnType = "void"
		}
		sb.WriteString(returnType)
		sb.WriteString(" ")
		sb.WriteString(f.Name)
	}

	sb.WriteString("(")
	sb.WriteString(buildParams(ctx, f.Params, isMethod))
	sb.WriteString(") {\n")

	if len(f.Body) == 0 {
		sb.WriteString("\n")
	} else {
		for _, stmt := range f.Body {
			sb.WriteString(stmt.Build(inner))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(ctx.Indent())
	sb.WriteString("}")
	return sb.String()
}

func enclosingClassName(ctx *Context) string {
	if ctx == nil || ctx.node == nil {
		return ""
	}
	if cd, ok := ctx.node.(*ClassDef); ok {
		return cd.Name
	}
	return ""
}

// ClassDef is a class definition with an optional public-inheritance
// base list (§4.C: "Base classes translate to a public-inheritance
// list").
type ClassDef struct {
	Name  string
	Bases []string
	Body  []Statement
}

func (c *ClassDef) statementNode() {}

func (c *ClassDef) Build(ctx *Context) string {
	inner := ctx.Enter(c)

	var sb strings.Builder
	sb.WriteString(ctx.Indent())
	sb.WriteString("class ")
	sb.WriteString(c.Name)
	if len(c.Bases) > 0 {
		bases := make([]string, len(c.Bases))
		for i, b := range c.Bases {
			bases[i] = "public " + b
		}
		sb.WriteString(" : ")
		sb.WriteString(strings.Join(bases, ", "))
	}
	sb.WriteString(" {\n")

	for _, stmt := range c.Body {
		sb.WriteString(stmt.Build(inner))
		sb.WriteString("\n")
	}

	sb.WriteString(ctx.Indent())
	sb.WriteString("};")
	return sb.String()
}

// Return is a return statement with an optional value.
type Return struct {
	Value Expression // nil for bare "return;"
}

func (r *Return) statementNode() {}

func (r *Return) Build(ctx *Context) string {
	if r.Value == nil {
		return ctx.Indent() + "return;"
	}
	return ctx.Indent() + "return " + r.Value.Build(ctx) + ";"
}

// ExprStmt is an expression used as a statement, terminated with ";".
type ExprStmt struct {
	Value Expression
}

func (e *ExprStmt) statementNode() {}

func (e *ExprStmt) Build(ctx *Context) string {
	return ctx.Indent() + e.Value.Build(ctx) + ";"
}

// Assign preserves the source's chained-assignment form: target1 =
// target2 = ... = value (§4.C).
type Assign struct {
	Targets []Expression
	Value   Expression
}

func (a *Assign) statementNode() {}

func (a *Assign) Build(ctx *Context) string {
	var sb strings.Builder
	sb.WriteString(ctx.Indent())
	for _, t := range a.Targets {
		sb.WriteString(t.Build(ctx))
		sb.WriteString(" = ")
	}
	sb.WriteString(a.Value.Build(ctx))
	sb.WriteString(";")
	return sb.String()
}

// AugAssign is an augmented assignment other than power/floor-div (those
// are eliminated before translation, §4.B/§4.C).
type AugAssign struct {
	Target Expression
	Op     string // e.g. "+=", matches the target operator table
	Value  Expression
}

func (a *AugAssign) statementNode() {}

func (a *AugAssign) Build(ctx *Context) string {
	return ctx.Indent() + a.Target.Build(ctx) + " " + a.Op + " " + a.Value.Build(ctx) + ";"
}

// For is a range-based for loop.
type For struct {
	Target string
	Iter   Expression
	Body   []Statement
}

func (f *For) statementNode() {}

func (f *For) Build(ctx *Context) string {
	inner := ctx.Enter(f)
	var sb strings.Builder
	sb.WriteString(ctx.Indent())
	sb.WriteString("for (auto ")
	sb.WriteString(f.Target)
	sb.WriteString(" : ")
	sb.WriteString(f.Iter.Build(ctx))
	sb.WriteString(") {\n")
	for _, stmt := range f.Body {
		sb.WriteString(stmt.Build(inner))
		sb.WriteString("\n")
	}
	sb.WriteString(ctx.Indent())
	sb.WriteString("}")
	return sb.String()
}

// While is a while loop.
type While struct {
	Test Expression
	Body []Statement
}

func (w *While) statementNode() {}

func (w *While) Build(ctx *Context) string {
	inner := ctx.Enter(w)
	var sb strings.Builder
	sb.WriteString(ctx.Indent())
	sb.WriteString("while (")
	sb.WriteString(w.Test.Build(ctx))
	sb.WriteString(") {\n")
	for _, stmt := range w.Body {
		sb.WriteString(stmt.Build(inner))
		sb.WriteString("\n")
	}
	sb.WriteString(ctx.Indent())
	sb.WriteString("}")
	return sb.String()
}

// If is a conditional with an optional else branch. A singleton
// else-branch that is itself another If is flattened into "} else
// if-expansion" rather than a nested braced block (§4.E).
type If struct {
	Test   Expression
	Body   []Statement
	Orelse []Statement // empty, or exactly one *If, for else-if flattening
}

func (i *If) statementNode() {}

func (i *If) Build(ctx *Context) string {
	inner := ctx.Enter(i)
	var sb strings.Builder
	sb.WriteString(ctx.Indent())
	sb.WriteString("if (")
	sb.WriteString(i.Test.Build(ctx))
	sb.WriteString(") {\n")
	for _, stmt := range i.Body {
		sb.WriteString(stmt.Build(inner))
		sb.WriteString("\n")
	}
	sb.WriteString(ctx.Indent())
	sb.WriteString("}")

	switch len(i.Orelse) {
	case 0:
		// no else branch
	case 1:
		if nested, ok := i.Orelse[0].(*If); ok {
			sb.WriteString(" else ")
			sb.WriteString(strings.TrimPrefix(nested.Build(ctx), ctx.Indent()))
			break
		}
		sb.WriteString(" else {\n")
		sb.WriteString(i.Orelse[0].Build(inner))
		sb.WriteString("\n")
		sb.WriteString(ctx.Indent())
		sb.WriteString("}")
	default:
		sb.WriteString(" else {\n")
		for _, stmt := range i.Orelse {
			sb.WriteString(stmt.Build(inner))
			sb.WriteString("\n")
		}
		sb.WriteString(ctx.Indent())
		sb.WriteString("}")
	}

	return sb.String()
}

// Raise always instantiates a default-constructed exception; any
// arguments on the source raise are intentionally dropped (§9, §4.E).
type Raise struct {
	ExceptionName string
}

func (r *Raise) statementNode() {}

func (r *Raise) Build(ctx *Context) string {
	return ctx.Indent() + "throw " + r.ExceptionName + "();"
}

// Pass emits an empty line, preserving the surrounding block's shape
// (§4.E).
type Pass struct{}

func (p *Pass) statementNode() {}
func (p *Pass) Build(_ *Context) string { return "" }

// Break and Continue map directly to their target-language keywords.
type Break struct{}

func (b *Break) statementNode() {}
func (b *Break) Build(ctx *Context) string { return ctx.Indent() + "break;" }

type Continue struct{}

func (c *Continue) statementNode() {}
func (c *Continue) Build(ctx *Context) string { return ctx.Indent() + "continue;" }

// StreamOutput is the print-to-stream hook's rewrite target: a chained
// stream-insertion statement, "std::cout << a << b << ... << std::endl;"
// (§4.D print-to-stream hook).
type StreamOutput struct {
	Args      []Expression
	NoNewline bool
}

func (s *StreamOutput) statementNode() {}

func (s *StreamOutput) Build(ctx *Context) string {
	var sb strings.Builder
	sb.WriteString(ctx.Indent())
	sb.WriteString("std::cout")
	for _, a := range s.Args {
		sb.WriteString(" << ")
		sb.WriteString(a.Build(ctx))
	}
	if !s.NoNewline {
		sb.WriteString(" << std::endl")
	}
	sb.WriteString(";")
	return sb.String()
}

// Unsupported is the placeholder node for a source construct with no
// translator handler, emitted as a comment line (§4.C, §7 case 1). The
// pipeline must never abort on this node's account.
type Unsupported struct {
	SourceKind string
}

func (u *Unsupported) statementNode()  {}
func (u *Unsupported) expressionNode() {}

func (u *Unsupported) Build(ctx *Context) string {
	return ctx.Indent() + "// UNSUPPORTED AST NODE: " + u.SourceKind
}
