package target

import "strings"

// Module is the root of a translated target AST: a module-scope
// sequence of statements/declarations, separated by blank lines per the
// emitter's output contract (§6).
type Module struct {
	Body []Statement
}

// Build renders the whole module starting from Root(), the pipeline's
// single entry point into the emitter (component E).
func (m *Module) Build(ctx *Context) string {
	parts := make([]string, len(m.Body))
	for i, stmt := range m.Body {
		parts[i] = stmt.Build(ctx)
	}
	return strings.Join(parts, "\n\n")
}
