// Package pipeline wires the core components into the single entry
// point the CLI (and tests) drive: surface rewrite, translate, and
// emit, with the file name and source text threaded through so a
// *perr.Fatal carries a caret-annotated excerpt (§7).
package pipeline

import (
	"github.com/mugwort-rc/py2cpp/internal/ast"
	"github.com/mugwort-rc/py2cpp/internal/perr"
	"github.com/mugwort-rc/py2cpp/internal/target"
	"github.com/mugwort-rc/py2cpp/internal/translate"
	"github.com/mugwort-rc/py2cpp/internal/typeinfo"
)

// Pipeline is a reusable translator bound to a single type registry, so
// a caller can Seed it (e.g. §6's "--using-qt" convention) once and run
// it over many modules.
type Pipeline struct {
	tr *translate.Translator
}

// New returns a pipeline with the default type registry and the
// mandated hooks installed.
func New() *Pipeline {
	return &Pipeline{tr: translate.New()}
}

// Types exposes the underlying type registry so a caller can seed it
// with additional source-to-target bindings before running Transpile.
func (p *Pipeline) Types() *typeinfo.Registry {
	return p.tr.Types
}

// Transpile runs the full pipeline over a parsed module and renders the
// resulting target tree from the module root (§4.E: "Build(context)
// string" starting at target.Root()). file and source are attached to
// any returned *perr.Fatal purely for diagnostic rendering; they are
// never consulted by translation logic itself.
func (p *Pipeline) Transpile(m *ast.Module, file, source string) (string, error) {
	translated, err := p.tr.Module(m)
	if err != nil {
		if fatal, ok := err.(*perr.Fatal); ok {
			return "", fatal.WithSource(source, file)
		}
		return "", err
	}
	return translated.Build(target.Root()), nil
}
