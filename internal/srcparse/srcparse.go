package srcparse

import (
	"fmt"

	"github.com/mugwort-rc/py2cpp/internal/ast"
)

// Parse lexes and parses source text into the internal/ast tree the
// translator core consumes. It is a demo/test convenience only; the
// core itself accepts any producer of that same tree shape (§3, §6).
func Parse(source string) (*ast.Module, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}
	m, err := parser.ParseString("", preprocessIndentation(source))
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	return ToAST(m), nil
}
