// Package hook implements component D: the ordered pattern-matchers
// consulted after each node is translated, allowing targeted
// remappings from idiomatic source forms to idiomatic target forms.
package hook

import (
	"github.com/mugwort-rc/py2cpp/internal/ast"
	"github.com/mugwort-rc/py2cpp/internal/target"
)

// Hook is a (match, apply) pair. Match inspects the untranslated source
// node; Apply receives both the source node and the target node the
// translator already built for it, and returns the node that should
// replace it.
type Hook struct {
	Name  string
	Match func(src ast.Node) bool
	Apply func(src ast.Node, tgt target.Node) target.Node
}

// Registry holds hooks in registration order. The first hook whose
// Match predicate matches a node wins; by construction the six mandated
// hooks are disjoint, so registration order never changes behavior for
// them (§4.D).
type Registry struct {
	hooks []Hook
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a hook to the end of the registry.
func (r *Registry) Register(h Hook) {
	r.hooks = append(r.hooks, h)
}

// Apply consults every registered hook in order and returns the result
// of the first match's Apply, or tgt unchanged if none matched.
func (r *Registry) Apply(src ast.Node, tgt target.Node) target.Node {
	for _, h := range r.hooks {
		if h.Match(src) {
			return h.Apply(src, tgt)
		}
	}
	return tgt
}
