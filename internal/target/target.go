// Package target defines the target-language (C++-dialect) AST: a mirror
// algebra of the source AST, enriched with target-specific node kinds,
// whose only operation is Build(context) -> string (component C/E's
// output side). No target node holds a back-pointer to its parent;
// ancestry is supplied transiently through the Context (§3).
package target

// Node is the base interface for every target AST node.
type Node interface {
	// Build serializes the node to source text under the given build
	// context. Build must not mutate ctx or any sibling's output.
	Build(ctx *Context) string
}

// Statement is a target node that stands alone as a block member.
type Statement interface {
	Node
	statementNode()
}

// Expression is a target node that produces a value.
type Expression interface {
	Node
	expressionNode()
}
