// Package typeinfo implements component F: the type registry mapping
// source-type spellings to target-type spellings, and the docstring
// parser that feeds it from ":param"/":rtype:" fields.
package typeinfo

// VoidType is the target spelling detect() falls back to for an
// unresolved return type (§3, §4.F).
const VoidType = "void"

// PlaceholderType is the target spelling detect() falls back to for an
// unresolved parameter type (§3, §4.F, §9).
const PlaceholderType = "int"

// Registry maps source-type textual spellings to target-type spellings.
// The zero value is not ready to use; call NewRegistry.
type Registry struct {
	bindings map[string]string
}

// NewRegistry returns a registry seeded with the minimum bindings §4.F
// mandates.
func NewRegistry() *Registry {
	r := &Registry{bindings: make(map[string]string)}
	r.Install("bool", "bool")
	r.Install("int", "int")
	r.Install("long", "long")
	r.Install("float", "double")
	r.Install("complex", "std::complex<double>")
	r.Install("str", "std::string")
	r.Install("bytearray", "std::string")
	r.Install("List[int]", "std::vector<int>")
	return r
}

// Install registers or overwrites a single source-to-target binding.
func (r *Registry) Install(source, target string) {
	r.bindings[source] = target
}

// Seed installs a batch of bindings, e.g. a GUI-toolkit "Q*"-prefix
// convention (§6) or any other caller-supplied seeding policy. Seed
// never special-cases the convention itself — that belongs to the
// caller building the binds map.
func (r *Registry) Seed(binds map[string]string) {
	for source, target := range binds {
		r.Install(source, target)
	}
}

// Detect returns the registered spelling for source, else the fallback
// policy: VoidType when isReturn, else PlaceholderType (§4.F).
func (r *Registry) Detect(source string, isReturn bool) string {
	if target, ok := r.bindings[source]; ok {
		return target
	}
	if isReturn {
		return VoidType
	}
	return PlaceholderType
}
