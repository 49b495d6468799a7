package environment

import "github.com/brennacourt/plc/internal/plcerr"

// Registry resolves type names to Types. It starts out holding the fixed
// primitive set and grows as the embedder or the standard library registers
// record types through RegisterType. It is an instance, not package-level
// state, so tests can run against isolated registries instead of sharing
// one global table.
type Registry struct {
	types map[string]*Type
}

// NewRegistry builds a Registry pre-populated with the fixed primitive
// types: Any, Nil, Comparable, Boolean, Integer, Decimal, Character,
// String.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]*Type)}
	for _, t := range []*Type{Any, Nil, Comparable, Boolean, Integer, Decimal, Character, String} {
		r.types[t.Name] = t
	}
	return r
}

// RegisterType adds a new record type (or overwrites an embedder's earlier
// registration of the same name) to the registry.
func (r *Registry) RegisterType(t *Type) {
	r.types[t.Name] = t
}

// Lookup resolves a type name written in source or supplied by an embedder.
func (r *Registry) Lookup(name string) (*Type, error) {
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	return nil, plcerr.NewNameError("unknown type '%s'", name)
}
