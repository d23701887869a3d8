package interp

import "github.com/dolthub/swiss"

// Environment is a semantic mapping from name to Value, optionally linked to
// an enclosing environment (spec.md §3, "Environments"). Its binding map is
// backed by dolthub/swiss, the same structure the teacher uses for its own
// Map value (lang/machine/map.go) — every block entry, function call and
// method binding in Ember allocates one of these.
type Environment struct {
	bindings  *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment allocates a fresh environment enclosed by parent (nil for
// the outermost, global environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{bindings: swiss.NewMap[string, Value](8), enclosing: parent}
}

// Define binds name to v in this environment, overwriting any existing
// binding of the same name in this same frame. A local re-declaration in the
// same scope is already rejected statically by the resolver (spec.md §4.2);
// the global environment intentionally allows silent redefinition (spec.md
// §4.3, "Global-vs-local split").
func (e *Environment) Define(name string, v Value) {
	e.bindings.Put(name, v)
}

// Get looks up name in this environment only (no walk to enclosing frames).
// Used for the global environment, which the resolver never assigns a hop
// count into.
func (e *Environment) Get(name string) (Value, bool) {
	return e.bindings.Get(name)
}

// Assign rebinds an existing name in this environment only. It reports
// !ok if no such binding exists yet, letting the caller raise "Undefined
// variable" without creating one.
func (e *Environment) Assign(name string, v Value) bool {
	if !e.bindings.Has(name) {
		return false
	}
	e.bindings.Put(name, v)
	return true
}

// ancestor walks hops enclosing links up from e.
func (e *Environment) ancestor(hops int) *Environment {
	env := e
	for i := 0; i < hops; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment hops frames above e, per the
// resolver-recorded distance (spec.md §4.3, "Variable access").
func (e *Environment) GetAt(hops int, name string) (Value, bool) {
	return e.ancestor(hops).Get(name)
}

// AssignAt writes name in the environment hops frames above e.
func (e *Environment) AssignAt(hops int, name string, v Value) {
	e.ancestor(hops).Define(name, v)
}
