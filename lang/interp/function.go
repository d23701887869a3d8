package interp

import (
	"fmt"

	"github.com/emberlang/ember/lang/ast"
)

// Function is a user-defined function or method value: the AST node plus
// the environment that was current when it was declared (its closure),
// optionally bound to a receiver instance (spec.md §3, "Function(f)").
type Function struct {
	Decl    *ast.Function
	Closure *Environment
	// IsMethod is true for functions produced by reading a method off a
	// class or instance (via Class construction or Get's bound-method path).
	// It is purely informational: String() and Call do not read it.
	IsMethod bool
}

var (
	_ Value    = (*Function)(nil)
	_ Callable = (*Function)(nil)
)

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme) }
func (f *Function) Type() string   { return "function" }
func (f *Function) Arity() int     { return len(f.Decl.Params) }

// Call implements spec.md §4.3's "User function" call dispatch: allocate a
// child of the closure environment, bind each parameter, execute the body,
// and catch exactly one returnSignal unwind at this boundary (a bare fall
// through, or a bare `return;`, yields Nil).
func (f *Function) Call(it *Interp, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, p := range f.Decl.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := it.executeBlock(f.Decl.Body, env)
	if err == nil {
		return NilValue, nil
	}
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}

// bind returns a new Function value whose closure wraps f's closure with a
// fresh scope defining "this" as instance (spec.md §4.3, "Property
// access" — bound methods). The instance is held by a plain pointer rather
// than a weak reference; spec.md §9 calls a weak "this" link preferred to
// avoid instance/closure reference cycles, but accepts the leak as the
// observed baseline behavior. See DESIGN.md for why Ember keeps the strong
// reference.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsMethod: true}
}

// NativeFunction wraps a host-provided builtin (spec.md §4.3's "clock" and
// "assert"). callLine is set by evalCall immediately before Fn runs, so a
// native function can attribute a runtime error to the call site's line
// without the Callable interface needing a line parameter for every kind of
// call.
type NativeFunction struct {
	NameStr  string
	Ar       int
	Fn       func(it *Interp, args []Value, line int) (Value, error)
	callLine int
}

var (
	_ Value    = (*NativeFunction)(nil)
	_ Callable = (*NativeFunction)(nil)
)

func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Arity() int     { return n.Ar }
func (n *NativeFunction) Call(it *Interp, args []Value) (Value, error) {
	return n.Fn(it, args, n.callLine)
}

// returnSignal is the non-local exit used to implement `return` (spec.md
// §5 & §7): structurally identical to an error so it can unwind through the
// same execute() call chain as a real RuntimeError, but it is caught
// exactly once, at the enclosing user-function's Call boundary, and is
// never surfaced to the driver as a diagnostic.
type returnSignal struct{ value Value }

func (returnSignal) Error() string { return "return" }
