// Package interp is the tree-walking evaluator (spec.md §4.3), the largest
// single pass of the core (≈55% of the implementation budget). It walks the
// resolved AST, maintains a chain of Environments, evaluates expressions,
// executes statements, invokes callables, and raises RuntimeError
// diagnostics on type and state violations. Its Value types and Callable
// dispatch are grounded on the teacher's lang/machine package (an
// interface-based Value with String()/Type(), and a Callable interface with
// a CallInternal method), simplified down from a bytecode-VM's register
// machine to a direct tree-walking Call.
package interp

import (
	"math"
	"strconv"
)

// Value is implemented by every value the evaluator manipulates (spec.md
// §3, "Runtime values").
type Value interface {
	String() string
	Type() string
}

// Nil is the sole nil value.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }

// NilValue is the single shared Nil instance, analogous to the teacher's
// machine.Nil singleton.
var NilValue = Nil{}

// Bool wraps a boolean runtime value.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) Type() string { return "boolean" }

// Number wraps a float64 runtime value. All arithmetic in the language is
// double-precision, per spec.md §3.
type Number float64

func (n Number) String() string { return formatNumber(float64(n)) }
func (Number) Type() string     { return "number" }

// formatNumber renders a float the way `print` does (spec.md §4.3):
// integral values below 1e15 in magnitude print without a trailing ".0" or
// exponent; everything else (larger integers included) prints in the
// shortest round-trippable %g form, which may use an exponent.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String wraps a string runtime value.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// Callable is implemented by any value that may be the target of a Call
// expression: user functions, native functions, and classes (whose call
// constructs an instance).
type Callable interface {
	Value
	Arity() int
	Call(it *Interp, args []Value) (Value, error)
}

// isTruthy implements spec.md §4.3's truthiness rule: only nil and false
// are falsy, everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// valuesEqual implements spec.md §4.3's equality rule: == and != never
// raise; values of different kinds compare unequal; within a kind, use
// structural equality (reference equality for Function/Class/Instance,
// since those are the identity the language cares about — spec.md §8's
// "i.m() == i" testable property depends on this).
func valuesEqual(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	default:
		return a == b // pointer identity for *Function, *Class, *Instance, *NativeFunction
	}
}

// toText renders v the way the '+' operator's mixed-operand coercion does
// (spec.md §4.3): the same textual form `print` would emit.
func toText(v Value) string {
	return v.String()
}

