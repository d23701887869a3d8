package interp

import "time"

// defineBuiltins seeds globals with the native builtins spec.md §4.3 names:
// clock() -> number of milliseconds since an unspecified fixed epoch, and
// assert(x) -> nil if x is true, else a runtime error. Grounded on
// original_source/src/callable.rs's get_native_functions, which defines
// clock identically (zero arity, wall-clock milliseconds as a float).
func defineBuiltins(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		NameStr: "clock",
		Ar:      0,
		Fn: func(it *Interp, args []Value, line int) (Value, error) {
			return Number(float64(time.Now().UnixMilli())), nil
		},
	})

	globals.Define("assert", &NativeFunction{
		NameStr: "assert",
		Ar:      1,
		Fn: func(it *Interp, args []Value, line int) (Value, error) {
			if b, ok := args[0].(Bool); ok && bool(b) {
				return NilValue, nil
			}
			return nil, runtimeErrf(line, "Assertion failed")
		},
	})
}
