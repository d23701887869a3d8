package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Class is a first-class class value: a name and a mapping from method
// name to function value (spec.md §3, "Class(c)"). Calling a Class
// constructs an Instance; there is no `init` method support (spec.md
// §4.3's "Function call" note).
type Class struct {
	NameStr string
	Methods *swiss.Map[string, *Function]
}

var (
	_ Value    = (*Class)(nil)
	_ Callable = (*Class)(nil)
)

func (c *Class) String() string { return c.NameStr }
func (c *Class) Type() string   { return "class" }
func (c *Class) Arity() int     { return 0 }

// Call constructs a new Instance of the class.
func (c *Class) Call(it *Interp, args []Value) (Value, error) {
	return &Instance{Class: c, Fields: swiss.NewMap[string, Value](4)}, nil
}

func (c *Class) findMethod(name string) (*Function, bool) {
	return c.Methods.Get(name)
}

// Instance is a shared-ownership, interior-mutable instance of a class
// (spec.md §3, "Instance(i)"). Multiple bindings to the same Instance must
// observe writes through any of them, which a Go pointer gives for free.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.NameStr) }
func (i *Instance) Type() string   { return "instance" }

// Get implements spec.md §4.3's property-read resolution order: instance
// fields shadow methods, and a method read off an instance comes back
// bound to that instance.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.Class.findMethod(name); ok {
		return m.bind(i), true
	}
	return nil, false
}

// Set writes name into the instance's field map, creating it if absent.
func (i *Instance) Set(name string, v Value) {
	i.Fields.Put(name, v)
}
