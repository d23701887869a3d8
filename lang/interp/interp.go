package interp

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"
	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/lerr"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/token"
)

// Interp is the tree-walking evaluator. It holds the two fixed environment
// handles spec.md §4.3 calls for: Globals (the outermost frame, seeded with
// native builtins) and env (the currently active frame). Resolver-recorded
// hop counts index from env; their absence means the binding lives in
// Globals.
type Interp struct {
	Globals *Environment
	env     *Environment
	locals  resolver.Resolution
	stdout  io.Writer
}

// New creates an evaluator with a fresh global environment seeded with the
// native builtins (spec.md §4.3, "Native builtins").
func New(stdout io.Writer) *Interp {
	globals := NewEnvironment(nil)
	it := &Interp{Globals: globals, env: globals, stdout: stdout}
	defineBuiltins(globals)
	return it
}

// Run executes a resolved program's top-level statements. locals is the
// side-table produced by resolver.Resolve for this same AST.
func (it *Interp) Run(stmts []ast.Stmt, locals resolver.Resolution) error {
	it.locals = locals
	for _, s := range stmts {
		if err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func runtimeErrf(line int, format string, args ...any) error {
	return &lerr.Error{Kind: lerr.Runtime, Line: line, Message: fmt.Sprintf(format, args...)}
}

// ===== statements =====

func (it *Interp) execute(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExprStmt:
		_, err := it.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := it.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.stdout, v.String())
		return nil

	case *ast.Var:
		var v Value = NilValue
		if s.Initializer != nil {
			var err error
			v, err = it.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		it.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return it.executeBlock(s.Stmts, NewEnvironment(it.env))

	case *ast.If:
		cond, err := it.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return it.execute(s.Then)
		}
		if s.Else != nil {
			return it.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := it.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &Function{Decl: s, Closure: it.env}
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var v Value = NilValue
		if s.Value != nil {
			var err error
			v, err = it.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}

	case *ast.Class:
		cls := &Class{NameStr: s.Name.Lexeme, Methods: newMethodMap(s.Methods, it.env)}
		it.env.Define(s.Name.Lexeme, cls)
		return nil
	}
	return nil
}

// executeBlock runs stmts in env, restoring the previous environment on
// every exit path (normal completion, a returnSignal unwind, or a real
// error) per spec.md §5's resource discipline.
func (it *Interp) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		if err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// ===== expressions =====

func (it *Interp) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Variable:
		return it.lookupVariable(e.Name.Lexeme, e.ExprID(), e.Name.Line)

	case *ast.This:
		return it.lookupVariable("this", e.ExprID(), e.Keyword.Line)

	case *ast.Assign:
		v, err := it.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.assign(e.Name.Lexeme, e.ExprID(), v, e.Name.Line); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Grouping:
		return it.evaluate(e.Inner)

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Logical:
		return it.evalLogical(e)

	case *ast.Call:
		return it.evalCall(e)

	case *ast.Get:
		return it.evalGet(e)

	case *ast.Set:
		return it.evalSet(e)
	}
	return nil, fmt.Errorf("interp: unhandled expression %T", e)
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return NilValue
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		return NilValue
	}
}

func (it *Interp) lookupVariable(name string, exprID, line int) (Value, error) {
	if hops, ok := it.locals[exprID]; ok {
		v, ok := it.env.GetAt(hops, name)
		if !ok {
			return nil, runtimeErrf(line, "Undefined variable '%s'.", name)
		}
		return v, nil
	}
	v, ok := it.Globals.Get(name)
	if !ok {
		return nil, runtimeErrf(line, "Undefined variable '%s'.", name)
	}
	return v, nil
}

func (it *Interp) assign(name string, exprID int, v Value, line int) error {
	if hops, ok := it.locals[exprID]; ok {
		it.env.AssignAt(hops, name, v)
		return nil
	}
	if !it.Globals.Assign(name, v) {
		return runtimeErrf(line, "Undefined variable '%s'.", name)
	}
	return nil
}

func (it *Interp) evalUnary(e *ast.Unary) (Value, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.BANG:
		return Bool(!isTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, runtimeErrf(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, runtimeErrf(e.Op.Line, "Unknown unary operator '%s'.", e.Op.Lexeme)
}

func (it *Interp) evalLogical(e *ast.Logical) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else { // and
		if !isTruthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interp) evalBinary(e *ast.Binary) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	return applyBinary(e.Op.Kind, left, right, e.Op.Line, e.Op.Lexeme)
}

func (it *Interp) evalCall(e *ast.Call) (Value, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrf(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrf(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	if native, ok := callable.(*NativeFunction); ok {
		native.callLine = e.Paren.Line
	}
	return callable.Call(it, args)
}

func (it *Interp) evalGet(e *ast.Get) (Value, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrf(e.Name.Line, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, runtimeErrf(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interp) evalSet(e *ast.Set) (Value, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErrf(e.Name.Line, "Only instances have fields.")
	}
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

func newMethodMap(methods []*ast.Function, closure *Environment) *swiss.Map[string, *Function] {
	m := swiss.NewMap[string, *Function](uint32(len(methods)))
	for _, decl := range methods {
		m.Put(decl.Name.Lexeme, &Function{Decl: decl, Closure: closure, IsMethod: true})
	}
	return m
}
