// Package resolver implements the static lexical-scope analysis pass
// (spec.md §4.2). It walks the AST once, assigning every Variable, Assign
// and This expression a "hops" count — the number of enclosing lexical
// scopes to skip when looking the binding up at runtime — and rejects a
// handful of statically-detectable errors (re-declaration in a local scope,
// return outside a function, self-reference in a variable's own
// initializer).
//
// The scope-stack walk (push a block, declare/define names in it, pop on
// exit) and the errorf/panic-free accumulation of diagnostics are grounded
// on the teacher's lang/resolver package, simplified from its
// cell/freevar/label model (closures-as-bytecode) down to the plain
// hops-distance side table spec.md calls for.
package resolver

import (
	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/lerr"
)

// functionKind tracks what kind of function body (if any) is currently
// being resolved, to validate `return` placement and `this` availability.
type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inMethod
)

type classKind int

const (
	noClass classKind = iota
	inClass
)

// Resolution is the side-table produced by Resolve: for each resolved
// expression ID (ast.Expr.ExprID), the number of enclosing environments to
// skip to find its binding. Absence of a key means the binding is global.
type Resolution map[int]int

// Resolve walks stmts and returns the resolution side-table, or a
// lerr.List of one or more *lerr.Error values with Kind == lerr.Resolve.
func Resolve(stmts []ast.Stmt) (Resolution, error) {
	r := &resolver{
		locals:  make(Resolution),
		scopes:  nil,
		curFn:   noFunction,
		curCls:  noClass,
	}
	r.resolveStmts(stmts)
	return r.locals, r.errs.Err()
}

// scope maps a locally-declared name to whether its initializer has
// finished resolving (spec.md §4.2: "declare x as false ... mark x as true
// after").
type scope map[string]bool

type resolver struct {
	scopes []scope
	locals Resolution
	errs   lerr.List
	curFn  functionKind
	curCls classKind
}

func (r *resolver) errorf(line int, msg string) {
	r.errs.Add(lerr.Resolve, line, "", msg)
}

func (r *resolver) push()       { r.scopes = append(r.scopes, make(scope)) }
func (r *resolver) pop()        { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare introduces name into the innermost scope as not-yet-defined. A
// global (no enclosing scope) is never declared here; it is simply absent
// from the side table and resolved against the evaluator's globals at
// runtime.
func (r *resolver) declare(name string, line int) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, ok := sc[name]; ok {
		r.errorf(line, "Already a variable with this name in this scope.")
		return
	}
	sc[name] = false
}

func (r *resolver) define(name string) {
	if sc := r.peekScope(); sc != nil {
		sc[name] = true
	}
}

// resolveLocal searches from the innermost scope outward for name, and if
// found, records the hop count for id in the side table.
func (r *resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any local scope: it's a global, leave it out of the table.
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		r.push()
		r.resolveStmts(s.Stmts)
		r.pop()

	case *ast.Var:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)

	case *ast.Function:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, inFunction)

	case *ast.Class:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)

		enclosingCls := r.curCls
		r.curCls = inClass
		r.push()
		r.scopes[len(r.scopes)-1]["this"] = true
		for _, m := range s.Methods {
			r.resolveFunction(m, inMethod)
		}
		r.pop()
		r.curCls = enclosingCls

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.Return:
		if r.curFn == noFunction {
			r.errorf(s.Keyword.Line, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

func (r *resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.curFn
	r.curFn = kind

	r.push()
	for _, p := range fn.Params {
		r.declare(p.Lexeme, p.Line)
		r.define(p.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.pop()

	r.curFn = enclosingFn
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Literal:
		// nothing to resolve

	case *ast.Variable:
		if sc := r.peekScope(); sc != nil {
			if defined, ok := sc[e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ExprID(), e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ExprID(), e.Name.Lexeme)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.curCls == noClass {
			r.errorf(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ExprID(), "this")
	}
}
