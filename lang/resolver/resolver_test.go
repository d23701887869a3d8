package resolver_test

import (
	"testing"

	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, resolver.Resolution, error) {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	return stmts, locals, err
}

func TestResolveLocalHop(t *testing.T) {
	stmts, locals, err := resolve(t, "{ var a = 1; { print a; } }")
	require.NoError(t, err)

	outer := stmts[0].(*ast.Block)
	inner := outer.Stmts[1].(*ast.Block)
	printStmt := inner.Stmts[0].(*ast.Print)
	ref := printStmt.Expr.(*ast.Variable)

	hops, ok := locals[ref.ExprID()]
	require.True(t, ok)
	assert.Equal(t, 1, hops)
}

func TestResolveGlobalIsAbsent(t *testing.T) {
	_, locals, err := resolve(t, "var a = 1; print a;")
	require.NoError(t, err)
	assert.Len(t, locals, 0)
}

func TestResolveSelfReferenceError(t *testing.T) {
	_, _, err := resolve(t, "{ var a = a; }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't read local variable in its own initializer.")
}

func TestResolveRedeclarationError(t *testing.T) {
	_, _, err := resolve(t, "{ var a = 1; var a = 2; }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already a variable with this name in this scope.")
}

func TestResolveReturnOutsideFunctionError(t *testing.T) {
	_, _, err := resolve(t, "return 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return from top-level code.")
}

func TestResolveThisOutsideClassError(t *testing.T) {
	_, _, err := resolve(t, "print this;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'this' outside of a class.")
}

func TestResolveThisInsideMethod(t *testing.T) {
	stmts, locals, err := resolve(t, "class C { m() { print this; } }")
	require.NoError(t, err)

	cls := stmts[0].(*ast.Class)
	m := cls.Methods[0]
	p := m.Body[0].(*ast.Print)
	this := p.Expr.(*ast.This)

	hops, ok := locals[this.ExprID()]
	require.True(t, ok)
	assert.Equal(t, 1, hops)
}

func TestResolveClosureCapturesParameter(t *testing.T) {
	stmts, locals, err := resolve(t, "fun outer(x) { fun inner() { print x; } }")
	require.NoError(t, err)

	outer := stmts[0].(*ast.Function)
	inner := outer.Body[0].(*ast.Function)
	p := inner.Body[0].(*ast.Print)
	ref := p.Expr.(*ast.Variable)

	hops, ok := locals[ref.ExprID()]
	require.True(t, ok)
	assert.Equal(t, 1, hops)
}
