package parser_test

import (
	"testing"

	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestParseVarDecl(t *testing.T) {
	stmts := parse(t, "var x = 1 + 2;")
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	bin, ok := v.Initializer.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Lexeme)
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	stmts := parse(t, "1 + 2 * 3;")
	es := stmts[0].(*ast.ExprStmt)
	add, ok := es.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op.Lexeme)
	mul, ok := add.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op.Lexeme)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, ok = block.Stmts[0].(*ast.Var)
	assert.True(t, ok)
	_, ok = block.Stmts[1].(*ast.While)
	assert.True(t, ok)
}

func TestParseClassWithMethods(t *testing.T) {
	stmts := parse(t, "class Greeter { greet() { print this; } }")
	require.Len(t, stmts, 1)
	cls, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Greeter", cls.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "greet", cls.Methods[0].Name.Lexeme)
}

func TestParseAssignTargetError(t *testing.T) {
	toks, err := scanner.Scan("1 = 2;")
	require.NoError(t, err)
	_, err = parser.Parse(toks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestParseMissingSemicolon(t *testing.T) {
	toks, err := scanner.Scan("var x = 1")
	require.NoError(t, err)
	_, err = parser.Parse(toks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expect ';' after variable declaration.")
}

func TestParseSetExpression(t *testing.T) {
	stmts := parse(t, "a.b = 1;")
	es := stmts[0].(*ast.ExprStmt)
	set, ok := es.Expr.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParseCallChain(t *testing.T) {
	stmts := parse(t, "a.b().c;")
	es := stmts[0].(*ast.ExprStmt)
	get, ok := es.Expr.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
	_, ok = get.Object.(*ast.Call)
	assert.True(t, ok)
}
