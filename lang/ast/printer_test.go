package ast_test

import (
	"strings"
	"testing"

	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintIncludesNodeShapes(t *testing.T) {
	toks, err := scanner.Scan("var x = 1 + 2; print x;")
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)

	out := ast.Print(stmts)
	assert.True(t, strings.Contains(out, "var x"))
	assert.True(t, strings.Contains(out, "binary +"))
	assert.True(t, strings.Contains(out, "print"))
	assert.True(t, strings.Contains(out, "var-ref x"))
}
