package maincmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/mna/mainer"
)

// Resolve runs the scanner, parser and resolver over the named file and
// prints the syntax tree; a successful resolve additionally prints the
// scope-hop count recorded against each Variable/Assign/This node, keyed by
// the "#ID" the tree dump shows for that node (spec.md
// §6, mirroring the teacher's Cmd.Resolve which refuses to resolve an AST
// that failed to parse).
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", args[0], err)
		return mainer.InvalidArgs
	}

	toks, serr := scanner.Scan(string(src))
	if serr != nil {
		printDiagnostics(stdio, serr)
		return staticErrorExitCode
	}

	stmts, perr := parser.Parse(toks)
	if perr != nil {
		printDiagnostics(stdio, perr)
		return staticErrorExitCode
	}

	locals, rerr := resolver.Resolve(stmts)
	fmt.Fprint(stdio.Stdout, ast.Print(stmts))
	if rerr != nil {
		printDiagnostics(stdio, rerr)
		return staticErrorExitCode
	}
	fmt.Fprintf(stdio.Stdout, "resolution: %d entries\n", len(locals))
	ids := make([]int, 0, len(locals))
	for id := range locals {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(stdio.Stdout, "  #%d hops %d\n", id, locals[id])
	}
	return mainer.Success
}
