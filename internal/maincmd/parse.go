package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/mna/mainer"
)

// Parse runs the scanner and parser over the named file and prints the
// resulting syntax tree (spec.md §6). Grounded on the teacher's
// Cmd.Parse/ParseFiles, which prints via an ast.Printer after a successful
// parse but still reports a scanner error if one occurred.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
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
	fmt.Fprint(stdio.Stdout, ast.Print(stmts))
	if perr != nil {
		printDiagnostics(stdio, perr)
		return staticErrorExitCode
	}
	return mainer.Success
}
