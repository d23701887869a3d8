package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/emberlang/ember/lang/interp"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/mna/mainer"
)

// Run executes the source file named by args[0] (spec.md §6). Grounded on
// the teacher's Cmd.Parse/ParseFiles split: a thin Cmd method that reads
// argv, delegating to an exported pipeline function so it can also be
// driven directly from tests.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", args[0], err)
		return mainer.InvalidArgs
	}
	return RunSource(stdio, string(src))
}

// RunSource drives the full scan -> parse -> resolve -> evaluate pipeline
// over src and maps the outcome to the exit codes spec.md §6 names: success,
// a static (parse or resolve) error, or a runtime error.
func RunSource(stdio mainer.Stdio, src string) mainer.ExitCode {
	toks, err := scanner.Scan(src)
	if err != nil {
		printDiagnostics(stdio, err)
		return staticErrorExitCode
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		printDiagnostics(stdio, err)
		return staticErrorExitCode
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		printDiagnostics(stdio, err)
		return staticErrorExitCode
	}

	it := interp.New(stdio.Stdout)
	if err := it.Run(stmts, locals); err != nil {
		printDiagnostics(stdio, err)
		return runtimeErrorExitCode
	}
	return mainer.Success
}
