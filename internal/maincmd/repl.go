package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/emberlang/ember/lang/interp"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/mna/mainer"
)

// Repl runs an interactive read-eval-print loop over stdio.Stdin, sharing a
// single Interp (and so a single global environment) across lines, the way
// a REPL's persistent session is expected to behave. A line that fails to
// scan, parse or resolve reports its diagnostics and continues the loop
// rather than exiting the process (spec.md §6: the REPL itself always
// exits 0 unless the input stream ends in error).
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	it := interp.New(stdio.Stdout)
	scan := bufio.NewScanner(stdio.Stdin)

	fmt.Fprint(stdio.Stdout, "> ")
	for scan.Scan() {
		if line := scan.Text(); line != "" {
			evalLine(stdio, it, line)
		}
		fmt.Fprint(stdio.Stdout, "> ")
	}
	fmt.Fprintln(stdio.Stdout)

	if err := scan.Err(); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.Failure
	}
	return mainer.Success
}

// evalLine scans, parses, resolves and evaluates one REPL line against it's
// shared environment, reporting any diagnostic without aborting the loop.
func evalLine(stdio mainer.Stdio, it *interp.Interp, line string) {
	toks, err := scanner.Scan(line)
	if err != nil {
		printDiagnostics(stdio, err)
		return
	}
	stmts, err := parser.Parse(toks)
	if err != nil {
		printDiagnostics(stdio, err)
		return
	}
	locals, err := resolver.Resolve(stmts)
	if err != nil {
		printDiagnostics(stdio, err)
		return
	}
	if err := it.Run(stmts, locals); err != nil {
		printDiagnostics(stdio, err)
	}
}
