package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/emberlang/ember/lang/scanner"
	"github.com/mna/mainer"
)

// Tokenize runs the scanner over the named file and prints one line per
// token, for inspecting the lexical pass in isolation (spec.md §6).
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) mainer.ExitCode {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", args[0], err)
		return mainer.InvalidArgs
	}

	toks, serr := scanner.Scan(string(src))
	for _, t := range toks {
		fmt.Fprintf(stdio.Stdout, "%d %s %q\n", t.Line, t.Kind, t.Lexeme)
	}
	if serr != nil {
		printDiagnostics(stdio, serr)
		return staticErrorExitCode
	}
	return mainer.Success
}
