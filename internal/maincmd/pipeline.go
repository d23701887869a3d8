package maincmd

import (
	"fmt"

	"github.com/emberlang/ember/lang/lerr"
	"github.com/mna/mainer"
)

// printDiagnostics writes err to stdio.Stderr, expanding a lerr.List into
// one line per diagnostic so a multi-error parse or resolve failure reads
// the way spec.md §7 describes rather than as one long joined string.
func printDiagnostics(stdio mainer.Stdio, err error) {
	if list, ok := err.(lerr.List); ok {
		for _, e := range list {
			fmt.Fprintln(stdio.Stderr, e.Error())
		}
		return
	}
	fmt.Fprintln(stdio.Stderr, err)
}
