package interp_test

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberlang/ember/internal/filetest"
	"github.com/emberlang/ember/lang/interp"
	"github.com/emberlang/ember/lang/lerr"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/scanner"
)

var testUpdateInterpTests = flag.Bool("test.update-interp-tests", false, "If set, replace expected interp test results with actual results.")

// TestInterpGolden runs every testdata/in/*.ember program end to end and
// diffs `print`'s output and any diagnostic against testdata/out's .want/
// .err golden files, refreshed with -test.update-interp-tests. Grounded on
// the teacher's lang/resolver and lang/parser golden-file suites
// (resolver_test.go, parser_test.go), which drive a pipeline entry point
// over testdata/in and diff the result against testdata/out the same way.
func TestInterpGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".ember") {
		t.Run(fi.Name(), func(t *testing.T) {
			out, errOut := runFile(t, filepath.Join(srcDir, fi.Name()))

			filetest.DiffOutput(t, fi, out, resultDir, testUpdateInterpTests)
			filetest.DiffErrors(t, fi, errOut, resultDir, testUpdateInterpTests)
		})
	}
}

// runFile scans, parses, resolves and evaluates the program at path,
// rendering any ParseError/ResolveError/RuntimeError the way the CLI driver
// does (one diagnostic per line, trailing newline) instead of stopping at
// the first testify assertion the way the package's other tests do.
func runFile(t *testing.T, path string) (stdout, stderr string) {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	src := string(b)

	toks, err := scanner.Scan(src)
	if err != nil {
		return "", diagnosticText(err)
	}
	stmts, err := parser.Parse(toks)
	if err != nil {
		return "", diagnosticText(err)
	}
	locals, err := resolver.Resolve(stmts)
	if err != nil {
		return "", diagnosticText(err)
	}

	var out strings.Builder
	it := interp.New(&out)
	if err := it.Run(stmts, locals); err != nil {
		return out.String(), diagnosticText(err)
	}
	return out.String(), ""
}

// diagnosticText renders err the way internal/maincmd.printDiagnostics does:
// one line per lerr.List entry, or the error's own text otherwise.
func diagnosticText(err error) string {
	if list, ok := err.(lerr.List); ok {
		var b strings.Builder
		for _, e := range list {
			fmt.Fprintln(&b, e.Error())
		}
		return b.String()
	}
	return err.Error() + "\n"
}
