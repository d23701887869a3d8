// Package maincmd implements the ember command-line driver: argument
// parsing, subcommand dispatch, and the exit-code mapping spec.md §6 names.
// Grounded on the teacher's internal/maincmd package, which uses
// github.com/mna/mainer for flag parsing and a reflection-based method
// table for subcommand dispatch; that dispatch is adapted here to methods
// returning mainer.ExitCode directly, since the interpreter distinguishes
// three failure exit codes rather than the teacher's plain success/failure.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "ember"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>...]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Ember scripting language.

The <command> can be one of:
       run <path>                Execute a source file.
       repl                      Start an interactive read-eval-print loop.
       tokenize <path>           Run the scanner and print the resulting
                                 tokens.
       parse <path>              Run the scanner and parser and print the
                                 resulting syntax tree.
       resolve <path>            Run the scanner, parser and resolver and
                                 print the syntax tree annotated with
                                 variable scope-hop counts.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// exit codes beyond mainer's own Success/Failure/InvalidArgs, per spec.md §6.
const (
	staticErrorExitCode  mainer.ExitCode = 65 // parse or resolve failure
	runtimeErrorExitCode mainer.ExitCode = 70 // failure during evaluation
)

// Cmd is the root command, populated by mainer.Parser from the process
// argument vector.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) mainer.ExitCode
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

// Validate resolves the requested subcommand and checks its argument count,
// run once mainer.Parser has populated the flag fields.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	switch cmdName {
	case "run", "tokenize", "parse", "resolve":
		if len(c.args[1:]) != 1 {
			return fmt.Errorf("%s: exactly one source file must be provided", cmdName)
		}
	case "repl":
		if len(c.args[1:]) != 0 {
			return fmt.Errorf("repl: no arguments expected")
		}
	}
	return nil
}

// Main is the process entry point, called by cmd/ember with the raw
// argument vector and the process' standard streams.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	return c.cmdFn(ctx, stdio, c.args[1:])
}

// buildCmds finds every method on v with the subcommand signature
// (ctx, stdio, args) mainer.ExitCode and indexes it by lower-cased name,
// the same reflection trick the teacher's buildCmds uses for its own
// error-returning subcommands.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) mainer.ExitCode {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) mainer.ExitCode)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Name() != "ExitCode" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) mainer.ExitCode)
	}
	return cmds
}
