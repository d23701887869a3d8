// Package lerr defines the diagnostic kinds shared by the parser, resolver
// and evaluator. Every failure the core can produce is one of three kinds
// (spec.md §7): ParseError, ResolveError or RuntimeError. Each carries a
// line number, the "near" context of the offending token, and a message,
// and formats identically to original_source/src/error.rs's ErrorType::write:
//
//	<Kind> [line N] <context>: <message>
package lerr

import "fmt"

// Kind classifies a diagnostic as static (parse/resolve) or dynamic
// (runtime), which the driver uses to pick an exit code.
type Kind string

const (
	Parse   Kind = "ParseError"
	Resolve Kind = "ResolveError"
	Runtime Kind = "RuntimeError"
)

// Error is a single diagnostic produced by one of the three core passes.
type Error struct {
	Kind    Kind
	Line    int
	Near    string // e.g. " at end" or " at 'foo'"; may be empty
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [line %d]%s: %s", e.Kind, e.Line, e.Near, e.Message)
}

// IsStatic reports whether the error kind is one that a driver should map to
// exit code 65 (parse or resolve failure) as opposed to 70 (runtime).
func (e *Error) IsStatic() bool {
	return e.Kind == Parse || e.Kind == Resolve
}

// List accumulates diagnostics across a single parse or resolve pass. It
// plays the same structural role as the teacher's reuse of go/scanner.ErrorList
// (lang/scanner/scanner.go), but is typed over *Error directly so static vs.
// runtime classification travels with the diagnostic instead of being
// inferred later from a formatted string.
type List []*Error

// Add appends a new diagnostic to the list.
func (l *List) Add(kind Kind, line int, near, message string) {
	*l = append(*l, &Error{Kind: kind, Line: line, Near: near, Message: message})
}

// Err returns the list as an error, or nil if the list is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	s := l[0].Error()
	for _, e := range l[1:] {
		s += "\n" + e.Error()
	}
	return s
}
