package ast

import (
	"fmt"
	"strings"
)

// Print renders a program (a list of statements) as an indented tree dump,
// one node per line, used by the `ember parse` and `ember resolve` debug subcommands.
// Grounded on the teacher's ast.Printer, simplified to plain text since this
// AST has no comment association or quasi-lossless source reconstruction to
// preserve.
func Print(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		printStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func printStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch s := s.(type) {
	case *ExprStmt:
		sb.WriteString("expr\n")
		printExpr(sb, s.Expr, depth+1)
	case *Print:
		sb.WriteString("print\n")
		printExpr(sb, s.Expr, depth+1)
	case *Var:
		fmt.Fprintf(sb, "var %s\n", s.Name.Lexeme)
		if s.Initializer != nil {
			printExpr(sb, s.Initializer, depth+1)
		}
	case *Block:
		sb.WriteString("block\n")
		for _, st := range s.Stmts {
			printStmt(sb, st, depth+1)
		}
	case *If:
		sb.WriteString("if\n")
		printExpr(sb, s.Cond, depth+1)
		printStmt(sb, s.Then, depth+1)
		if s.Else != nil {
			printStmt(sb, s.Else, depth+1)
		}
	case *While:
		sb.WriteString("while\n")
		printExpr(sb, s.Cond, depth+1)
		printStmt(sb, s.Body, depth+1)
	case *Function:
		fmt.Fprintf(sb, "fun %s(", s.Name.Lexeme)
		for i, p := range s.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Lexeme)
		}
		sb.WriteString(")\n")
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
	case *Return:
		sb.WriteString("return\n")
		if s.Value != nil {
			printExpr(sb, s.Value, depth+1)
		}
	case *Class:
		fmt.Fprintf(sb, "class %s\n", s.Name.Lexeme)
		for _, m := range s.Methods {
			printStmt(sb, m, depth+1)
		}
	default:
		fmt.Fprintf(sb, "<unknown stmt %T>\n", s)
	}
}

func printExpr(sb *strings.Builder, e Expr, depth int) {
	indent(sb, depth)
	switch e := e.(type) {
	case *Literal:
		fmt.Fprintf(sb, "literal %#v\n", e.Value)
	case *Variable:
		fmt.Fprintf(sb, "var-ref %s #%d\n", e.Name.Lexeme, e.ExprID())
	case *Assign:
		fmt.Fprintf(sb, "assign %s #%d\n", e.Name.Lexeme, e.ExprID())
		printExpr(sb, e.Value, depth+1)
	case *Unary:
		fmt.Fprintf(sb, "unary %s\n", e.Op.Lexeme)
		printExpr(sb, e.Right, depth+1)
	case *Binary:
		fmt.Fprintf(sb, "binary %s\n", e.Op.Lexeme)
		printExpr(sb, e.Left, depth+1)
		printExpr(sb, e.Right, depth+1)
	case *Logical:
		fmt.Fprintf(sb, "logical %s\n", e.Op.Lexeme)
		printExpr(sb, e.Left, depth+1)
		printExpr(sb, e.Right, depth+1)
	case *Grouping:
		sb.WriteString("group\n")
		printExpr(sb, e.Inner, depth+1)
	case *Call:
		fmt.Fprintf(sb, "call (%d args)\n", len(e.Args))
		printExpr(sb, e.Callee, depth+1)
		for _, a := range e.Args {
			printExpr(sb, a, depth+1)
		}
	case *Get:
		fmt.Fprintf(sb, "get .%s\n", e.Name.Lexeme)
		printExpr(sb, e.Object, depth+1)
	case *Set:
		fmt.Fprintf(sb, "set .%s\n", e.Name.Lexeme)
		printExpr(sb, e.Object, depth+1)
		printExpr(sb, e.Value, depth+1)
	case *This:
		fmt.Fprintf(sb, "this #%d\n", e.ExprID())
	default:
		fmt.Fprintf(sb, "<unknown expr %T>\n", e)
	}
}
