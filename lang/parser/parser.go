// Package parser implements the recursive-descent, Pratt-style parser that
// turns a token stream into the program AST (spec.md §4.1). It is the core
// of this module: the only input it consumes is the scanner's token stream,
// and its only output is an ordered list of top-level statement nodes (or a
// descriptive syntax error).
package parser

import (
	"errors"
	"fmt"

	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/lerr"
	"github.com/emberlang/ember/lang/token"
)

const maxArgs = 255

// Parse consumes the full token stream (terminated by an EOF token) and
// returns the program's top-level statements. The returned error, if
// non-nil, is a lerr.List of one or more *lerr.Error values with
// Kind == lerr.Parse.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := &parser{tokens: tokens}
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, p.errs.Err()
}

type parser struct {
	tokens []token.Token
	pos    int
	errs   lerr.List
	idgen  ast.IDGen
}

// errPanicMode unwinds the recursive descent to the nearest declaration()
// call on a syntax error, which then synchronizes and resumes. Grounded on
// the teacher's identical panic/recover strategy in lang/parser/parser.go.
var errPanicMode = errors.New("parser: panic mode")

func (p *parser) peek() token.Token     { return p.tokens[p.pos] }
func (p *parser) previous() token.Token { return p.tokens[p.pos-1] }
func (p *parser) isAtEnd() bool         { return p.peek().Kind == token.EOF }

func (p *parser) check(k token.Kind) bool {
	return !p.isAtEnd() && p.peek().Kind == k
}

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have kind k, advancing past it. On
// mismatch it records a syntax error and unwinds via errPanicMode.
func (p *parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAt(p.peek(), msg)
	panic(errPanicMode)
}

func (p *parser) errorAt(tok token.Token, msg string) {
	p.errs.Add(lerr.Parse, tok.Line, tok.Near(), msg)
}

func (p *parser) errorf(tok token.Token, format string, args ...any) {
	p.errorAt(tok, fmt.Sprintf(format, args...))
}

// synchronize discards tokens until it reaches a statement boundary, per
// spec.md §4.1's error recovery rule: it first skips the token the error was
// reported at (so recovery always makes progress), then stops after a
// consumed ';' or at a token that starts a new statement.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMI {
			return
		}
		if p.peek().Kind.IsStmtStart() {
			return
		}
		p.advance()
	}
}

// ===== declarations & statements =====

func (p *parser) declaration() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()

	switch {
	case p.match(token.VAR):
		return p.varDecl()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.CLASS):
		return p.classDecl()
	default:
		return p.statement()
	}
}

func (p *parser) varDecl() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENT, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after variable declaration.")
	return ast.NewVar(line, name, init)
}

func (p *parser) function(kind string) *ast.Function {
	line := p.peek().Line
	name := p.consume(token.IDENT, fmt.Sprintf("Expect %s name.", kind))
	p.consume(token.LPAREN, fmt.Sprintf("Expect '(' after %s name.", kind))

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorf(p.peek(), "Can't have more than %d parameters.", maxArgs)
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")
	p.consume(token.LBRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return ast.NewFunction(line, name, params, body)
}

func (p *parser) classDecl() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENT, "Expect class name.")
	p.consume(token.LBRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")
	return ast.NewClass(line, name, methods)
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.LBRACE):
		line := p.previous().Line
		return ast.NewBlock(line, p.block())
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *parser) printStmt() ast.Stmt {
	line := p.previous().Line
	v := p.expression()
	p.consume(token.SEMI, "Expect ';' after value.")
	return ast.NewPrint(line, v)
}

func (p *parser) exprStmt() ast.Stmt {
	line := p.peek().Line
	e := p.expression()
	p.consume(token.SEMI, "Expect ';' after expression.")
	return ast.NewExprStmt(line, e)
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
	return stmts
}

func (p *parser) ifStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return ast.NewIf(line, cond, then, els)
}

func (p *parser) whileStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhile(line, cond, body)
}

// forStmt desugars the C-style for loop into a Block wrapping a While, as
// specified in spec.md §4.1: no dedicated For node ever reaches the
// resolver or evaluator.
func (p *parser) forStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LPAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMI):
		// no initializer
	case p.check(token.VAR):
		p.advance()
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after loop condition.")

	var post ast.Expr
	if !p.check(token.RPAREN) {
		post = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if post != nil {
		body = ast.NewBlock(line, []ast.Stmt{body, ast.NewExprStmt(line, post)})
	}
	if cond == nil {
		cond = ast.NewLiteral(&p.idgen, line, true)
	}
	body = ast.NewWhile(line, cond, body)

	if init != nil {
		body = ast.NewBlock(line, []ast.Stmt{init, body})
	}
	return body
}

func (p *parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.consume(token.SEMI, "Expect ';' after return value.")
	return ast.NewReturn(keyword.Line, keyword, value)
}
