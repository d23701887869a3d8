package parser

import (
	"github.com/emberlang/ember/lang/ast"
	"github.com/emberlang/ember/lang/token"
)

// expression is the entry point of the expression grammar (spec.md §4.1):
//
//	expression := assignment
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles `(call ".")? IDENT "=" assignment | logic_or`. The
// left-hand side is parsed as an ordinary expression first; if an '=' token
// follows, the already-parsed expression must be a Variable or a Get
// (spec.md §4.1, "Assignment disambiguation"), otherwise it's a syntax
// error rather than a different production, since call() already consumed
// the left-hand side greedily.
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(&p.idgen, e.Line(), e.Name, value)
		case *ast.Get:
			return ast.NewSet(&p.idgen, e.Line(), e.Object, e.Name, value)
		default:
			p.errorAt(eq, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(&p.idgen, expr.Line(), expr, op, right)
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(&p.idgen, expr.Line(), expr, op, right)
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQ, token.EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(&p.idgen, expr.Line(), expr, op, right)
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(&p.idgen, expr.Line(), expr, op, right)
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(&p.idgen, expr.Line(), expr, op, right)
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(&p.idgen, expr.Line(), expr, op, right)
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(&p.idgen, op.Line, op, right)
	}
	return p.call()
}

// call handles `primary ( "(" args? ")" | "." IDENT )*`.
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = ast.NewGet(&p.idgen, expr.Line(), expr, name)
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf(p.peek(), "Can't have more than %d arguments.", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "Expect ')' after arguments.")
	return ast.NewCall(&p.idgen, callee.Line(), callee, paren, args)
}

func (p *parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(&p.idgen, tok.Line, false)
	case p.match(token.TRUE):
		return ast.NewLiteral(&p.idgen, tok.Line, true)
	case p.match(token.NIL):
		return ast.NewLiteral(&p.idgen, tok.Line, nil)
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteral(&p.idgen, tok.Line, tok.Literal)
	case p.match(token.THIS):
		return ast.NewThis(&p.idgen, tok.Line, tok)
	case p.match(token.IDENT):
		return ast.NewVariable(&p.idgen, tok.Line, tok)
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return ast.NewGrouping(&p.idgen, tok.Line, expr)
	default:
		p.errorAt(tok, "Expect expression.")
		panic(errPanicMode)
	}
}
