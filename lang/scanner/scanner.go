// Package scanner is the external collaborator that tokenizes source text
// (spec.md §1, "out of scope"). It is not part of the core the rest of this
// module respecifies, but the parser needs a token stream to consume, so a
// straightforward single-pass scanner lives here, grounded in the shape of
// the teacher's lang/scanner package (an Init/Scan state machine that reports
// errors through a callback) without its full Starlark-superset grammar.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/emberlang/ember/lang/lerr"
	"github.com/emberlang/ember/lang/token"
)

// Scan tokenizes src in full and returns the resulting token stream,
// terminated by an EOF token. Lexical errors are collected into the returned
// lerr.List rather than stopping the scan, so the parser can still see as
// much of the token stream as possible.
func Scan(src string) ([]token.Token, error) {
	s := &scanner{src: src, line: 1}
	var toks []token.Token
	for {
		tok, ok := s.next()
		if ok {
			toks = append(toks, tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, s.errs.Err()
}

type scanner struct {
	src  string
	pos  int // index of the next unread byte
	line int
	errs lerr.List
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	return c
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekNext() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.pos] != want {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) errorf(near, format string, args ...any) {
	s.errs.Add(lerr.Parse, s.line, near, fmt.Sprintf(format, args...))
}

// next scans and returns the next token. ok is false for tokens that should
// not be emitted (whitespace and comments were already skipped silently;
// this return exists so malformed input can be skipped without emitting a
// token for it).
func (s *scanner) next() (token.Token, bool) {
	s.skipIgnored()
	start := s.pos
	line := s.line
	if s.atEnd() {
		return token.Token{Kind: token.EOF, Line: line}, true
	}

	c := s.advance()
	mk := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Lexeme: s.src[start:s.pos], Line: line}
	}

	switch c {
	case '(':
		return mk(token.LPAREN), true
	case ')':
		return mk(token.RPAREN), true
	case '{':
		return mk(token.LBRACE), true
	case '}':
		return mk(token.RBRACE), true
	case ',':
		return mk(token.COMMA), true
	case '.':
		return mk(token.DOT), true
	case '-':
		return mk(token.MINUS), true
	case '+':
		return mk(token.PLUS), true
	case ';':
		return mk(token.SEMI), true
	case '*':
		return mk(token.STAR), true
	case '/':
		return mk(token.SLASH), true
	case '!':
		if s.match('=') {
			return mk(token.BANG_EQ), true
		}
		return mk(token.BANG), true
	case '=':
		if s.match('=') {
			return mk(token.EQ_EQ), true
		}
		return mk(token.EQ), true
	case '<':
		if s.match('=') {
			return mk(token.LT_EQ), true
		}
		return mk(token.LT), true
	case '>':
		if s.match('=') {
			return mk(token.GT_EQ), true
		}
		return mk(token.GT), true
	case '"':
		return s.string(start, line)
	default:
		switch {
		case isDigit(c):
			return s.number(start, line)
		case isAlpha(c):
			return s.identifier(start, line)
		default:
			s.errorf("", "Unexpected character '%c'.", c)
			return token.Token{}, false
		}
	}
}

// skipIgnored advances past whitespace and "//" line comments, tracking
// line numbers as newlines are consumed.
func (s *scanner) skipIgnored() {
	for !s.atEnd() {
		switch c := s.peek(); c {
		case ' ', '\r', '\t':
			s.pos++
		case '\n':
			s.pos++
			s.line++
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.pos++
				}
				continue
			}
			return
		default:
			return
		}
	}
}

func (s *scanner) string(start, line int) (token.Token, bool) {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.pos++
	}
	if s.atEnd() {
		s.errs.Add(lerr.Parse, line, "", "Unterminated string.")
		return token.Token{}, false
	}
	s.pos++ // closing quote
	lit := s.src[start+1 : s.pos-1]
	return token.Token{Kind: token.STRING, Lexeme: s.src[start:s.pos], Literal: lit, Line: line}, true
}

func (s *scanner) number(start, line int) (token.Token, bool) {
	for isDigit(s.peek()) {
		s.pos++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.pos++
		for isDigit(s.peek()) {
			s.pos++
		}
	}
	lexeme := s.src[start:s.pos]
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf(" at '"+lexeme+"'", "Invalid number literal.")
		return token.Token{}, false
	}
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Literal: v, Line: line}, true
}

func (s *scanner) identifier(start, line int) (token.Token, bool) {
	for isAlphaNumeric(s.peek()) {
		s.pos++
	}
	lexeme := s.src[start:s.pos]
	kind := token.IDENT
	if kw, ok := token.Keywords[lexeme]; ok {
		kind = kw
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line}, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
