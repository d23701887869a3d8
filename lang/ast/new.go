package ast

import "github.com/emberlang/ember/lang/token"

// Constructors for every Expr node. They exist so that the unexported
// exprBase fields (the stable expression ID and line) can only be set
// through IDGen, never forged by hand.

func NewLiteral(g *IDGen, line int, value any) *Literal {
	return &Literal{exprBase: newExprBase(g, line), Value: value}
}

func NewVariable(g *IDGen, line int, name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(g, line), Name: name}
}

func NewAssign(g *IDGen, line int, name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(g, line), Name: name, Value: value}
}

func NewUnary(g *IDGen, line int, op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(g, line), Op: op, Right: right}
}

func NewBinary(g *IDGen, line int, left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(g, line), Left: left, Op: op, Right: right}
}

func NewLogical(g *IDGen, line int, left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(g, line), Left: left, Op: op, Right: right}
}

func NewGrouping(g *IDGen, line int, inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(g, line), Inner: inner}
}

func NewCall(g *IDGen, line int, callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(g, line), Callee: callee, Paren: paren, Args: args}
}

func NewGet(g *IDGen, line int, object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(g, line), Object: object, Name: name}
}

func NewSet(g *IDGen, line int, object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(g, line), Object: object, Name: name, Value: value}
}

func NewThis(g *IDGen, line int, keyword token.Token) *This {
	return &This{exprBase: newExprBase(g, line), Keyword: keyword}
}

// Constructors for every Stmt node, for the same reason as the Expr
// constructors above (stmtBase.line is unexported).

func NewExprStmt(line int, expr Expr) *ExprStmt {
	return &ExprStmt{stmtBase: stmtBase{line: line}, Expr: expr}
}

func NewPrint(line int, expr Expr) *Print {
	return &Print{stmtBase: stmtBase{line: line}, Expr: expr}
}

func NewVar(line int, name token.Token, initializer Expr) *Var {
	return &Var{stmtBase: stmtBase{line: line}, Name: name, Initializer: initializer}
}

func NewBlock(line int, stmts []Stmt) *Block {
	return &Block{stmtBase: stmtBase{line: line}, Stmts: stmts}
}

func NewIf(line int, cond Expr, then, els Stmt) *If {
	return &If{stmtBase: stmtBase{line: line}, Cond: cond, Then: then, Else: els}
}

func NewWhile(line int, cond Expr, body Stmt) *While {
	return &While{stmtBase: stmtBase{line: line}, Cond: cond, Body: body}
}

func NewFunction(line int, name token.Token, params []token.Token, body []Stmt) *Function {
	return &Function{stmtBase: stmtBase{line: line}, Name: name, Params: params, Body: body}
}

func NewReturn(line int, keyword token.Token, value Expr) *Return {
	return &Return{stmtBase: stmtBase{line: line}, Keyword: keyword, Value: value}
}

func NewClass(line int, name token.Token, methods []*Function) *Class {
	return &Class{stmtBase: stmtBase{line: line}, Name: name, Methods: methods}
}
