package compiler

import "fmt"

// tokenNone marks the absence of a token: peek returns it once the
// cursor has run past the end of input. Tokenize never produces it.
const tokenNone TokenType = -1

// Parser consumes the flat token slice produced by Tokenize and builds a
// best-effort AST. It never stops on malformed input: each problem is
// recorded as a Diagnostic and parsing resumes at the next safe point.
//
// Grammar (declarations plus a small statement subset; expression
// internals stay raw token spans):
//
//	program     = declaration*
//	declaration = KEYWORD IDENTIFIER "(" span ")" [ block ]
//	block       = "{" statement* "}"
//	statement   = ifStmt | returnStmt | exprStmt
//	ifStmt      = "if" "(" span ")" block [ "else" block ]
//	returnStmt  = "return" [ span ] ";"
//	exprStmt    = span [ ";" ]
//
// Loop forms (while, for, do) are outside the grammar: they are
// recognized only far enough to skip them whole, producing a
// diagnostic instead of a node.
type Parser struct {
	tokens []Token
	pos    int
	diags  []Diagnostic
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the AST for tokens. It always returns a Program: on
// malformed input the tree holds whatever could be recovered and the
// diagnostics report, in source order, everything that went wrong.
func Parse(tokens []Token) (*Program, []Diagnostic) {
	p := NewParser(tokens)
	return p.parseProgram(), p.diags
}

// more reports whether any tokens remain at the cursor.
func (p *Parser) more() bool {
	return p.pos < len(p.tokens)
}

// peek returns the current token without consuming it, or a token of
// type tokenNone past the end of input.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: tokenNone}
	}
	return p.tokens[p.pos]
}

// peekNext returns the token after the current one without consuming
// anything, or a tokenNone token when none exists.
func (p *Parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: tokenNone}
	}
	return p.tokens[p.pos+1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// mark returns a checkpoint of the cursor; reset rewinds to one. A
// production that gives up restores its starting position, leaving
// recovery to the caller.
func (p *Parser) mark() int {
	return p.pos
}

func (p *Parser) reset(mark int) {
	p.pos = mark
}

// atPunct reports whether the current token is the punctuation s.
func (p *Parser) atPunct(s string) bool {
	t := p.peek()
	return t.Type == PUNCTUATION && t.Lexeme == s
}

// atKeyword reports whether the current token is the keyword s.
func (p *Parser) atKeyword(s string) bool {
	t := p.peek()
	return t.Type == KEYWORD && t.Lexeme == s
}

// atDoLoop reports whether a do loop starts at the cursor. "do" is not
// in the keyword set and scans as an IDENTIFIER, so it only reads as a
// loop when a braced body follows; a plain identifier named do keeps
// working in expressions.
func (p *Parser) atDoLoop() bool {
	t := p.peek()
	if t.Type != IDENTIFIER || t.Lexeme != "do" {
		return false
	}
	n := p.peekNext()
	return n.Type == PUNCTUATION && n.Lexeme == "{"
}

// unexpected records an UnexpectedToken diagnostic at the cursor.
// When input has run out the diagnostic is anchored at the last token.
func (p *Parser) unexpected(expected string) {
	line, col := 1, 1
	found := "end of input"
	msg := fmt.Sprintf("expected %q, got end of input", expected)
	if p.more() {
		t := p.peek()
		line, col = t.Line, t.Column
		found = t.Lexeme
		msg = fmt.Sprintf("expected %q, got %q", expected, t.Lexeme)
	} else if n := len(p.tokens); n > 0 {
		line, col = p.tokens[n-1].Line, p.tokens[n-1].Column
	}
	p.diags = append(p.diags, Diagnostic{
		Kind:     UnexpectedToken,
		Line:     line,
		Column:   col,
		Expected: expected,
		Found:    found,
		Msg:      msg,
	})
}

// unsupported records an UnsupportedConstruct diagnostic anchored at tok.
func (p *Parser) unsupported(tok Token, what string) {
	p.diags = append(p.diags, Diagnostic{
		Kind:   UnsupportedConstruct,
		Line:   tok.Line,
		Column: tok.Column,
		Found:  tok.Lexeme,
		Msg:    "unsupported construct: " + what,
	})
}

// expectPunct consumes the punctuation s if it is next and reports true;
// otherwise it records an UnexpectedToken diagnostic and reports false
// without consuming anything.
func (p *Parser) expectPunct(s string) bool {
	if p.atPunct(s) {
		p.advance()
		return true
	}
	p.unexpected(s)
	return false
}

// parseProgram is the top-level loop. Every iteration consumes at least
// one token: a declaration that fails to parse triggers synchronization,
// so arbitrary input cannot stall the parser.
func (p *Parser) parseProgram() *Program {
	prog := &Program{}
	for p.more() {
		if d := p.parseDeclaration(); d != nil {
			prog.Decls = append(prog.Decls, d)
			continue
		}
		p.syncDecl()
	}
	return prog
}

// syncDecl skips ahead to a safe point to resume top-level parsing:
// just past the next ';', or just before the next keyword that could
// start a declaration. At least one token is always consumed.
func (p *Parser) syncDecl() {
	p.advance()
	for p.more() {
		if p.atPunct(";") {
			p.advance()
			return
		}
		if p.peek().Type == KEYWORD {
			return
		}
		p.advance()
	}
}

// parseDeclaration parses one top-level declaration. On failure it
// restores the cursor to where it started, records a diagnostic, and
// returns nil so the caller can synchronize.
func (p *Parser) parseDeclaration() Decl {
	start := p.mark()

	tok := p.peek()
	if tok.Type != KEYWORD {
		p.unsupported(tok, fmt.Sprintf("top-level %q is not a declaration", tok.Lexeme))
		return nil
	}
	retType := p.advance()

	if p.peek().Type != IDENTIFIER {
		p.unexpected("identifier")
		p.reset(start)
		return nil
	}
	name := p.advance()

	if !p.atPunct("(") {
		p.unsupported(retType, "variable declaration")
		p.reset(start)
		return nil
	}
	p.advance() // (

	params := p.parenSpan()
	p.expectPunct(")")

	fn := &FuncDecl{ReturnType: retType.Lexeme, Name: name.Lexeme, Params: params}
	if p.atPunct("{") {
		p.advance()
		fn.Body = p.parseBlock()
	}
	return fn
}

// parenSpan collects the tokens up to the matching ')' of an already
// consumed '('. Nested parentheses are tracked so inner pairs stay part
// of the span. The closing ')' is left at the cursor; if input runs out
// first, the caller reports the missing ')'.
func (p *Parser) parenSpan() []Token {
	depth := 0
	var span []Token
	for p.more() {
		t := p.peek()
		if t.Type == PUNCTUATION {
			switch t.Lexeme {
			case "(":
				depth++
			case ")":
				if depth == 0 {
					return span
				}
				depth--
			}
		}
		span = append(span, p.advance())
	}
	return span
}

// parseBlock parses statements until the closing '}'. The opening '{'
// has already been consumed. A missing '}' at end of input is reported
// and the partial block returned.
func (p *Parser) parseBlock() *Block {
	blk := &Block{}
	for p.more() && !p.atPunct("}") {
		if s := p.parseStatement(); s != nil {
			blk.Stmts = append(blk.Stmts, s)
		}
	}
	p.expectPunct("}")
	return blk
}

// parseStatement parses one statement inside a block. It returns nil
// when the input yields no statement (a bare ';' or a skipped loop),
// consuming at least one token either way.
func (p *Parser) parseStatement() Stmt {
	switch {
	case p.atKeyword("if"):
		return p.parseIfStmt()
	case p.atKeyword("return"):
		return p.parseReturnStmt()
	case p.atKeyword("while"), p.atKeyword("for"), p.atDoLoop():
		return p.parseLoopStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseIfStmt parses  if (cond) { ... } [else { ... }]
// The 'if' keyword is still at the cursor. Missing pieces are reported
// and the best-effort statement is returned anyway.
func (p *Parser) parseIfStmt() Stmt {
	p.advance() // if
	n := &IfStmt{}

	if p.expectPunct("(") {
		n.Cond = spanExpr(p.parenSpan())
		p.expectPunct(")")
	}
	if p.expectPunct("{") {
		n.Then = p.parseBlock()
	}
	if p.atKeyword("else") {
		p.advance()
		if p.expectPunct("{") {
			n.Else = p.parseBlock()
		}
	}
	return n
}

// parseReturnStmt parses  return [expr] ;
// The 'return' keyword is still at the cursor.
func (p *Parser) parseReturnStmt() Stmt {
	p.advance() // return
	n := &ReturnStmt{Result: spanExpr(p.stmtSpan())}
	p.expectPunct(";")
	return n
}

// parseLoopStmt skips a loop statement whole: while/for with a
// parenthesized header and an optional braced body, or do with a braced
// body and a trailing while header. The construct is reported once,
// anchored at its first token, and the cursor lands just past it so the
// enclosing block keeps its brace balance and the statements after the
// loop stay where they belong.
func (p *Parser) parseLoopStmt() Stmt {
	kw := p.advance()
	p.unsupported(kw, kw.Lexeme+" loop")

	if kw.Lexeme == "do" {
		p.skipBraces()
		if p.atKeyword("while") {
			p.advance()
			p.skipParens()
		}
		if p.atPunct(";") {
			p.advance()
		}
		return nil
	}

	p.skipParens()
	if p.atPunct("{") {
		p.skipBraces()
	} else if p.atPunct(";") {
		p.advance()
	}
	return nil
}

// skipParens consumes a balanced '( ... )' group when one starts at the
// cursor; a missing ')' at end of input is reported.
func (p *Parser) skipParens() {
	if !p.atPunct("(") {
		return
	}
	p.advance()
	p.parenSpan()
	p.expectPunct(")")
}

// skipBraces consumes a balanced '{ ... }' group when one starts at the
// cursor; a missing '}' at end of input is reported.
func (p *Parser) skipBraces() {
	if !p.atPunct("{") {
		return
	}
	p.advance()
	depth := 0
	for p.more() {
		if p.atPunct("{") {
			depth++
		} else if p.atPunct("}") {
			if depth == 0 {
				p.advance()
				return
			}
			depth--
		}
		p.advance()
	}
	p.unexpected("}")
}

// parseExprStmt collects a run of expression tokens up to the statement
// boundary. The trailing ';' is consumed when present; a bare ';'
// produces no statement.
func (p *Parser) parseExprStmt() Stmt {
	span := p.stmtSpan()
	if p.atPunct(";") {
		p.advance()
	}
	if len(span) == 0 {
		return nil
	}
	return &ExprStmt{X: &RawExpr{Tokens: span}}
}

// stmtSpan collects tokens up to the next statement boundary: a ';' or
// '}' (left unconsumed) or the end of input.
func (p *Parser) stmtSpan() []Token {
	var span []Token
	for p.more() {
		if p.atPunct(";") || p.atPunct("}") {
			break
		}
		span = append(span, p.advance())
	}
	return span
}

// spanExpr wraps a token span as a RawExpr, or nil for an empty span.
func spanExpr(tokens []Token) Expr {
	if len(tokens) == 0 {
		return nil
	}
	return &RawExpr{Tokens: tokens}
}
