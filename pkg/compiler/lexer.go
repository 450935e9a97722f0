package compiler

import "unicode"

// keywords is the set of reserved words. Matching is by exact identity;
// any other identifier-shaped lexeme is an IDENTIFIER.
var keywords = map[string]bool{
	"int":    true,
	"char":   true,
	"float":  true,
	"double": true,
	"void":   true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"return": true,
	"printf": true,
}

// punctuation is the set of structural delimiter characters. Every other
// non-alphanumeric, non-whitespace character scans as an OPERATOR.
var punctuation = map[rune]bool{
	';': true,
	',': true,
	'(': true,
	')': true,
	'{': true,
	'}': true,
	'[': true,
	']': true,
}

// isSpace reports whether r is one of the four whitespace characters the
// scanner consumes between tokens.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based column on that line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1, col: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it, keeping the line and column
// counters in step. A newline moves to the next line and resets the
// column to 1.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isSpace(l.peek()) {
		l.advance()
	}
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if keywords[lexeme] {
		tt = KEYWORD
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Column: col}
}

// scanNumber collects a numeric literal. Dots are accepted anywhere in the
// run, so "3.14" and "1.2.3" both scan as one NUMBER token; rejecting
// malformed literals is left to later phases.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsDigit(r) && r != '.' {
			break
		}
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Column: col}
}

// scanToken classifies and consumes the token starting at the current
// position. The caller has already skipped whitespace, so at least one
// rune remains.
func (l *Lexer) scanToken() Token {
	ch := l.peek()
	if unicode.IsLetter(ch) || ch == '_' {
		return l.scanIdent()
	}
	if unicode.IsDigit(ch) {
		return l.scanNumber()
	}

	line, col := l.line, l.col
	l.advance()
	tt := OPERATOR
	if punctuation[ch] {
		tt = PUNCTUATION
	}
	return Token{Type: tt, Lexeme: string(ch), Line: line, Column: col}
}

// Tokenize scans src and returns every token in source order. It never
// fails: any character that does not start an identifier or a number is
// emitted as a single-character OPERATOR or PUNCTUATION token.
func Tokenize(src string) []Token {
	l := newLexer(src)
	var tokens []Token
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return tokens
		}
		tokens = append(tokens, l.scanToken())
	}
}
