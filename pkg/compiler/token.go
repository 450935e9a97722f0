package compiler

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	KEYWORD     TokenType = iota // reserved word: int, if, return, ...
	IDENTIFIER                   // variable / function name
	NUMBER                       // numeric literal
	OPERATOR                     // +, -, =, >, ...
	PUNCTUATION                  // ; , ( ) { } [ ]
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	KEYWORD:     "KEYWORD",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	OPERATOR:    "OPERATOR",
	PUNCTUATION: "PUNCTUATION",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by Tokenize.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line of the first character
	Column int    // 1-based column of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-18q  line %d, col %d", t.Type, t.Lexeme, t.Line, t.Column)
}
