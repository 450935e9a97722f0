package compiler

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program\n")
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s %s\n", n.ReturnType, n.Name)
		p.indent++
		if len(n.Params) > 0 {
			p.printf("Params: %s\n", lexemes(n.Params))
		}
		if n.Body != nil {
			p.printf("Body:\n")
			p.indent++
			p.print(n.Body)
			p.indent--
		}
		p.indent--

	case *Block:
		p.printf("Block\n")
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt\n")
		p.indent++
		if n.Cond != nil {
			p.printf("Cond: %s\n", n.Cond)
		}
		if n.Then != nil {
			p.printf("Then:\n")
			p.indent++
			p.print(n.Then)
			p.indent--
		}
		if n.Else != nil {
			p.printf("Else:\n")
			p.indent++
			p.print(n.Else)
			p.indent--
		}
		p.indent--

	case *ReturnStmt:
		if n.Result == nil {
			p.printf("ReturnStmt\n")
		} else {
			p.printf("ReturnStmt %s\n", n.Result)
		}

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.X)

	case *RawExpr:
		p.printf("RawExpr %s\n", n)

	default:
		p.printf("<%T>\n", node)
	}
}

// lexemes joins the lexemes of a token span with single spaces.
func lexemes(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Lexeme
	}
	return strings.Join(parts, " ")
}
