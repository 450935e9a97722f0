package compiler

import "fmt"

// Node is implemented by every AST node. A tree has exactly one root
// (the Program); nodes are built once by the parser and read-only after.
type Node interface {
	String() string
}

// Decl is implemented by every top-level declaration node.
type Decl interface {
	Node
	declNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the tree: the ordered list of top-level
// declarations recovered from one translation unit.
type Program struct {
	Decls []Decl
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(decls=%d)", len(p.Decls))
}

//  Declaration nodes

// FuncDecl represents  type name(params) { body }
//
//	int main() { ... }
//	^^^ ^^^^
//	|   Name
//	ReturnType
//
// Params holds the raw token run between the parentheses; parameter
// structure is not analyzed. Body is nil when the declaration carries
// no brace-enclosed body.
type FuncDecl struct {
	ReturnType string
	Name       string
	Params     []Token
	Body       *Block
}

func (*FuncDecl) declNode() {}
func (f *FuncDecl) String() string {
	body := "none"
	if f.Body != nil {
		body = f.Body.String()
	}
	return fmt.Sprintf("FuncDecl(%s %s, params=%d, body=%s)", f.ReturnType, f.Name, len(f.Params), body)
}

//  Statement nodes

// Block represents { statement; ... }
type Block struct {
	Stmts []Stmt
}

func (*Block) stmtNode() {}
func (b *Block) String() string {
	return fmt.Sprintf("Block(len=%d)", len(b.Stmts))
}

// IfStmt represents if (cond) { then } [else { else }]
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block // nil when no else branch
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	cond, then := "none", "none"
	if i.Cond != nil {
		cond = i.Cond.String()
	}
	if i.Then != nil {
		then = i.Then.String()
	}
	if i.Else != nil {
		return fmt.Sprintf("IfStmt(if %s then %s else %s)", cond, then, i.Else)
	}
	return fmt.Sprintf("IfStmt(if %s then %s)", cond, then)
}

// ReturnStmt represents  return expr;  or a bare  return;
type ReturnStmt struct {
	Result Expr // nil for a bare return
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	if r.Result == nil {
		return "ReturnStmt"
	}
	return fmt.Sprintf("ReturnStmt(%s)", r.Result)
}

// ExprStmt represents an expression evaluated as a statement
// (e.g. a printf call).
type ExprStmt struct {
	X Expr
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.X)
}

//  Expression nodes

// RawExpr is the span of tokens that makes up one expression, recorded
// verbatim. Expressions are not given internal structure here; the span
// is preserved so later phases can analyze it.
//
//	if (x > 5) { ... }
//	    ^^^^^  RawExpr{Tokens: [x > 5]}
type RawExpr struct {
	Tokens []Token
}

func (*RawExpr) exprNode() {}
func (r *RawExpr) String() string {
	return lexemes(r.Tokens)
}
