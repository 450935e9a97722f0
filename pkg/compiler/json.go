package compiler

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

// FprintTokensJSON writes a JSON representation of a token slice to w,
// one object per token.
func FprintTokensJSON(w io.Writer, tokens []Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokensJSON(tokens))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		decls := make([]interface{}, len(n.Decls))
		for i, d := range n.Decls {
			decls[i] = toJSON(d)
		}
		return map[string]interface{}{
			"type":  "Program",
			"decls": decls,
		}

	case *FuncDecl:
		m := map[string]interface{}{
			"type":       "FuncDecl",
			"returnType": n.ReturnType,
			"name":       n.Name,
			"params":     tokensJSON(n.Params),
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *Block:
		stmts := make([]interface{}, len(n.Stmts))
		for i, s := range n.Stmts {
			stmts[i] = toJSON(s)
		}
		return map[string]interface{}{
			"type":  "Block",
			"stmts": stmts,
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"x":    toJSON(n.X),
		}

	case *RawExpr:
		return map[string]interface{}{
			"type":   "RawExpr",
			"text":   n.String(),
			"tokens": tokensJSON(n.Tokens),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// tokensJSON renders a token slice as one JSON object per token.
func tokensJSON(tokens []Token) []interface{} {
	result := make([]interface{}, len(tokens))
	for i, t := range tokens {
		result[i] = map[string]interface{}{
			"kind":   t.Type.String(),
			"lexeme": t.Lexeme,
			"line":   t.Line,
			"column": t.Column,
		}
	}
	return result
}
