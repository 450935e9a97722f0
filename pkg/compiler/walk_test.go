package compiler

import (
	"fmt"
	"reflect"
	"testing"
)

func TestWalkOrder(t *testing.T) {
	prog, diags := Parse(Tokenize("int main() { if (x) { return 0; } y; }"))
	if len(diags) != 0 {
		t.Fatalf("Parse() diagnostics = %v, want none", diags)
	}

	var order []string
	Walk(prog, func(n Node) bool {
		order = append(order, fmt.Sprintf("%T", n))
		return true
	})

	expected := []string{
		"*compiler.Program",
		"*compiler.FuncDecl",
		"*compiler.Block",
		"*compiler.IfStmt",
		"*compiler.RawExpr", // the condition
		"*compiler.Block",   // the then branch
		"*compiler.ReturnStmt",
		"*compiler.RawExpr", // the return value
		"*compiler.ExprStmt",
		"*compiler.RawExpr",
	}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("Walk() visited %v, want %v", order, expected)
	}
}

func TestWalkPrune(t *testing.T) {
	prog, diags := Parse(Tokenize("int main() { if (x) { return 0; } y; }"))
	if len(diags) != 0 {
		t.Fatalf("Parse() diagnostics = %v, want none", diags)
	}

	var order []string
	Walk(prog, func(n Node) bool {
		order = append(order, fmt.Sprintf("%T", n))
		_, isIf := n.(*IfStmt)
		return !isIf
	})

	expected := []string{
		"*compiler.Program",
		"*compiler.FuncDecl",
		"*compiler.Block",
		"*compiler.IfStmt", // visited, children skipped
		"*compiler.ExprStmt",
		"*compiler.RawExpr",
	}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("Walk() visited %v, want %v", order, expected)
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	if called {
		t.Errorf("Walk(nil) visited a node")
	}
}

func TestInspect(t *testing.T) {
	prog, _ := Parse(Tokenize("int a() { } int b() { } int c() { }"))

	decls := 0
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(*FuncDecl); ok {
			decls++
		}
		return true
	})
	if decls != 3 {
		t.Errorf("Inspect() saw %d FuncDecls, want 3", decls)
	}
}
