package parser

import (
	"testing"

	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/lexer"
	"github.com/brennacourt/plc/internal/plcerr"
)

func mustParse(t *testing.T, source string) *ast.Source {
	t.Helper()
	toks, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", source, err)
	}
	src, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", source, err)
	}
	return src
}

func TestParseAssignment(t *testing.T) {
	src := mustParse(t, "DEF main() DO x = y + 1; END")
	stmts := src.Methods[0].Body
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	assign, ok := stmts[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("got %T, want *ast.Assignment", stmts[0])
	}
	receiver, ok := assign.Receiver.(*ast.Access)
	if !ok || receiver.Name != "x" {
		t.Fatalf("receiver = %v, want Access(x)", assign.Receiver)
	}
	binary, ok := assign.Value.(*ast.Binary)
	if !ok || binary.Op != "+" {
		t.Fatalf("value = %v, want Binary(+)", assign.Value)
	}
}

func TestParseFieldsMustPrecedeMethods(t *testing.T) {
	toks, err := lexer.Lex("DEF main() DO RETURN 0; END LET x: Integer = 1;")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if _, err := Parse(toks); err == nil {
		t.Fatal("expected a parse error for a field following a method")
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	src := mustParse(t, "DEF main() DO RETURN 1 + 2 * 3; END")
	ret := src.Methods[0].Body[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	if !ok || top.Op != "+" {
		t.Fatalf("top-level op = %v, want +", ret.Value)
	}
	right, ok := top.Right.(*ast.Binary)
	if !ok || right.Op != "*" {
		t.Fatalf("right operand = %v, want a * binary", top.Right)
	}
}

func TestParseIfElse(t *testing.T) {
	src := mustParse(t, `DEF main() DO IF TRUE DO RETURN 1; ELSE RETURN 0; END END`)
	ifStmt, ok := src.Methods[0].Body[0].(*ast.If)
	if !ok {
		t.Fatalf("got %T, want *ast.If", src.Methods[0].Body[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("then/else lengths = %d/%d, want 1/1", len(ifStmt.Then), len(ifStmt.Else))
	}
}

func TestParseFor(t *testing.T) {
	src := mustParse(t, `DEF main() DO FOR (i = 0; i < 10; i = i + 1) RETURN 0; END END`)
	forStmt, ok := src.Methods[0].Body[0].(*ast.For)
	if !ok {
		t.Fatalf("got %T, want *ast.For", src.Methods[0].Body[0])
	}
	if forStmt.Init == nil || forStmt.Init.Name != "i" {
		t.Fatalf("init = %v, want ForClause(i)", forStmt.Init)
	}
	if forStmt.Incr == nil || forStmt.Incr.Name != "i" {
		t.Fatalf("incr = %v, want ForClause(i)", forStmt.Incr)
	}
}

func TestParseMethodCallChain(t *testing.T) {
	src := mustParse(t, `DEF main() DO x.foo().bar(1, 2); END`)
	exprStmt, ok := src.Methods[0].Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", src.Methods[0].Body[0])
	}
	call, ok := exprStmt.Expr.(*ast.Call)
	if !ok || call.Name != "bar" || len(call.Args) != 2 {
		t.Fatalf("got %v, want Call(bar, 2 args)", exprStmt.Expr)
	}
	inner, ok := call.Receiver.(*ast.Call)
	if !ok || inner.Name != "foo" {
		t.Fatalf("receiver = %v, want Call(foo)", call.Receiver)
	}
}

func TestParseCharacterAndStringLiterals(t *testing.T) {
	src := mustParse(t, `DEF main() DO LET c = '\n'; LET s = "a\tb"; END`)
	charLit := src.Methods[0].Body[0].(*ast.Declaration).Value.(*ast.Literal)
	if charLit.Value != '\n' {
		t.Fatalf("char literal = %v, want newline rune", charLit.Value)
	}
	strLit := src.Methods[0].Body[1].(*ast.Declaration).Value.(*ast.Literal)
	if strLit.Value != "a\tb" {
		t.Fatalf("string literal = %q, want %q", strLit.Value, "a\tb")
	}
}

func TestParseErrorIndex(t *testing.T) {
	toks, err := lexer.Lex("DEF main( DO END")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	_, err = Parse(toks)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	// "DO" is taken as the parameter name, so the missing ':' is reported
	// at the END token that follows it.
	perr, ok := err.(*plcerr.ParseError)
	if !ok || perr.Index != 13 {
		t.Fatalf("got %v, want a ParseError at index 13", err)
	}
}
