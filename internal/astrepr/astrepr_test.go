package astrepr

import (
	"strings"
	"testing"

	"github.com/brennacourt/plc/internal/lexer"
	"github.com/brennacourt/plc/internal/parser"
)

func TestStringIncludesFieldAndMethodNames(t *testing.T) {
	toks, err := lexer.Lex(`LET CONST PI: Decimal = 3.14;
DEF main() : Integer DO RETURN 0; END`)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	src, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	out := String(src)
	for _, want := range []string{"PI", "main", "Field", "Method"} {
		if !strings.Contains(out, want) {
			t.Fatalf("repr dump missing %q:\n%s", want, out)
		}
	}
}
