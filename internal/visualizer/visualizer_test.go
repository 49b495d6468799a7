package visualizer

import (
	"strings"
	"testing"

	"github.com/brennacourt/plc/internal/lexer"
	"github.com/brennacourt/plc/internal/parser"
)

func mustDraw(t *testing.T, source string) string {
	t.Helper()
	toks, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	src, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return Render(src)
}

func TestRenderIncludesEveryTopLevelName(t *testing.T) {
	out := mustDraw(t, `LET CONST PI: Decimal = 3.14;
DEF square(n: Integer) : Integer DO RETURN n * n; END
DEF main() : Integer DO RETURN square(2); END`)

	for _, want := range []string{"PI", "square", "main", "*"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered tree missing %q:\n%s", want, out)
		}
	}
}

func TestRenderIfWithElse(t *testing.T) {
	out := mustDraw(t, `DEF main() : Integer DO
		IF TRUE DO RETURN 1; ELSE RETURN 0; END
	END`)
	for _, want := range []string{"IF", "then", "else"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered tree missing %q:\n%s", want, out)
		}
	}
}
