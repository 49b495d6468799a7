package lexer

import (
	"testing"

	"github.com/brennacourt/plc/internal/token"
)

func mustLex(t *testing.T, source string) []token.Token {
	t.Helper()
	toks, err := Lex(source)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", source, err)
	}
	return toks
}

func wantToken(t *testing.T, got token.Token, kind token.Kind, lexeme string, start int) {
	t.Helper()
	if got.Kind != kind || got.Lexeme != lexeme || got.Start != start {
		t.Fatalf("got %s, want {%s %q @%d}", got, kind, lexeme, start)
	}
}

func TestLexBasics(t *testing.T) {
	toks := mustLex(t, "LET x = 1;")
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5: %v", len(toks), toks)
	}
	wantToken(t, toks[0], token.Identifier, "LET", 0)
	wantToken(t, toks[1], token.Identifier, "x", 4)
	wantToken(t, toks[2], token.Operator, "=", 6)
	wantToken(t, toks[3], token.Integer, "1", 8)
	wantToken(t, toks[4], token.Operator, ";", 9)
}

func TestLexNumberSigns(t *testing.T) {
	toks := mustLex(t, "-1.5")
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(toks), toks)
	}
	wantToken(t, toks[0], token.Decimal, "-1.5", 0)

	toks = mustLex(t, "- 1")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	wantToken(t, toks[0], token.Operator, "-", 0)
	wantToken(t, toks[1], token.Integer, "1", 2)
}

func TestLexTrailingDotIsUnmatched(t *testing.T) {
	toks := mustLex(t, "1.")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	wantToken(t, toks[0], token.Integer, "1", 0)
	wantToken(t, toks[1], token.Operator, ".", 1)
}

func TestLexTwoCharOperators(t *testing.T) {
	for _, lexeme := range []string{"<=", ">=", "==", "!=", "&&", "||"} {
		toks := mustLex(t, lexeme)
		if len(toks) != 1 {
			t.Fatalf("Lex(%q): got %d tokens, want 1", lexeme, len(toks))
		}
		wantToken(t, toks[0], token.Operator, lexeme, 0)
	}
}

func TestLexCharacterLiteral(t *testing.T) {
	toks := mustLex(t, `'a' '\n' '\''`)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	wantToken(t, toks[0], token.Character, `'a'`, 0)
	wantToken(t, toks[1], token.Character, `'\n'`, 4)
	wantToken(t, toks[2], token.Character, `'\''`, 9)
}

func TestLexStringLiteral(t *testing.T) {
	toks := mustLex(t, `"hello\nworld"`)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(toks), toks)
	}
	wantToken(t, toks[0], token.String, `"hello\nworld"`, 0)
}

func TestLexUnterminatedStringFails(t *testing.T) {
	_, err := Lex(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestLexLiteralNewlineInStringFails(t *testing.T) {
	_, err := Lex("\"broken\nstring\"")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestLexInvalidEscapeFails(t *testing.T) {
	_, err := Lex(`"\q"`)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

// Round-trip: re-lexing a single literal's own lexeme must reproduce the
// same token it came from.
func TestLexRoundTrip(t *testing.T) {
	cases := []string{"1", "-1.5", "'x'", `"a string"`, "identifier-with-dash"}
	for _, lexeme := range cases {
		first := mustLex(t, lexeme)
		if len(first) != 1 {
			t.Fatalf("Lex(%q): got %d tokens, want 1", lexeme, len(first))
		}
		second := mustLex(t, first[0].Lexeme)
		if len(second) != 1 || second[0].Kind != first[0].Kind || second[0].Lexeme != first[0].Lexeme {
			t.Fatalf("re-lexing %q did not round-trip: %v", first[0].Lexeme, second)
		}
	}
}

func TestLexDeterministic(t *testing.T) {
	source := "DEF main() : Integer DO RETURN 1 + 2 * 3; END"
	a := mustLex(t, source)
	b := mustLex(t, source)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic token count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic token at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
