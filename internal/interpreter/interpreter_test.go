package interpreter

import (
	"math/big"
	"testing"

	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/lexer"
	"github.com/brennacourt/plc/internal/parser"
)

func mustRun(t *testing.T, source string, root *environment.Scope) interface{} {
	t.Helper()
	toks, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	src, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root == nil {
		root = environment.NewScope(nil)
	}
	result, err := Run(src, root)
	if err != nil {
		t.Fatalf("Run(%q) error: %v", source, err)
	}
	return result
}

func TestInterpretReturnsMainResult(t *testing.T) {
	result := mustRun(t, "DEF main() : Integer DO RETURN 41 + 1; END", nil)
	i, ok := result.(*big.Int)
	if !ok || i.Int64() != 42 {
		t.Fatalf("got %v, want 42", result)
	}
}

func TestInterpretShortCircuitsAnd(t *testing.T) {
	invoked := false
	root := environment.NewScope(nil)
	root.DefineFunction("bomb", "bomb", nil, environment.Boolean, func(args []interface{}) (interface{}, error) {
		invoked = true
		return true, nil
	})
	result := mustRun(t, `DEF main() : Integer DO IF FALSE && bomb() DO RETURN 1; ELSE RETURN 0; END END`, root)
	if invoked {
		t.Fatal("bomb() was invoked despite a false left operand")
	}
	i := result.(*big.Int)
	if i.Int64() != 0 {
		t.Fatalf("got %v, want 0", result)
	}
}

func TestInterpretShortCircuitsOr(t *testing.T) {
	invoked := false
	root := environment.NewScope(nil)
	root.DefineFunction("bomb", "bomb", nil, environment.Boolean, func(args []interface{}) (interface{}, error) {
		invoked = true
		return false, nil
	})
	mustRun(t, `DEF main() : Integer DO IF TRUE || bomb() DO RETURN 1; ELSE RETURN 0; END END`, root)
	if invoked {
		t.Fatal("bomb() was invoked despite a true left operand")
	}
}

func TestInterpretWhileLoop(t *testing.T) {
	result := mustRun(t, `DEF main() : Integer DO
		LET i: Integer = 0;
		LET sum: Integer = 0;
		WHILE i < 5 DO
			sum = sum + i;
			i = i + 1;
		END
		RETURN sum;
	END`, nil)
	i := result.(*big.Int)
	if i.Int64() != 10 {
		t.Fatalf("got %v, want 10", result)
	}
}

func TestInterpretForLoop(t *testing.T) {
	result := mustRun(t, `DEF main() : Integer DO
		LET sum: Integer = 0;
		FOR (i = 0; i < 5; i = i + 1)
			sum = sum + i;
		END
		RETURN sum;
	END`, nil)
	i := result.(*big.Int)
	if i.Int64() != 10 {
		t.Fatalf("got %v, want 10", result)
	}
}

func TestInterpretRecursion(t *testing.T) {
	result := mustRun(t, `DEF fact(n: Integer) : Integer DO
		IF n <= 1 DO
			RETURN 1;
		END
		RETURN n * fact(n - 1);
	END
	DEF main() : Integer DO RETURN fact(5); END`, nil)
	i := result.(*big.Int)
	if i.Int64() != 120 {
		t.Fatalf("got %v, want 120", result)
	}
}

func TestInterpretIntegerDivisionByZeroFails(t *testing.T) {
	toks, _ := lexer.Lex(`DEF main() : Integer DO RETURN 1 / 0; END`)
	src, _ := parser.Parse(toks)
	_, err := Run(src, environment.NewScope(nil))
	if err == nil {
		t.Fatal("expected a RuntimeError for integer division by zero")
	}
}

func TestInterpretAssignToConstantFails(t *testing.T) {
	toks, _ := lexer.Lex(`LET CONST x: Integer = 1; DEF main() : Integer DO x = 2; RETURN x; END`)
	src, _ := parser.Parse(toks)
	_, err := Run(src, environment.NewScope(nil))
	if err == nil {
		t.Fatal("expected a RuntimeError for assigning to a constant")
	}
}

func TestInterpretMissingMainFails(t *testing.T) {
	toks, _ := lexer.Lex(`DEF foo() : Integer DO RETURN 0; END`)
	src, _ := parser.Parse(toks)
	_, err := Run(src, environment.NewScope(nil))
	if err == nil {
		t.Fatal("expected a RuntimeError for a missing main/0")
	}
}

func TestInterpretStringConcatenation(t *testing.T) {
	result := mustRun(t, `DEF main() : Integer DO
		LET greeting: String = "count: " + 3;
		IF greeting == "count: 3" DO
			RETURN 1;
		END
		RETURN 0;
	END`, nil)
	i := result.(*big.Int)
	if i.Int64() != 1 {
		t.Fatalf("got %v, want 1 (string concatenation mismatch)", result)
	}
}
