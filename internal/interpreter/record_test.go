package interpreter

import (
	"math/big"
	"testing"

	"github.com/brennacourt/plc/internal/analyzer"
	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/lexer"
	"github.com/brennacourt/plc/internal/parser"
)

// getXImpl and makePointImpl are the real implementations a record-typed
// host binding would carry. registerPoint wires them onto the run-side
// scope and registry only; the analyze-side copies omit them entirely,
// mirroring the way the analyzer's own DefineFunction calls for
// user-defined methods pass a nil Implementation — only the interpreter's
// independently-built scope tree ever needs one.
func getXImpl(args []interface{}) (interface{}, error) {
	return args[0].(*Instance).Fields["x"], nil
}

func makePointImpl(args []interface{}) (interface{}, error) {
	inst := NewInstance("Point")
	inst.Fields["x"] = args[0]
	inst.Methods["getX"] = &environment.Function{
		Name: "getX", JVMName: "getX",
		ParamTypes: []*environment.Type{environment.Any}, ReturnType: environment.Integer,
		Implementation: getXImpl,
	}
	return inst, nil
}

// registerPoint builds a record type with one field and one method, the
// shape an embedder would hand RegisterType, then defines a free function
// on scope that constructs an Instance of it. When live is false, every
// Implementation is left nil, so any attempt to dispatch through it forces
// the interpreter's scope/Instance fallback rather than the fast path.
func registerPoint(registry *environment.Registry, scope *environment.Scope, live bool) *environment.Type {
	point := &environment.Type{
		Name:    "Point",
		JVMName: "Point",
		Fields: map[string]*environment.Variable{
			"x": environment.NewVariable("x", "x", environment.Integer, false),
		},
		Methods: map[environment.FuncKey]*environment.Function{},
	}
	getX := &environment.Function{
		Name: "getX", JVMName: "getX",
		ParamTypes: []*environment.Type{point},
		ReturnType: environment.Integer,
	}
	if live {
		getX.Implementation = getXImpl
	}
	point.Methods[environment.FuncKey{Name: "getX", Arity: 1}] = getX
	registry.RegisterType(point)

	var impl func([]interface{}) (interface{}, error)
	if live {
		impl = makePointImpl
	}
	scope.DefineFunction("makePoint", "makePoint", []*environment.Type{environment.Integer}, point, impl)
	return point
}

func TestInterpretRecordFieldAndMethodAccess(t *testing.T) {
	source := `DEF main() : Integer DO
		LET p: Point = makePoint(7);
		RETURN p.x + p.getX();
	END`

	toks, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	src, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	registry := environment.NewRegistry()
	analyzeScope := environment.NewScope(nil)
	registerPoint(registry, analyzeScope, false)
	if err := analyzer.Analyze(src, analyzeScope, registry); err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	runScope := environment.NewScope(nil)
	registerPoint(environment.NewRegistry(), runScope, true)
	result, err := Run(src, runScope)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	i, ok := result.(*big.Int)
	if !ok || i.Int64() != 14 {
		t.Fatalf("got %v, want 14 (7 from the field plus 7 from the method)", result)
	}
}
