// Package interpreter tree-walks a parsed AST — annotated by
// internal/analyzer or not — and produces a runtime value. A return
// unwinds as an explicit result sum threaded through statement evaluation
// (see stepResult in statements.go) rather than a panic.
package interpreter

import (
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/debug"
	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/plcerr"
)

// Run evaluates src against root, the embedder's pre-populated scope, and
// returns the payload of invoking main/0.
func Run(src *ast.Source, root *environment.Scope) (interface{}, error) {
	i := &interpreter{scope: root}
	return i.runSource(src)
}

type interpreter struct {
	scope *environment.Scope
}

// withChildScope runs fn with a fresh child of the current scope active,
// and unconditionally restores the prior scope afterward — the single
// resource invariant this package must never violate, on any exit path,
// including an in-flight ReturnSignal or a propagating error.
func (i *interpreter) withChildScope(fn func() (stepResult, error)) (stepResult, error) {
	parent := i.scope
	i.scope = environment.NewScope(parent)
	defer func() { i.scope = parent }()
	return fn()
}

func (i *interpreter) runSource(src *ast.Source) (interface{}, error) {
	for _, field := range src.Fields {
		if err := i.defineField(field); err != nil {
			return nil, err
		}
	}
	for _, method := range src.Methods {
		i.defineMethod(method)
	}
	main, err := i.scope.LookupFunction("main", 0)
	if err != nil {
		return nil, plcerr.NewRuntimeError("main/0 not found")
	}
	debug.Printf("interpreter: invoking main/0")
	return main.Implementation(nil)
}

func (i *interpreter) defineField(f *ast.Field) error {
	var value interface{}
	if f.Value != nil {
		v, err := i.eval(f.Value)
		if err != nil {
			return err
		}
		value = v
	}
	variable, err := i.scope.DefineVariable(f.Name, f.Name, nil, f.Constant)
	if err != nil {
		return err
	}
	variable.Value = value
	return nil
}

// defineMethod installs a function whose implementation captures the
// scope active at definition time — a lexical closure — and, on every
// invocation: opens a fresh child of that closure scope, binds the
// arguments, runs the body, and unwraps a ReturnSignal into its payload
// (or yields nil if the body falls off the end without one).
func (i *interpreter) defineMethod(m *ast.Method) {
	closure := i.scope
	paramTypes := make([]*environment.Type, len(m.Params))
	impl := func(args []interface{}) (interface{}, error) {
		return i.invokeMethod(m, closure, args)
	}
	// A redefinition here would already have failed during field/earlier
	// method definition; Source-level declaration order guarantees no two
	// methods share a (name, arity) pair unless the source itself does,
	// which DefineFunction below reports.
	fn, err := i.scope.DefineFunction(m.Name, m.Name, paramTypes, nil, impl)
	if err != nil {
		// Deferred to invocation time: the source is broken regardless of
		// whether main/0 ever reaches this method, but a redefinition
		// cannot be detected before this call site without duplicating
		// DefineFunction's own bookkeeping.
		fn = &environment.Function{Name: m.Name, Implementation: func([]interface{}) (interface{}, error) {
			return nil, err
		}}
	}
	m.Function = fn
}

func (i *interpreter) invokeMethod(m *ast.Method, closure *environment.Scope, args []interface{}) (interface{}, error) {
	saved := i.scope
	i.scope = environment.NewScope(closure)
	defer func() { i.scope = saved }()

	for idx, name := range m.Params {
		v, err := i.scope.DefineVariable(name, name, nil, false)
		if err != nil {
			return nil, err
		}
		v.Value = args[idx]
	}
	result, err := i.execStatements(m.Body)
	if err != nil {
		return nil, err
	}
	if result.kind == returnSignal {
		return result.value, nil
	}
	return nil, nil
}
