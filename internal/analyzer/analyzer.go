// Package analyzer walks a parsed AST once, attaching resolved types and
// variable/function bindings to every node that needs one, and rejecting
// any program that is not well-typed.
package analyzer

import (
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/debug"
	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/plcerr"
)

// Analyze annotates src in place against root, the embedder's pre-populated
// scope, and registry, the set of known types (the fixed primitives plus
// anything the embedder registered). It returns the first SemanticError
// encountered, or nil if src is well-typed.
func Analyze(src *ast.Source, root *environment.Scope, registry *environment.Registry) error {
	a := &analyzer{scope: root, registry: registry}
	return a.visitSource(src)
}

type analyzer struct {
	scope    *environment.Scope
	registry *environment.Registry
}

// withChildScope runs fn with a.scope replaced by a fresh child, restoring
// the prior scope on every exit path — including an error return, which a
// plain save/restore pair around each call site would be easy to get wrong
// in the presence of early returns.
func (a *analyzer) withChildScope(fn func() error) error {
	parent := a.scope
	a.scope = environment.NewScope(parent)
	defer func() { a.scope = parent }()
	return fn()
}

func (a *analyzer) resolveTypes(names []string) ([]*environment.Type, error) {
	types := make([]*environment.Type, len(names))
	for i, name := range names {
		t, err := a.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

// visitSource visits every field, then every method, in declaration order,
// and finally requires a zero-arity main returning Integer.
func (a *analyzer) visitSource(src *ast.Source) error {
	for _, field := range src.Fields {
		if err := a.visitField(field); err != nil {
			return err
		}
	}
	for _, method := range src.Methods {
		if err := a.visitMethod(method); err != nil {
			return err
		}
	}
	main, err := a.scope.LookupFunction("main", 0)
	if err != nil {
		return plcerr.NewSemanticError(plcerr.Name, "main/0 not found")
	}
	if main.ReturnType != environment.Integer {
		return plcerr.NewTypeError("main/0 must return Integer")
	}
	debug.Printf("analyzer: accepted source with %d field(s), %d method(s)", len(src.Fields), len(src.Methods))
	return nil
}

// visitField resolves the declared type, visits the initializer (if any)
// before the field is in scope so it cannot refer to itself, then defines
// the field's variable.
func (a *analyzer) visitField(f *ast.Field) error {
	typ, err := a.registry.Lookup(f.TypeName)
	if err != nil {
		return err
	}
	if f.Value != nil {
		if err := a.visitExpression(f.Value); err != nil {
			return err
		}
		if err := environment.RequireAssignable(typ, f.Value.Type()); err != nil {
			return err
		}
	} else if f.Constant {
		return plcerr.NewSemanticError(plcerr.Generic, "constant field '%s' requires an initializer", f.Name)
	}
	v, err := a.scope.DefineVariable(f.Name, f.Name, typ, f.Constant)
	if err != nil {
		return err
	}
	f.Variable = v
	return nil
}

// visitMethod defines the function before visiting its body, so a method
// may call itself recursively, then visits the body in a child scope
// seeded with the parameters and a pseudo-variable carrying the declared
// return type for Return statements to check against.
func (a *analyzer) visitMethod(m *ast.Method) error {
	paramTypes, err := a.resolveTypes(m.ParamTypeNames)
	if err != nil {
		return err
	}
	returnType := environment.Nil
	if m.ReturnTypeName != "" {
		returnType, err = a.registry.Lookup(m.ReturnTypeName)
		if err != nil {
			return err
		}
	}
	fn, err := a.scope.DefineFunction(m.Name, m.Name, paramTypes, returnType, nil)
	if err != nil {
		return err
	}
	m.Function = fn

	return a.withChildScope(func() error {
		for i, name := range m.Params {
			if _, err := a.scope.DefineVariable(name, name, paramTypes[i], false); err != nil {
				return err
			}
		}
		if _, err := a.scope.DefineVariable("returnType", "", returnType, true); err != nil {
			return err
		}
		return a.visitStatements(m.Body)
	})
}
