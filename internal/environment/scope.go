package environment

import "github.com/brennacourt/plc/internal/plcerr"

// Scope is a lexical binding frame: a node in a parent-linked tree holding
// the variables and functions visible at some point in the program. The
// analyzer walks the AST alongside a Scope tree shaped just like it (one
// child Scope per block); the interpreter walks the same shape again,
// independently, at evaluation time.
type Scope struct {
	parent    *Scope
	variables map[string]*Variable
	functions map[FuncKey]*Function
}

// NewScope creates a child of parent, or a root scope if parent is nil.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:    parent,
		variables: make(map[string]*Variable),
		functions: make(map[FuncKey]*Function),
	}
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// DefineVariable binds name in this scope only. Redefining a name already
// present in this same scope (not an ancestor — shadowing an outer binding
// is allowed) is an error.
func (s *Scope) DefineVariable(name, jvmName string, typ *Type, constant bool) (*Variable, error) {
	if _, ok := s.variables[name]; ok {
		return nil, plcerr.NewNameError("variable '%s' is already defined in this scope", name)
	}
	v := NewVariable(name, jvmName, typ, constant)
	s.variables[name] = v
	return v, nil
}

// DefineFunction binds a (name, arity) pair in this scope only.
func (s *Scope) DefineFunction(name, jvmName string, paramTypes []*Type, returnType *Type, impl func([]interface{}) (interface{}, error)) (*Function, error) {
	key := FuncKey{Name: name, Arity: len(paramTypes)}
	if _, ok := s.functions[key]; ok {
		return nil, plcerr.NewNameError("function '%s/%d' is already defined in this scope", name, len(paramTypes))
	}
	f := &Function{Name: name, JVMName: jvmName, ParamTypes: paramTypes, ReturnType: returnType, Implementation: impl}
	s.functions[key] = f
	return f, nil
}

// LookupVariable searches this scope, then each ancestor in turn.
func (s *Scope) LookupVariable(name string) (*Variable, error) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.variables[name]; ok {
			return v, nil
		}
	}
	return nil, plcerr.NewNameError("undefined variable '%s'", name)
}

// LookupFunction searches this scope, then each ancestor in turn, for a
// binding matching both name and arity.
func (s *Scope) LookupFunction(name string, arity int) (*Function, error) {
	key := FuncKey{Name: name, Arity: arity}
	for scope := s; scope != nil; scope = scope.parent {
		if f, ok := scope.functions[key]; ok {
			return f, nil
		}
	}
	return nil, plcerr.NewNameError("undefined function '%s/%d'", name, arity)
}
