// Package environment provides the type system, variable/function bindings,
// and lexically-scoped symbol table shared by internal/analyzer and
// internal/interpreter.
package environment

import "github.com/brennacourt/plc/internal/plcerr"

// Type is a named type in the PLC type system. Comparable and Any are
// abstract. The fixed types are package-level values created once, so at
// most one instance of each fixed type ever exists, and the analyzer compares types by pointer
// identity (nominal equality by name, enforced by construction rather than
// by a name string comparison at every use site).
type Type struct {
	Name    string
	JVMName string
	Fields  map[string]*Variable
	Methods map[FuncKey]*Function
}

// FuncKey identifies a function by name and arity: PLC allows overloading
// on arity only (no overloading on parameter types).
type FuncKey struct {
	Name  string
	Arity int
}

func newType(name, jvmName string) *Type {
	return &Type{
		Name:    name,
		JVMName: jvmName,
		Fields:  make(map[string]*Variable),
		Methods: make(map[FuncKey]*Function),
	}
}

// The fixed set of primitive types. These are created exactly once; every
// Registry starts out with these same pointers registered under their
// names, so two Types compared with == are equal iff they are the same
// named type.
var (
	Any        = newType("Any", "Object")
	Nil        = newType("Nil", "Object")
	Comparable = newType("Comparable", "Comparable")
	Boolean    = newType("Boolean", "Boolean")
	Integer    = newType("Integer", "Integer")
	Decimal    = newType("Decimal", "Double")
	Character  = newType("Character", "Character")
	String     = newType("String", "String")
)

// GetField looks up a field by name in this type's own Fields map, as
// populated by whoever built the Type; there is no field inheritance.
func (t *Type) GetField(name string) (*Variable, error) {
	if v, ok := t.Fields[name]; ok {
		return v, nil
	}
	return nil, plcerr.NewNameError("unknown field '%s' on type %s", name, t.Name)
}

// GetFunction looks up a method by name and arity on this type.
func (t *Type) GetFunction(name string, arity int) (*Function, error) {
	if f, ok := t.Methods[FuncKey{Name: name, Arity: arity}]; ok {
		return f, nil
	}
	return nil, plcerr.NewNameError("unknown method '%s/%d' on type %s", name, arity, t.Name)
}

func (t *Type) String() string { return t.Name }
