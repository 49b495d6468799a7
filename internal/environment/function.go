package environment

// Function is a binding for a named, fixed-arity callable: either a
// user-defined DEF or a host function registered by the embedder (or the
// standard library) through Scope.DefineFunction.
//
// Implementation is nil for a user-defined DEF bound by the analyzer, where
// only the function's type matters; the interpreter binds each DEF in its
// own scope tree with a closure that runs the body. A host function's
// Implementation is called directly with already-evaluated arguments.
type Function struct {
	Name       string
	JVMName    string
	ParamTypes []*Type
	ReturnType *Type

	Implementation func(args []interface{}) (interface{}, error)
}

func (f *Function) Arity() int { return len(f.ParamTypes) }
