package environment

// Variable is a binding in a Scope, or a field slot on a Type. Value holds
// the runtime payload once the interpreter starts evaluating; it is nil
// before then and ignored entirely by the analyzer.
type Variable struct {
	Name     string
	JVMName  string
	Type     *Type
	Constant bool
	Value    interface{}
}

// NewVariable constructs a binding. JVMName is the identifier the generator
// emits for this variable: for a source-declared variable it is always
// identical to Name, but a host binding can alias it to a different target
// identifier (as the print Function that internal/stdlib defines carries
// the JVMName "System.out.println") so the generator never has to
// special-case built-ins.
func NewVariable(name, jvmName string, typ *Type, constant bool) *Variable {
	return &Variable{Name: name, JVMName: jvmName, Type: typ, Constant: constant}
}
