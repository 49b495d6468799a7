package interpreter

import (
	"fmt"
	"math/big"

	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/plcerr"
)

// Instance is the runtime payload for a value of a non-primitive,
// embedder-registered type: a record of named field values plus the
// methods it answers to. Its shape is checked against the declared Type
// only by the analyzer — the interpreter trusts every Instance it is
// handed and resolves members by name alone, falling back to this table
// only when a Call node carries no resolved Function with an
// Implementation.
type Instance struct {
	TypeName string
	Fields   map[string]interface{}
	Methods  map[string]*environment.Function
}

// NewInstance constructs an empty record of the given type name, ready for
// its fields and methods to be populated by the embedder or by the
// standard library.
func NewInstance(typeName string) *Instance {
	return &Instance{
		TypeName: typeName,
		Fields:   make(map[string]interface{}),
		Methods:  make(map[string]*environment.Function),
	}
}

func requireBool(v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, plcerr.NewRuntimeError("expected a Boolean, found %s", describe(v))
	}
	return b, nil
}

func sameNumericKind(l, r interface{}) bool {
	switch l.(type) {
	case *big.Int:
		_, ok := r.(*big.Int)
		return ok
	case *big.Float:
		_, ok := r.(*big.Float)
		return ok
	default:
		return false
	}
}

// render produces the textual form of a value used for string
// concatenation (`+` where either operand is a string); it is not used by
// the generator, which renders literals from the AST node directly rather
// than from a runtime value.
func render(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case rune:
		return string(x)
	case string:
		return x
	case *big.Int:
		return x.String()
	case *big.Float:
		return x.Text('g', -1)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// valuesEqual implements structural equality: nil equals nil, and equality
// otherwise respects numeric representation exactly rather than comparing
// across kinds (an Integer is never equal to a Decimal, even at the same
// mathematical value).
func valuesEqual(l, r interface{}) bool {
	if l == nil || r == nil {
		return l == nil && r == nil
	}
	switch lv := l.(type) {
	case *big.Int:
		rv, ok := r.(*big.Int)
		return ok && lv.Cmp(rv) == 0
	case *big.Float:
		rv, ok := r.(*big.Float)
		return ok && lv.Cmp(rv) == 0
	default:
		return l == r
	}
}

// compareOrdered implements <, <=, >, >= over the four Comparable kinds via
// their natural ordering.
func compareOrdered(l, r interface{}, op string) (bool, error) {
	var cmp int
	switch lv := l.(type) {
	case *big.Int:
		rv, ok := r.(*big.Int)
		if !ok {
			return false, plcerr.NewRuntimeError("cannot compare %s to %s", describe(l), describe(r))
		}
		cmp = lv.Cmp(rv)
	case *big.Float:
		rv, ok := r.(*big.Float)
		if !ok {
			return false, plcerr.NewRuntimeError("cannot compare %s to %s", describe(l), describe(r))
		}
		cmp = lv.Cmp(rv)
	case rune:
		rv, ok := r.(rune)
		if !ok {
			return false, plcerr.NewRuntimeError("cannot compare %s to %s", describe(l), describe(r))
		}
		cmp = int(lv) - int(rv)
	case string:
		rv, ok := r.(string)
		if !ok {
			return false, plcerr.NewRuntimeError("cannot compare %s to %s", describe(l), describe(r))
		}
		switch {
		case lv < rv:
			cmp = -1
		case lv > rv:
			cmp = 1
		}
	default:
		return false, plcerr.NewRuntimeError("%s is not Comparable", describe(l))
	}
	switch op {
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	default:
		return false, plcerr.NewRuntimeError("unknown comparison operator '%s'", op)
	}
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "Nil"
	case bool:
		return "Boolean"
	case rune:
		return "Character"
	case string:
		return "String"
	case *big.Int:
		return "Integer"
	case *big.Float:
		return "Decimal"
	case *Instance:
		return "Instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}
