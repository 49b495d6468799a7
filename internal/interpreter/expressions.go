package interpreter

import (
	"math/big"

	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/plcerr"
)

func (i *interpreter) eval(e ast.Expression) (interface{}, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		return expr.Value, nil
	case *ast.Group:
		return i.eval(expr.Inner)
	case *ast.Binary:
		return i.evalBinary(expr)
	case *ast.Access:
		return i.evalAccess(expr)
	case *ast.Call:
		return i.evalCall(expr)
	default:
		return nil, plcerr.NewRuntimeError("unhandled expression type %T", e)
	}
}

// evalBinary implements short-circuit evaluation for &&/|| (the right
// operand is never reached once the left determines the result) and
// dynamic type dispatch for every other operator.
func (i *interpreter) evalBinary(b *ast.Binary) (interface{}, error) {
	switch b.Op {
	case "&&":
		left, err := i.eval(b.Left)
		if err != nil {
			return nil, err
		}
		lb, err := requireBool(left)
		if err != nil {
			return nil, err
		}
		if !lb {
			return false, nil
		}
		right, err := i.eval(b.Right)
		if err != nil {
			return nil, err
		}
		return requireBool(right)
	case "||":
		left, err := i.eval(b.Left)
		if err != nil {
			return nil, err
		}
		lb, err := requireBool(left)
		if err != nil {
			return nil, err
		}
		if lb {
			return true, nil
		}
		right, err := i.eval(b.Right)
		if err != nil {
			return nil, err
		}
		return requireBool(right)
	}

	left, err := i.eval(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case "<", "<=", ">", ">=":
		return compareOrdered(left, right, b.Op)
	case "==":
		return valuesEqual(left, right), nil
	case "!=":
		return !valuesEqual(left, right), nil
	case "+":
		if _, ok := left.(string); ok {
			return render(left) + render(right), nil
		}
		if _, ok := right.(string); ok {
			return render(left) + render(right), nil
		}
		return i.arithmetic(b.Op, left, right)
	case "-", "*", "/":
		return i.arithmetic(b.Op, left, right)
	default:
		return nil, plcerr.NewRuntimeError("unknown binary operator '%s'", b.Op)
	}
}

func (i *interpreter) arithmetic(op string, left, right interface{}) (interface{}, error) {
	if !sameNumericKind(left, right) {
		return nil, plcerr.NewRuntimeError("operator '%s' requires operands of the same numeric kind, got %s and %s", op, describe(left), describe(right))
	}
	switch l := left.(type) {
	case *big.Int:
		r := right.(*big.Int)
		switch op {
		case "+":
			return new(big.Int).Add(l, r), nil
		case "-":
			return new(big.Int).Sub(l, r), nil
		case "*":
			return new(big.Int).Mul(l, r), nil
		case "/":
			if r.Sign() == 0 {
				return nil, plcerr.NewRuntimeError("integer division by zero")
			}
			return new(big.Int).Quo(l, r), nil
		}
	case *big.Float:
		r := right.(*big.Float)
		switch op {
		case "+":
			return new(big.Float).Add(l, r), nil
		case "-":
			return new(big.Float).Sub(l, r), nil
		case "*":
			return new(big.Float).Mul(l, r), nil
		case "/":
			if r.Sign() == 0 {
				return nil, plcerr.NewRuntimeError("decimal division by zero")
			}
			// A zero-precision destination takes the larger of the two
			// operands' precision, and big.Float's default rounding mode
			// is already round-half-to-even.
			return new(big.Float).Quo(l, r), nil
		}
	}
	return nil, plcerr.NewRuntimeError("operator '%s' is not defined for %s", op, describe(left))
}

func (i *interpreter) evalAccess(ac *ast.Access) (interface{}, error) {
	if ac.Receiver != nil {
		recv, err := i.eval(ac.Receiver)
		if err != nil {
			return nil, err
		}
		inst, ok := recv.(*Instance)
		if !ok {
			return nil, plcerr.NewRuntimeError("cannot access field '%s' on a %s value", ac.Name, describe(recv))
		}
		value, ok := inst.Fields[ac.Name]
		if !ok {
			return nil, plcerr.NewNameError("undefined field '%s' on %s", ac.Name, inst.TypeName)
		}
		return value, nil
	}
	variable, err := i.scope.LookupVariable(ac.Name)
	if err != nil {
		return nil, err
	}
	return variable.Value, nil
}

// evalCall prefers the Function the analyzer already resolved onto the
// node: when it carries an Implementation, that is called without
// re-resolving the callee. When the annotation is absent (an unannotated
// tree) or has no Implementation, it falls back to a scope lookup for a
// bare call, or the receiver Instance's own method table for a dotted call.
func (i *interpreter) evalCall(c *ast.Call) (interface{}, error) {
	args := make([]interface{}, len(c.Args))
	for idx, a := range c.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	if c.Receiver == nil {
		fn := c.Function
		if fn == nil || fn.Implementation == nil {
			// The analyzer annotates every Call with the Function it resolved
			// against its own scope tree, but that tree's bindings carry no
			// Implementation for a user-defined method — only this
			// interpreter's own scope tree, built independently by
			// defineMethod, does. A stale or impl-less annotation falls back
			// to a fresh lookup rather than calling through a nil closure.
			var err error
			fn, err = i.scope.LookupFunction(c.Name, len(args))
			if err != nil {
				return nil, err
			}
		}
		return fn.Implementation(args)
	}

	recv, err := i.eval(c.Receiver)
	if err != nil {
		return nil, err
	}
	if c.Function != nil && c.Function.Implementation != nil {
		return c.Function.Implementation(append([]interface{}{recv}, args...))
	}
	inst, ok := recv.(*Instance)
	if !ok {
		return nil, plcerr.NewRuntimeError("cannot call method '%s' on a %s value", c.Name, describe(recv))
	}
	fn, ok := inst.Methods[c.Name]
	if !ok {
		return nil, plcerr.NewNameError("undefined method '%s' on %s", c.Name, inst.TypeName)
	}
	return fn.Implementation(append([]interface{}{recv}, args...))
}
