package analyzer

import (
	"math"
	"math/big"

	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/plcerr"
)

func (a *analyzer) visitExpression(e ast.Expression) error {
	switch expr := e.(type) {
	case *ast.Literal:
		return a.visitLiteral(expr)
	case *ast.Group:
		return a.visitGroup(expr)
	case *ast.Binary:
		return a.visitBinary(expr)
	case *ast.Access:
		return a.visitAccess(expr)
	case *ast.Call:
		return a.visitCall(expr)
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "unhandled expression type %T", e)
	}
}

func (a *analyzer) visitLiteral(l *ast.Literal) error {
	switch v := l.Value.(type) {
	case nil:
		l.SetType(environment.Nil)
	case bool:
		l.SetType(environment.Boolean)
	case rune:
		l.SetType(environment.Character)
	case string:
		l.SetType(environment.String)
	case *big.Int:
		if !v.IsInt64() || v.Int64() < math.MinInt32 || v.Int64() > math.MaxInt32 {
			return plcerr.NewTypeError("integer literal %s is out of signed 32-bit range", v.String())
		}
		l.SetType(environment.Integer)
	case *big.Float:
		f64, _ := v.Float64()
		if math.IsInf(f64, 0) || math.IsNaN(f64) {
			return plcerr.NewTypeError("decimal literal %s is not representable as a finite 64-bit float", v.String())
		}
		l.SetType(environment.Decimal)
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "unrecognized literal payload %T", l.Value)
	}
	return nil
}

// visitGroup rejects a parenthesized non-Binary: the grammar admits any
// expression inside '(' ')', but a Group around anything but a Binary is
// redundant and the analyzer treats it as a semantic error rather than
// silently accepting it.
func (a *analyzer) visitGroup(g *ast.Group) error {
	if _, ok := g.Inner.(*ast.Binary); !ok {
		return plcerr.NewSemanticError(plcerr.Generic, "a parenthesized expression must wrap a binary expression")
	}
	if err := a.visitExpression(g.Inner); err != nil {
		return err
	}
	g.SetType(g.Inner.Type())
	return nil
}

func (a *analyzer) visitBinary(b *ast.Binary) error {
	if err := a.visitExpression(b.Left); err != nil {
		return err
	}
	if err := a.visitExpression(b.Right); err != nil {
		return err
	}
	lt, rt := b.Left.Type(), b.Right.Type()
	switch b.Op {
	case "&&", "||":
		if lt != environment.Boolean || rt != environment.Boolean {
			return plcerr.NewTypeError("operator '%s' requires Boolean operands", b.Op)
		}
		b.SetType(environment.Boolean)
	case "<", "<=", ">", ">=", "==", "!=":
		if err := environment.RequireAssignable(environment.Comparable, lt); err != nil {
			return plcerr.NewTypeError("operator '%s' requires Comparable operands", b.Op)
		}
		if lt != rt {
			return plcerr.NewTypeError("operator '%s' requires operands of the same type, got %s and %s", b.Op, lt.Name, rt.Name)
		}
		b.SetType(environment.Boolean)
	case "+":
		switch {
		case lt == environment.String || rt == environment.String:
			b.SetType(environment.String)
		case lt == environment.Integer || lt == environment.Decimal:
			if rt != lt {
				return plcerr.NewTypeError("operator '+' requires matching numeric operands, got %s and %s", lt.Name, rt.Name)
			}
			b.SetType(lt)
		default:
			return plcerr.NewTypeError("operator '+' requires numeric or string operands")
		}
	case "-", "*", "/":
		if lt != environment.Integer && lt != environment.Decimal {
			return plcerr.NewTypeError("operator '%s' requires numeric operands", b.Op)
		}
		if rt != lt {
			return plcerr.NewTypeError("operator '%s' requires operands of the same type, got %s and %s", b.Op, lt.Name, rt.Name)
		}
		b.SetType(lt)
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "unknown binary operator '%s'", b.Op)
	}
	return nil
}

func (a *analyzer) visitAccess(ac *ast.Access) error {
	if ac.Receiver != nil {
		if err := a.visitExpression(ac.Receiver); err != nil {
			return err
		}
		field, err := ac.Receiver.Type().GetField(ac.Name)
		if err != nil {
			return err
		}
		ac.Variable = field
		ac.SetType(field.Type)
		return nil
	}
	v, err := a.scope.LookupVariable(ac.Name)
	if err != nil {
		return err
	}
	ac.Variable = v
	ac.SetType(v.Type)
	return nil
}

// visitCall resolves a receiver-less call against the current scope, or a
// method call against the receiver's type — where parameter 0 is the
// receiver itself (self) and the written arguments correspond to
// parameters 1..n.
func (a *analyzer) visitCall(c *ast.Call) error {
	for _, arg := range c.Args {
		if err := a.visitExpression(arg); err != nil {
			return err
		}
	}
	if c.Receiver != nil {
		if err := a.visitExpression(c.Receiver); err != nil {
			return err
		}
		fn, err := c.Receiver.Type().GetFunction(c.Name, len(c.Args)+1)
		if err != nil {
			return err
		}
		if err := environment.RequireAssignable(fn.ParamTypes[0], c.Receiver.Type()); err != nil {
			return err
		}
		for i, arg := range c.Args {
			if err := environment.RequireAssignable(fn.ParamTypes[i+1], arg.Type()); err != nil {
				return err
			}
		}
		c.Function = fn
		c.SetType(fn.ReturnType)
		return nil
	}
	fn, err := a.scope.LookupFunction(c.Name, len(c.Args))
	if err != nil {
		return err
	}
	for i, arg := range c.Args {
		if err := environment.RequireAssignable(fn.ParamTypes[i], arg.Type()); err != nil {
			return err
		}
	}
	c.Function = fn
	c.SetType(fn.ReturnType)
	return nil
}
