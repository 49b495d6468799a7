package generator

import (
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/plcerr"
)

func (g *generator) renderExpression(e ast.Expression) error {
	switch expr := e.(type) {
	case *ast.Literal:
		return g.renderLiteral(expr)
	case *ast.Group:
		g.print("(")
		if err := g.renderExpression(expr.Inner); err != nil {
			return err
		}
		g.print(")")
	case *ast.Binary:
		if err := g.renderExpression(expr.Left); err != nil {
			return err
		}
		g.print(" " + expr.Op + " ")
		if err := g.renderExpression(expr.Right); err != nil {
			return err
		}
	case *ast.Access:
		return g.renderAccess(expr)
	case *ast.Call:
		return g.renderCall(expr)
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "generator: unhandled expression type %T", e)
	}
	return nil
}

// renderAccess uses the analyzer-resolved Variable's jvm_name when present —
// the one place a bound identifier may render under a different name than
// its source spelling — and falls back to the source name otherwise, so an
// unannotated tree still generates (with identifiers spelled as written).
func (g *generator) renderAccess(ac *ast.Access) error {
	name := ac.Name
	if ac.Variable != nil {
		name = ac.Variable.JVMName
	}
	if ac.Receiver == nil {
		g.print(name)
		return nil
	}
	if err := g.renderExpression(ac.Receiver); err != nil {
		return err
	}
	g.print("." + name)
	return nil
}

func (g *generator) renderCall(c *ast.Call) error {
	name := c.Name
	if c.Function != nil {
		name = c.Function.JVMName
	}
	if c.Receiver != nil {
		if err := g.renderExpression(c.Receiver); err != nil {
			return err
		}
		g.print("." + name)
	} else {
		g.print(name)
	}
	g.print("(")
	for idx, arg := range c.Args {
		if idx > 0 {
			g.print(", ")
		}
		if err := g.renderExpression(arg); err != nil {
			return err
		}
	}
	g.print(")")
	return nil
}
