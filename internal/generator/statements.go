package generator

import (
	"fmt"

	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/plcerr"
)

// renderStatement writes one statement at indent — the level its own line
// sits at, passed through unchanged to any nested block it opens.
func (g *generator) renderStatement(stmt ast.Statement, indent int) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		if err := g.renderExpression(s.Expr); err != nil {
			return err
		}
		g.print(";")
	case *ast.Declaration:
		typeName := s.TypeName
		if typeName == "" && s.Variable != nil {
			typeName = s.Variable.Type.Name
		}
		g.print(fmt.Sprintf("%s %s", typeName, s.Name))
		if s.Value != nil {
			g.print(" = ")
			if err := g.renderExpression(s.Value); err != nil {
				return err
			}
		}
		g.print(";")
	case *ast.Assignment:
		if err := g.renderExpression(s.Receiver); err != nil {
			return err
		}
		g.print(" = ")
		if err := g.renderExpression(s.Value); err != nil {
			return err
		}
		g.print(";")
	case *ast.If:
		return g.renderIf(s, indent)
	case *ast.For:
		return g.renderFor(s, indent)
	case *ast.While:
		g.print("while (")
		if err := g.renderExpression(s.Cond); err != nil {
			return err
		}
		g.print(") ")
		return g.renderBlock(s.Body, indent)
	case *ast.Return:
		g.print("return ")
		if err := g.renderExpression(s.Value); err != nil {
			return err
		}
		g.print(";")
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "generator: unhandled statement type %T", stmt)
	}
	return nil
}

func (g *generator) renderIf(s *ast.If, indent int) error {
	g.print("if (")
	if err := g.renderExpression(s.Cond); err != nil {
		return err
	}
	g.print(") ")
	if err := g.renderBlock(s.Then, indent); err != nil {
		return err
	}
	if s.Else != nil {
		g.print(" else ")
		if err := g.renderBlock(s.Else, indent); err != nil {
			return err
		}
	}
	return nil
}

// renderFor spaces every clause and both parentheses uniformly: `for ( a ; b ; c )`.
func (g *generator) renderFor(s *ast.For, indent int) error {
	g.print("for ( ")
	if s.Init != nil {
		if err := g.renderClause(s.Init); err != nil {
			return err
		}
	}
	g.print(" ; ")
	if err := g.renderExpression(s.Cond); err != nil {
		return err
	}
	g.print(" ; ")
	if s.Incr != nil {
		if err := g.renderClause(s.Incr); err != nil {
			return err
		}
	}
	g.print(" ) ")
	return g.renderBlock(s.Body, indent)
}

func (g *generator) renderClause(c *ast.ForClause) error {
	g.print(c.Name + " = ")
	return g.renderExpression(c.Value)
}
