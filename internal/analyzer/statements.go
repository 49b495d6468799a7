package analyzer

import (
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/plcerr"
)

func (a *analyzer) visitStatements(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := a.visitStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *analyzer) visitStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return a.visitExprStmt(s)
	case *ast.Declaration:
		return a.visitDeclaration(s)
	case *ast.Assignment:
		return a.visitAssignment(s)
	case *ast.If:
		return a.visitIf(s)
	case *ast.For:
		return a.visitFor(s)
	case *ast.While:
		return a.visitWhile(s)
	case *ast.Return:
		return a.visitReturn(s)
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "unhandled statement type %T", stmt)
	}
}

// visitExprStmt rejects every expression-statement shape except a call:
// evaluating a bare literal or access for its side effects alone is not
// permitted.
func (a *analyzer) visitExprStmt(s *ast.ExprStmt) error {
	if _, ok := s.Expr.(*ast.Call); !ok {
		return plcerr.NewSemanticError(plcerr.Generic, "only a function call is permitted as a statement expression")
	}
	return a.visitExpression(s.Expr)
}

func (a *analyzer) visitDeclaration(s *ast.Declaration) error {
	if s.TypeName == "" && s.Value == nil {
		return plcerr.NewSemanticError(plcerr.Generic, "declaration of '%s' requires a type, an initializer, or both", s.Name)
	}
	var declared *environment.Type
	var err error
	if s.TypeName != "" {
		declared, err = a.registry.Lookup(s.TypeName)
		if err != nil {
			return err
		}
	}
	if s.Value != nil {
		if err := a.visitExpression(s.Value); err != nil {
			return err
		}
		if declared != nil {
			if err := environment.RequireAssignable(declared, s.Value.Type()); err != nil {
				return err
			}
		} else {
			declared = s.Value.Type()
		}
	}
	v, err := a.scope.DefineVariable(s.Name, s.Name, declared, false)
	if err != nil {
		return err
	}
	s.Variable = v
	return nil
}

func (a *analyzer) visitAssignment(s *ast.Assignment) error {
	access, ok := s.Receiver.(*ast.Access)
	if !ok {
		return plcerr.NewSemanticError(plcerr.Generic, "assignment target must be a variable or field access")
	}
	if err := a.visitExpression(access); err != nil {
		return err
	}
	if err := a.visitExpression(s.Value); err != nil {
		return err
	}
	return environment.RequireAssignable(access.Type(), s.Value.Type())
}

func (a *analyzer) visitIf(s *ast.If) error {
	if err := a.visitExpression(s.Cond); err != nil {
		return err
	}
	if s.Cond.Type() != environment.Boolean {
		return plcerr.NewTypeError("if condition must be Boolean")
	}
	if len(s.Then) == 0 {
		return plcerr.NewSemanticError(plcerr.Generic, "if-branch must not be empty")
	}
	if err := a.withChildScope(func() error { return a.visitStatements(s.Then) }); err != nil {
		return err
	}
	if s.Else != nil {
		if err := a.withChildScope(func() error { return a.visitStatements(s.Else) }); err != nil {
			return err
		}
	}
	return nil
}

func (a *analyzer) visitWhile(s *ast.While) error {
	if err := a.visitExpression(s.Cond); err != nil {
		return err
	}
	if s.Cond.Type() != environment.Boolean {
		return plcerr.NewTypeError("while condition must be Boolean")
	}
	return a.withChildScope(func() error { return a.visitStatements(s.Body) })
}

// visitFor runs entirely inside one fresh child scope: the init clause (if
// present) defines the loop variable there, so it is visible to the
// condition, the increment, and the body alike.
func (a *analyzer) visitFor(s *ast.For) error {
	return a.withChildScope(func() error {
		var loopVar *environment.Variable
		if s.Init != nil {
			if err := a.visitExpression(s.Init.Value); err != nil {
				return err
			}
			v, err := a.scope.DefineVariable(s.Init.Name, s.Init.Name, s.Init.Value.Type(), false)
			if err != nil {
				return err
			}
			loopVar = v
		}
		if err := a.visitExpression(s.Cond); err != nil {
			return err
		}
		if s.Cond.Type() != environment.Boolean {
			return plcerr.NewTypeError("for condition must be Boolean")
		}
		if s.Incr != nil {
			if err := a.visitExpression(s.Incr.Value); err != nil {
				return err
			}
			if loopVar != nil && s.Incr.Value.Type() != loopVar.Type {
				return plcerr.NewTypeError("for increment must match the loop variable's type")
			}
		}
		if len(s.Body) == 0 {
			return plcerr.NewSemanticError(plcerr.Generic, "for-loop body must not be empty")
		}
		return a.visitStatements(s.Body)
	})
}

func (a *analyzer) visitReturn(s *ast.Return) error {
	if err := a.visitExpression(s.Value); err != nil {
		return err
	}
	rt, err := a.scope.LookupVariable("returnType")
	if err != nil {
		return plcerr.NewSemanticError(plcerr.Generic, "return statement outside of a method body")
	}
	return environment.RequireAssignable(rt.Type, s.Value.Type())
}
