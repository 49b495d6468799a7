package interpreter

import (
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/plcerr"
)

// signal distinguishes a ReturnSignal from ordinary statement completion.
// It is never an error: propagating it up through execStatements keeps a
// return a plain value flowing through the call stack instead of a panic
// or a sentinel threaded through every intermediate result.
type signal int

const (
	normalSignal signal = iota
	returnSignal
)

type stepResult struct {
	kind  signal
	value interface{}
}

var normalResult = stepResult{kind: normalSignal}

// execStatements runs stmts in order in the current scope, stopping and
// propagating the first ReturnSignal it sees without running the
// statements after it.
func (i *interpreter) execStatements(stmts []ast.Statement) (stepResult, error) {
	for _, stmt := range stmts {
		result, err := i.exec(stmt)
		if err != nil {
			return stepResult{}, err
		}
		if result.kind == returnSignal {
			return result, nil
		}
	}
	return normalResult, nil
}

// execBlock runs stmts in a fresh child scope — used for every statement
// that the grammar gives its own nested body (If, While, and For's
// per-iteration body).
func (i *interpreter) execBlock(stmts []ast.Statement) (stepResult, error) {
	return i.withChildScope(func() (stepResult, error) { return i.execStatements(stmts) })
}

func (i *interpreter) exec(stmt ast.Statement) (stepResult, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		if _, err := i.eval(s.Expr); err != nil {
			return stepResult{}, err
		}
		return normalResult, nil
	case *ast.Declaration:
		return i.execDeclaration(s)
	case *ast.Assignment:
		return i.execAssignment(s)
	case *ast.If:
		return i.execIf(s)
	case *ast.For:
		return i.execFor(s)
	case *ast.While:
		return i.execWhile(s)
	case *ast.Return:
		return i.execReturn(s)
	default:
		return stepResult{}, plcerr.NewRuntimeError("unhandled statement type %T", stmt)
	}
}

func (i *interpreter) execDeclaration(s *ast.Declaration) (stepResult, error) {
	var value interface{}
	if s.Value != nil {
		v, err := i.eval(s.Value)
		if err != nil {
			return stepResult{}, err
		}
		value = v
	}
	variable, err := i.scope.DefineVariable(s.Name, s.Name, nil, false)
	if err != nil {
		return stepResult{}, err
	}
	variable.Value = value
	return normalResult, nil
}

// execAssignment requires the receiver to already be an *ast.Access — the
// parser only ever produces that shape for an Assignment's receiver, and
// the analyzer rejects any other shape before this node can be trusted.
func (i *interpreter) execAssignment(s *ast.Assignment) (stepResult, error) {
	access, ok := s.Receiver.(*ast.Access)
	if !ok {
		return stepResult{}, plcerr.NewRuntimeError("assignment target is not a variable or field access")
	}
	value, err := i.eval(s.Value)
	if err != nil {
		return stepResult{}, err
	}
	if access.Receiver != nil {
		recv, err := i.eval(access.Receiver)
		if err != nil {
			return stepResult{}, err
		}
		inst, ok := recv.(*Instance)
		if !ok {
			return stepResult{}, plcerr.NewRuntimeError("cannot set field '%s' on a %s value", access.Name, describe(recv))
		}
		inst.Fields[access.Name] = value
		return normalResult, nil
	}
	variable, err := i.scope.LookupVariable(access.Name)
	if err != nil {
		return stepResult{}, err
	}
	if variable.Constant {
		return stepResult{}, plcerr.NewRuntimeError("cannot assign to constant '%s'", access.Name)
	}
	variable.Value = value
	return normalResult, nil
}

func (i *interpreter) execIf(s *ast.If) (stepResult, error) {
	cond, err := i.eval(s.Cond)
	if err != nil {
		return stepResult{}, err
	}
	b, err := requireBool(cond)
	if err != nil {
		return stepResult{}, err
	}
	if b {
		return i.execBlock(s.Then)
	}
	if s.Else != nil {
		return i.execBlock(s.Else)
	}
	return normalResult, nil
}

func (i *interpreter) execWhile(s *ast.While) (stepResult, error) {
	for {
		cond, err := i.eval(s.Cond)
		if err != nil {
			return stepResult{}, err
		}
		b, err := requireBool(cond)
		if err != nil {
			return stepResult{}, err
		}
		if !b {
			return normalResult, nil
		}
		result, err := i.execBlock(s.Body)
		if err != nil {
			return stepResult{}, err
		}
		if result.kind == returnSignal {
			return result, nil
		}
	}
}

// execFor opens one scope for the whole statement — home to the induction
// variable across every iteration, since the increment clause must be able
// to reassign it — while giving the body itself a fresh nested scope on
// each pass, so a body-local declaration never leaks into the next
// iteration.
func (i *interpreter) execFor(s *ast.For) (stepResult, error) {
	return i.withChildScope(func() (stepResult, error) {
		if s.Init != nil {
			v, err := i.eval(s.Init.Value)
			if err != nil {
				return stepResult{}, err
			}
			variable, err := i.scope.DefineVariable(s.Init.Name, s.Init.Name, nil, false)
			if err != nil {
				return stepResult{}, err
			}
			variable.Value = v
		}
		for {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return stepResult{}, err
			}
			b, err := requireBool(cond)
			if err != nil {
				return stepResult{}, err
			}
			if !b {
				return normalResult, nil
			}
			result, err := i.execBlock(s.Body)
			if err != nil {
				return stepResult{}, err
			}
			if result.kind == returnSignal {
				return result, nil
			}
			if s.Incr != nil {
				v, err := i.eval(s.Incr.Value)
				if err != nil {
					return stepResult{}, err
				}
				variable, err := i.scope.LookupVariable(s.Incr.Name)
				if err != nil {
					return stepResult{}, err
				}
				variable.Value = v
			}
		}
	})
}

func (i *interpreter) execReturn(s *ast.Return) (stepResult, error) {
	value, err := i.eval(s.Value)
	if err != nil {
		return stepResult{}, err
	}
	return stepResult{kind: returnSignal, value: value}, nil
}
