// Package ast defines the tagged tree produced by internal/parser, mutated
// once by internal/analyzer to attach resolved bindings, and walked
// read-only afterward by internal/interpreter and internal/generator.
//
// Dispatch is exhaustive pattern matching (a Go type switch) over small
// marker interfaces rather than a visitor with one method per node variant:
// a type switch without a default case that returns an error is caught by
// `go vet`'s exhaustive checks in spirit, and it keeps each pass's logic in
// one function instead of scattered across N `Visit*` methods.
package ast

import (
	"math/big"

	"github.com/brennacourt/plc/internal/environment"
)

// Source is the root of every parsed program: source ::= field* method*.
type Source struct {
	Fields  []*Field
	Methods []*Method
}

// Field is a top-level `LET` declaration: field ::= 'LET' 'CONST'? ID ':' ID ('=' expr)? ';'
type Field struct {
	Name     string
	TypeName string
	Constant bool
	Value    Expression // nil if no initializer

	Variable *environment.Variable // set by the analyzer
}

// Method is a top-level `DEF`: method ::= 'DEF' ID '(' params? ')' (':' ID)? 'DO' stmt* 'END'
type Method struct {
	Name           string
	Params         []string
	ParamTypeNames []string
	ReturnTypeName string // "" if absent; analyzer treats absence as Nil

	Body []Statement

	Function *environment.Function // set by the analyzer
}

// Statement is implemented by every statement-level AST node.
type Statement interface {
	stmtNode()
}

// ExprStmt wraps an expression used as a statement. Only a Call expression
// is a legal statement expression; the analyzer rejects anything else.
type ExprStmt struct {
	Expr Expression
}

// Declaration is a local `LET`: at least one of TypeName or Value must be
// present.
type Declaration struct {
	Name     string
	TypeName string // "" if absent
	Value    Expression // nil if absent

	Variable *environment.Variable // set by the analyzer
}

// Assignment is `receiver = value;`. Receiver is always an *Access; any
// other shape is rejected by the analyzer before this node is trusted.
type Assignment struct {
	Receiver Expression
	Value    Expression
}

// If is `IF cond DO then... [ELSE else...] END`.
type If struct {
	Cond Expression
	Then []Statement
	Else []Statement // nil if no ELSE
}

// ForClause is the shared shape of a for-loop's init and increment clauses:
// `ID '=' expr`. Init defines a fresh loop variable; Incr assigns to it.
type ForClause struct {
	Name  string
	Value Expression
}

// For is `FOR '(' init? ';' cond ';' incr? ')' body... END`.
type For struct {
	Init *ForClause // nil if absent
	Cond Expression
	Incr *ForClause // nil if absent
	Body []Statement
}

// While is `WHILE cond DO body... END`.
type While struct {
	Cond Expression
	Body []Statement
}

// Return is `RETURN value;`.
type Return struct {
	Value Expression
}

func (*ExprStmt) stmtNode()    {}
func (*Declaration) stmtNode() {}
func (*Assignment) stmtNode()  {}
func (*If) stmtNode()          {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*Return) stmtNode()      {}

// Expression is implemented by every expression-level AST node. Every
// expression carries a mutable Type slot filled in by the analyzer.
type Expression interface {
	exprNode()
	Type() *environment.Type
	SetType(*environment.Type)
}

// typed is embedded by every Expression to provide the mutable type slot
// without repeating the two methods on each concrete type.
type typed struct {
	typ *environment.Type
}

func (t *typed) Type() *environment.Type      { return t.typ }
func (t *typed) SetType(ty *environment.Type) { t.typ = ty }

// Literal payload is one of: nil, bool, rune, string, *big.Int, *big.Float —
// corresponding to Nil | Bool | Char | String | Int | Decimal.
type Literal struct {
	typed
	Value interface{}
}

// Group is a parenthesized expression. Per the grammar, the parser only
// needs it to preserve precedence around a Binary; the analyzer rejects any
// other shape as redundant.
type Group struct {
	typed
	Inner Expression
}

// Binary is `left op right` for one of the fixed operator set in §4.4.
type Binary struct {
	typed
	Op    string
	Left  Expression
	Right Expression
}

// Access reads a variable (Receiver == nil) or a field of Receiver.
type Access struct {
	typed
	Receiver Expression // nil for a bare scope lookup
	Name     string

	Variable *environment.Variable // set by the analyzer
}

// Call invokes a function (Receiver == nil) or a method of Receiver.
type Call struct {
	typed
	Receiver Expression // nil for a bare scope lookup
	Name     string
	Args     []Expression

	Function *environment.Function // set by the analyzer
}

func (*Literal) exprNode() {}
func (*Group) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Access) exprNode()  {}
func (*Call) exprNode()    {}

// NewInt constructs an Int literal payload from a base-10 lexeme. Callers
// are expected to have validated the lexeme already lexed as an Integer
// token.
func NewInt(lexeme string) *big.Int {
	v := new(big.Int)
	v.SetString(lexeme, 10)
	return v
}

// NewDecimal constructs a Decimal literal payload from a base-10 lexeme.
func NewDecimal(lexeme string) (*big.Float, error) {
	v, _, err := big.ParseFloat(lexeme, 10, 64, big.ToNearestEven)
	return v, err
}
