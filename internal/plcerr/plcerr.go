// Package plcerr defines the error taxonomy shared by every pipeline stage.
//
// Only two error types ever cross the package boundary into an embedder, as
// specified: ParseError (lexer, parser) and SemanticError (analyzer,
// interpreter). The finer-grained kinds below exist so a component can
// report precisely what went wrong while still satisfying the coarser
// contract: each is a Kind carried by a SemanticError, and every
// constructor below returns a *SemanticError.
package plcerr

import "fmt"

// ParseError is produced by the lexer or parser. Index is the 0-based
// source offset of the offending character or token.
type ParseError struct {
	Message string
	Index   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %d)", e.Message, e.Index)
}

func NewParseError(index int, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Index: index}
}

// SemanticError is produced by the analyzer or interpreter. It carries no
// source index: by the time analysis or evaluation reaches the point of
// failure, the precise token that caused it is usually several frames back.
type SemanticError struct {
	Message string
	Kind    Kind
}

func (e *SemanticError) Error() string {
	return e.Message
}

// Kind distinguishes the sub-categories of SemanticError named in the
// error-handling taxonomy, without introducing new types that an embedder
// would need to switch on.
type Kind int

const (
	Generic Kind = iota
	Type
	Name
	Arity
	Runtime
)

func NewSemanticError(kind Kind, format string, args ...interface{}) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf(format, args...), Kind: kind}
}

func NewTypeError(format string, args ...interface{}) *SemanticError {
	return NewSemanticError(Type, format, args...)
}

func NewNameError(format string, args ...interface{}) *SemanticError {
	return NewSemanticError(Name, format, args...)
}

func NewArityError(format string, args ...interface{}) *SemanticError {
	return NewSemanticError(Arity, format, args...)
}

func NewRuntimeError(format string, args ...interface{}) *SemanticError {
	return NewSemanticError(Runtime, format, args...)
}
