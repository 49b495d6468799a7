// Package parser builds an AST from a token sequence by recursive descent,
// with operator precedence expressed as a chain of mutually-recursive
// layers (logical → equality → additive → multiplicative → secondary →
// primary) rather than a single precedence-climbing loop: each grammar
// layer gets its own function, matching the grammar in the component
// design one-for-one.
package parser

import (
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/debug"
	"github.com/brennacourt/plc/internal/plcerr"
	"github.com/brennacourt/plc/internal/token"
)

// Parse consumes the full token sequence and returns the parsed Source, or
// the first ParseError encountered.
func Parse(tokens []token.Token) (*ast.Source, error) {
	p := &parser{stream: &tokenStream{tokens: tokens}}
	src, err := p.parseSource()
	if err != nil {
		return nil, err
	}
	debug.Printf("parser: parsed %d field(s), %d method(s)", len(src.Fields), len(src.Methods))
	return src, nil
}

type parser struct {
	stream *tokenStream
}

func (p *parser) fail(format string, args ...interface{}) error {
	return plcerr.NewParseError(p.stream.errorIndex(), format, args...)
}

func (p *parser) expect(lexeme string) error {
	if !p.stream.match(byLexeme(lexeme)) {
		return p.fail("expected '%s'", lexeme)
	}
	return nil
}

func (p *parser) expectIdentifier() (string, error) {
	if !p.stream.peek(byKind(token.Identifier)) {
		return "", p.fail("expected an identifier")
	}
	return p.stream.advance().Lexeme, nil
}

// parseSource implements: source ::= field* method*
func (p *parser) parseSource() (*ast.Source, error) {
	src := &ast.Source{}
	for p.stream.match(byLexeme("LET")) {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		src.Fields = append(src.Fields, field)
	}
	for p.stream.match(byLexeme("DEF")) {
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		src.Methods = append(src.Methods, method)
	}
	if p.stream.peek(byLexeme("LET")) {
		return nil, p.fail("field declarations must precede all methods")
	}
	if !p.stream.done() {
		return nil, p.fail("expected a field or method declaration")
	}
	return src, nil
}

// parseField implements: field ::= 'LET' 'CONST'? ID ':' ID ('=' expr)? ';'
// ('LET' already consumed by the caller.)
func (p *parser) parseField() (*ast.Field, error) {
	constant := p.stream.match(byLexeme("CONST"))
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	typeName, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	var value ast.Expression
	if p.stream.match(byLexeme("=")) {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.Field{Name: name, TypeName: typeName, Constant: constant, Value: value}, nil
}

// parseMethod implements:
// method ::= 'DEF' ID '(' params? ')' (':' ID)? 'DO' stmt* 'END'
// ('DEF' already consumed by the caller.)
func (p *parser) parseMethod() (*ast.Method, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	params, paramTypes, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	returnTypeName := ""
	if p.stream.match(byLexeme(":")) {
		returnTypeName, err = p.expectIdentifier()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect("DO"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements("END")
	if err != nil {
		return nil, err
	}
	if err := p.expect("END"); err != nil {
		return nil, err
	}
	return &ast.Method{
		Name:           name,
		Params:         params,
		ParamTypeNames: paramTypes,
		ReturnTypeName: returnTypeName,
		Body:           body,
	}, nil
}

// parseParams implements: params ::= ID ':' ID (',' ID ':' ID)*
func (p *parser) parseParams() ([]string, []string, error) {
	if p.stream.peek(byLexeme(")")) {
		return nil, nil, nil
	}
	var names, types []string
	for {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, nil, err
		}
		if err := p.expect(":"); err != nil {
			return nil, nil, err
		}
		typeName, err := p.expectIdentifier()
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		types = append(types, typeName)
		if !p.stream.match(byLexeme(",")) {
			break
		}
	}
	return names, types, nil
}

// parseStatements parses stmt* until one of the stop lexemes is next, or
// the stream runs out (an error in every caller's context: every call site
// requires one of the stop lexemes to follow).
func (p *parser) parseStatements(stop ...string) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.stream.done() && !p.stream.peek(byLexemeOneOf(stop...)) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement implements the stmt production's seven alternatives.
func (p *parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.stream.match(byLexeme("LET")):
		return p.parseLocalDeclaration()
	case p.stream.match(byLexeme("IF")):
		return p.parseIf()
	case p.stream.match(byLexeme("FOR")):
		return p.parseFor()
	case p.stream.match(byLexeme("WHILE")):
		return p.parseWhile()
	case p.stream.match(byLexeme("RETURN")):
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLocalDeclaration implements: 'LET' ID (':' ID)? ('=' expr)? ';'
func (p *parser) parseLocalDeclaration() (ast.Statement, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	typeName := ""
	if p.stream.match(byLexeme(":")) {
		typeName, err = p.expectIdentifier()
		if err != nil {
			return nil, err
		}
	}
	var value ast.Expression
	if p.stream.match(byLexeme("=")) {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.Declaration{Name: name, TypeName: typeName, Value: value}, nil
}

// parseIf implements: 'IF' expr 'DO' stmt* ('ELSE' stmt*)? 'END'
func (p *parser) parseIf() (ast.Statement, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect("DO"); err != nil {
		return nil, err
	}
	then, err := p.parseStatements("ELSE", "END")
	if err != nil {
		return nil, err
	}
	var els []ast.Statement
	if p.stream.match(byLexeme("ELSE")) {
		els, err = p.parseStatements("END")
		if err != nil {
			return nil, err
		}
		if els == nil {
			// Distinguish a present-but-empty ELSE from no ELSE at all —
			// parseStatements returns nil for zero statements either way.
			els = []ast.Statement{}
		}
	}
	if err := p.expect("END"); err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

// parseFor implements:
// 'FOR' '(' (ID '=' expr)? ';' expr ';' (ID '=' expr)? ')' stmt* 'END'
func (p *parser) parseFor() (ast.Statement, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var init *ast.ForClause
	if !p.stream.peek(byLexeme(";")) {
		clause, err := p.parseForClause()
		if err != nil {
			return nil, err
		}
		init = clause
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	var incr *ast.ForClause
	if !p.stream.peek(byLexeme(")")) {
		clause, err := p.parseForClause()
		if err != nil {
			return nil, err
		}
		incr = clause
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements("END")
	if err != nil {
		return nil, err
	}
	if err := p.expect("END"); err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Cond: cond, Incr: incr, Body: body}, nil
}

func (p *parser) parseForClause() (*ast.ForClause, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ForClause{Name: name, Value: value}, nil
}

// parseWhile implements: 'WHILE' expr 'DO' stmt* 'END'
func (p *parser) parseWhile() (ast.Statement, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect("DO"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements("END")
	if err != nil {
		return nil, err
	}
	if err := p.expect("END"); err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseReturn implements: 'RETURN' expr ';'
func (p *parser) parseReturn() (ast.Statement, error) {
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

// parseExpressionStatement implements: expr ('=' expr)? ';'
func (p *parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.stream.match(byLexeme("=")) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.Assignment{Receiver: expr, Value: value}, nil
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *parser) parseExpression() (ast.Expression, error) {
	return p.parseLogical()
}

// parseLogical implements: logical ::= equality (('&&'|'||') equality)*
func (p *parser) parseLogical() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.stream.peek(byLexemeOneOf("&&", "||")) {
		op := p.stream.advance().Lexeme
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseEquality implements:
// equality ::= additive (('<'|'<='|'>'|'>='|'=='|'!=') additive)*
func (p *parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.stream.peek(byLexemeOneOf("<", "<=", ">", ">=", "==", "!=")) {
		op := p.stream.advance().Lexeme
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseAdditive implements: additive ::= multiplicative (('+'|'-') multiplicative)*
func (p *parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.stream.peek(byLexemeOneOf("+", "-")) {
		op := p.stream.advance().Lexeme
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseMultiplicative implements: multiplicative ::= secondary (('*'|'/') secondary)*
func (p *parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseSecondary()
	if err != nil {
		return nil, err
	}
	for p.stream.peek(byLexemeOneOf("*", "/")) {
		op := p.stream.advance().Lexeme
		right, err := p.parseSecondary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseSecondary implements: secondary ::= primary ('.' ID ('(' args? ')')?)*
func (p *parser) parseSecondary() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.stream.match(byLexeme(".")) {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if p.stream.match(byLexeme("(")) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			left = &ast.Call{Receiver: left, Name: name, Args: args}
		} else {
			left = &ast.Access{Receiver: left, Name: name}
		}
	}
	return left, nil
}

// parsePrimary implements the primary production, decoding literal
// lexemes along the way.
func (p *parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.stream.match(byLexeme("NIL")):
		return &ast.Literal{Value: nil}, nil
	case p.stream.match(byLexeme("TRUE")):
		return &ast.Literal{Value: true}, nil
	case p.stream.match(byLexeme("FALSE")):
		return &ast.Literal{Value: false}, nil
	case p.stream.peek(byKind(token.Integer)):
		t := p.stream.advance()
		return &ast.Literal{Value: ast.NewInt(t.Lexeme)}, nil
	case p.stream.peek(byKind(token.Decimal)):
		t := p.stream.advance()
		v, err := ast.NewDecimal(t.Lexeme)
		if err != nil {
			return nil, p.fail("malformed decimal literal '%s'", t.Lexeme)
		}
		return &ast.Literal{Value: v}, nil
	case p.stream.peek(byKind(token.Character)):
		t := p.stream.advance()
		decoded := decodeEscapes(stripQuotes(t.Lexeme))
		runes := []rune(decoded)
		if len(runes) != 1 {
			return nil, p.fail("character literal '%s' does not decode to exactly one character", t.Lexeme)
		}
		return &ast.Literal{Value: runes[0]}, nil
	case p.stream.peek(byKind(token.String)):
		t := p.stream.advance()
		return &ast.Literal{Value: decodeEscapes(stripQuotes(t.Lexeme))}, nil
	case p.stream.match(byLexeme("(")):
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner}, nil
	case p.stream.peek(byKind(token.Identifier)):
		name := p.stream.advance().Lexeme
		if p.stream.match(byLexeme("(")) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return &ast.Call{Name: name, Args: args}, nil
		}
		return &ast.Access{Name: name}, nil
	default:
		return nil, p.fail("expected an expression")
	}
}

// parseArgs implements: args ::= expr (',' expr)*
func (p *parser) parseArgs() ([]ast.Expression, error) {
	if p.stream.peek(byLexeme(")")) {
		return nil, nil
	}
	var args []ast.Expression
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.stream.match(byLexeme(",")) {
			break
		}
	}
	return args, nil
}
