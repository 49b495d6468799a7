// Package lexer turns PLC source text into a token sequence, per the
// classification rules tested at each position in a fixed order:
// whitespace, identifier, number, character, string, then operator as a
// catch-all.
package lexer

import (
	"github.com/brennacourt/plc/internal/debug"
	"github.com/brennacourt/plc/internal/plcerr"
	"github.com/brennacourt/plc/internal/token"
)

const escapeChars = `bnrt'"\`

// Lex tokenizes the full source string, returning the ordered token
// sequence or the first ParseError encountered.
func Lex(source string) ([]token.Token, error) {
	l := &lexer{stream: newCharStream(source)}
	var tokens []token.Token
	for {
		skipWhitespace(l.stream)
		if l.stream.done() {
			break
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		debug.Printf("lexer: %s", tok)
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

type lexer struct {
	stream *charStream
}

func skipWhitespace(s *charStream) {
	for s.match(isWhitespace) {
	}
}

func (l *lexer) next() (token.Token, error) {
	s := l.stream
	switch {
	case s.peek(isAlpha):
		return l.lexIdentifier(), nil
	case s.peek(isDigit), s.peek(isSign, isDigit):
		return l.lexNumber(), nil
	case s.peek(equals('\'')):
		return l.lexCharacter()
	case s.peek(equals('"')):
		return l.lexString()
	default:
		return l.lexOperator(), nil
	}
}

func (l *lexer) lexIdentifier() token.Token {
	s := l.stream
	mark := s.index
	s.advance()
	for s.match(isIdentifierRest) {
	}
	return token.New(token.Identifier, s.sliceFrom(mark), mark)
}

func (l *lexer) lexNumber() token.Token {
	s := l.stream
	mark := s.index
	s.match(isSign)
	for s.match(isDigit) {
	}
	kind := token.Integer
	if s.peek(equals('.'), isDigit) {
		kind = token.Decimal
		s.advance() // '.'
		for s.match(isDigit) {
		}
	}
	return token.New(kind, s.sliceFrom(mark), mark)
}

func (l *lexer) lexCharacter() (token.Token, error) {
	s := l.stream
	mark := s.index
	s.advance() // opening '\''

	switch {
	case s.match(equals('\\')):
		if !s.match(oneOf(escapeChars)) {
			return token.Token{}, plcerr.NewParseError(s.index, "invalid escape sequence in character literal")
		}
	case s.peek(equals('\'')):
		return token.Token{}, plcerr.NewParseError(s.index, "empty character literal")
	case s.done():
		return token.Token{}, plcerr.NewParseError(s.index, "unterminated character literal")
	default:
		s.advance()
	}

	if !s.match(equals('\'')) {
		return token.Token{}, plcerr.NewParseError(s.index, "unterminated character literal")
	}
	return token.New(token.Character, s.sliceFrom(mark), mark), nil
}

func (l *lexer) lexString() (token.Token, error) {
	s := l.stream
	mark := s.index
	s.advance() // opening '"'

	for {
		switch {
		case s.done():
			return token.Token{}, plcerr.NewParseError(s.index, "unterminated string literal")
		case s.match(equals('"')):
			return token.New(token.String, s.sliceFrom(mark), mark), nil
		case s.peek(equals('\n')):
			return token.Token{}, plcerr.NewParseError(s.index, "unterminated string literal (literal newline)")
		case s.match(equals('\\')):
			if !s.match(oneOf(escapeChars)) {
				return token.Token{}, plcerr.NewParseError(s.index, "invalid escape sequence in string literal")
			}
		default:
			s.advance()
		}
	}
}

func (l *lexer) lexOperator() token.Token {
	s := l.stream
	mark := s.index
	switch {
	case s.match(oneOf("<>!="), equals('=')):
	case s.match(equals('&'), equals('&')):
	case s.match(equals('|'), equals('|')):
	default:
		s.advance()
	}
	return token.New(token.Operator, s.sliceFrom(mark), mark)
}
