package parser

import "github.com/brennacourt/plc/internal/token"

// tokenPattern reports whether a single token matches some criterion. This
// is the token-level analogue of the lexer's rune-level charClass: peek and
// match take a sequence of these and test them against consecutive tokens.
type tokenPattern func(token.Token) bool

func byLexeme(want string) tokenPattern {
	return func(t token.Token) bool { return t.Lexeme == want }
}

func byKind(k token.Kind) tokenPattern {
	return func(t token.Token) bool { return t.Kind == k }
}

func byLexemeOneOf(options ...string) tokenPattern {
	return func(t token.Token) bool {
		for _, o := range options {
			if t.Lexeme == o {
				return true
			}
		}
		return false
	}
}

type tokenStream struct {
	tokens []token.Token
	index  int
}

func (s *tokenStream) done() bool {
	return s.index >= len(s.tokens)
}

func (s *tokenStream) has(offset int) bool {
	return s.index+offset < len(s.tokens)
}

func (s *tokenStream) peek(patterns ...tokenPattern) bool {
	for i, p := range patterns {
		if !s.has(i) || !p(s.tokens[s.index+i]) {
			return false
		}
	}
	return true
}

func (s *tokenStream) match(patterns ...tokenPattern) bool {
	if !s.peek(patterns...) {
		return false
	}
	s.index += len(patterns)
	return true
}

func (s *tokenStream) advance() token.Token {
	t := s.tokens[s.index]
	s.index++
	return t
}

// errorIndex implements the index rule from the grammar: the offending
// token's start if the stream has not run out, otherwise one past the end
// of the last token.
func (s *tokenStream) errorIndex() int {
	if s.has(0) {
		return s.tokens[s.index].Start
	}
	if len(s.tokens) == 0 {
		return 0
	}
	last := s.tokens[len(s.tokens)-1]
	return last.Start + len(last.Lexeme)
}
