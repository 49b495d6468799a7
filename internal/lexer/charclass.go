package lexer

import "unicode"

func isWhitespace(r rune) bool { return unicode.IsSpace(r) }

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentifierRest(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '-'
}

func isSign(r rune) bool { return r == '+' || r == '-' }

func equals(want rune) charClass {
	return func(r rune) bool { return r == want }
}

func oneOf(set string) charClass {
	return func(r rune) bool {
		for _, w := range set {
			if r == w {
				return true
			}
		}
		return false
	}
}

func any(r rune) bool { return true }

func not(class charClass) charClass {
	return func(r rune) bool { return !class(r) }
}
