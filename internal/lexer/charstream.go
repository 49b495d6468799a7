package lexer

// charClass reports whether a rune belongs to some character category. The
// lexer's peek/match pair takes a sequence of these: each position in a
// candidate token is tested against its own predicate, left to right, with
// no backtracking.
type charClass func(rune) bool

// charStream is a read-only cursor over the source runes. peek tests
// without consuming; match consumes only if every class in the sequence
// matches starting at the current index.
type charStream struct {
	input []rune
	index int
}

func newCharStream(source string) *charStream {
	return &charStream{input: []rune(source)}
}

func (c *charStream) has(offset int) bool {
	return c.index+offset < len(c.input)
}

func (c *charStream) at(offset int) rune {
	return c.input[c.index+offset]
}

func (c *charStream) done() bool {
	return c.index >= len(c.input)
}

// peek reports whether the runes at index, index+1, ... match classes in
// order, without advancing.
func (c *charStream) peek(classes ...charClass) bool {
	for i, class := range classes {
		if !c.has(i) || !class(c.at(i)) {
			return false
		}
	}
	return true
}

// match peeks, and on success advances past the matched runes.
func (c *charStream) match(classes ...charClass) bool {
	if !c.peek(classes...) {
		return false
	}
	c.index += len(classes)
	return true
}

// advance consumes exactly one rune unconditionally. Used once a
// classification rule has already been committed to by a caller that
// peeked ahead itself (the number and quoted-literal rules).
func (c *charStream) advance() rune {
	r := c.input[c.index]
	c.index++
	return r
}

// sliceFrom returns the runes consumed since mark, as a string.
func (c *charStream) sliceFrom(mark int) string {
	return string(c.input[mark:c.index])
}
