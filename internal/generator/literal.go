package generator

import (
	"math/big"
	"strings"

	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/plcerr"
)

// renderLiteral formats a literal payload using the target language's own
// literal syntax, not the source's — booleans and nil render lowercase, the
// way the rest of a generated class body reads.
func (g *generator) renderLiteral(l *ast.Literal) error {
	switch v := l.Value.(type) {
	case nil:
		g.print("null")
	case bool:
		if v {
			g.print("true")
		} else {
			g.print("false")
		}
	case rune:
		g.print("'" + escapeRune(v) + "'")
	case string:
		g.print(`"` + escapeString(v) + `"`)
	case *big.Int:
		g.print(v.String())
	case *big.Float:
		g.print(v.Text('g', -1))
	default:
		return plcerr.NewSemanticError(plcerr.Generic, "generator: unrecognized literal payload %T", l.Value)
	}
	return nil
}

func escapeRune(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	default:
		return string(r)
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
