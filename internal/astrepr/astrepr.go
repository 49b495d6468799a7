// Package astrepr dumps a parsed AST as Go-syntax struct literals, a
// field-by-field introspection view useful for confirming exactly what a
// resolved type, variable, or parameter annotation looks like.
package astrepr

import (
	"github.com/alecthomas/repr"

	"github.com/brennacourt/plc/internal/ast"
)

// String renders src as an indented, Go-syntax struct dump. The embedded
// typed.typ slot and the analyzer's resolved Variable and Function pointers
// are included, so the dump doubles as a way to confirm that analysis
// actually annotated the tree.
func String(src *ast.Source) string {
	return repr.String(src, repr.Indent("  "))
}

// Dump writes the same rendering String produces directly to stdout.
func Dump(src *ast.Source) {
	repr.Println(src, repr.Indent("  "))
}
