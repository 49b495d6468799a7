// Package stdlib installs the host bindings a running program needs to
// reach the outside world. The core lexer/parser/analyzer/interpreter
// pipeline never touches an I/O stream directly; cmd/plcc calls Register on
// the root scope before handing it to internal/analyzer or
// internal/interpreter, so every program gets the same fixed set of
// built-ins regardless of embedder.
package stdlib

import (
	"fmt"
	"math/big"

	"github.com/brennacourt/plc/internal/environment"
)

// Register binds every host function this embedder exposes into root.
func Register(root *environment.Scope) error {
	_, err := root.DefineFunction(
		"print",
		"System.out.println",
		[]*environment.Type{environment.Any},
		environment.Nil,
		printImpl,
	)
	return err
}

func printImpl(args []interface{}) (interface{}, error) {
	fmt.Println(render(args[0]))
	return nil, nil
}

// render stringifies a value for print. Characters, strings and numbers
// read as the interpreter's own concatenation renders them; nil and the
// booleans are spelled as the source keywords NIL, TRUE and FALSE, where
// the interpreter's concatenation writes nil, true and false.
func render(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NIL"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case rune:
		return string(val)
	case string:
		return val
	case *big.Int:
		return val.String()
	case *big.Float:
		return val.Text('g', -1)
	default:
		return fmt.Sprintf("%v", val)
	}
}
