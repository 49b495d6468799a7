package ast

import (
	"fmt"
	"strings"
)

// String renders a compact, parenthesized form of the tree. It exists for
// debug output and test failure messages, not for round-tripping source.

func (l *Literal) String() string {
	if l.Value == nil {
		return "NIL"
	}
	return fmt.Sprintf("%v", l.Value)
}

func (g *Group) String() string {
	return fmt.Sprintf("(%s)", g.Inner)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (a *Access) String() string {
	if a.Receiver != nil {
		return fmt.Sprintf("%s.%s", a.Receiver, a.Name)
	}
	return a.Name
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprintf("%s", a)
	}
	joined := strings.Join(args, ", ")
	if c.Receiver != nil {
		return fmt.Sprintf("%s.%s(%s)", c.Receiver, c.Name, joined)
	}
	return fmt.Sprintf("%s(%s)", c.Name, joined)
}

func (e *ExprStmt) String() string { return fmt.Sprintf("%s;", e.Expr) }

func (d *Declaration) String() string {
	switch {
	case d.TypeName != "" && d.Value != nil:
		return fmt.Sprintf("LET %s: %s = %s;", d.Name, d.TypeName, d.Value)
	case d.TypeName != "":
		return fmt.Sprintf("LET %s: %s;", d.Name, d.TypeName)
	default:
		return fmt.Sprintf("LET %s = %s;", d.Name, d.Value)
	}
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s;", a.Receiver, a.Value)
}

func (r *Return) String() string { return fmt.Sprintf("RETURN %s;", r.Value) }

func (f *Field) String() string {
	if f.Constant {
		return fmt.Sprintf("LET CONST %s: %s", f.Name, f.TypeName)
	}
	return fmt.Sprintf("LET %s: %s", f.Name, f.TypeName)
}

func (m *Method) String() string {
	return fmt.Sprintf("DEF %s(%s)", m.Name, strings.Join(m.Params, ", "))
}
