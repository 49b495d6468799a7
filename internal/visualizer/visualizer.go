// Package visualizer renders a parsed AST as an ASCII tree for quick
// inspection from the command line, covering every node this language's
// grammar produces: fields, methods, every statement form, and every
// expression form.
package visualizer

import (
	"fmt"
	"strings"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/brennacourt/plc/internal/ast"
)

// Draw builds a treedrawer tree rooted at src, ready to be printed with
// fmt.Println or String().
func Draw(src *ast.Source) *tree.Tree {
	root := tree.NewTree(tree.NodeString("Source"))
	for _, f := range src.Fields {
		attach(root, fieldNode(f))
	}
	for _, m := range src.Methods {
		attach(root, methodNode(m))
	}
	return root
}

// attach grafts src, together with its whole subtree, onto dest as a new
// child. treedrawer only exposes AddChild(value) — it has no "attach an
// existing subtree" operation — so the subtree is walked and rebuilt one
// node at a time on the destination side.
func attach(dest, src *tree.Tree) {
	copyChildren(src, dest.AddChild(src.Val()))
}

func copyChildren(src, dest *tree.Tree) {
	for i := 0; ; i++ {
		child, err := src.Child(i)
		if err != nil {
			return
		}
		copyChildren(child, dest.AddChild(child.Val()))
	}
}

func leaf(label string) *tree.Tree { return tree.NewTree(tree.NodeString(label)) }

func fieldNode(f *ast.Field) *tree.Tree {
	t := leaf(f.String())
	if f.Value != nil {
		attach(t, expressionNode(f.Value))
	}
	return t
}

func methodNode(m *ast.Method) *tree.Tree {
	label := m.String()
	if m.ReturnTypeName != "" {
		label += " : " + m.ReturnTypeName
	}
	t := leaf(label)
	for _, s := range m.Body {
		attach(t, statementNode(s))
	}
	return t
}

func statementNode(s ast.Statement) *tree.Tree {
	switch stmt := s.(type) {
	case *ast.ExprStmt:
		return expressionNode(stmt.Expr)
	case *ast.Declaration:
		label := fmt.Sprintf("LET %s", stmt.Name)
		if stmt.TypeName != "" {
			label += ": " + stmt.TypeName
		}
		t := leaf(label)
		if stmt.Value != nil {
			attach(t, expressionNode(stmt.Value))
		}
		return t
	case *ast.Assignment:
		t := leaf("=")
		attach(t, expressionNode(stmt.Receiver))
		attach(t, expressionNode(stmt.Value))
		return t
	case *ast.If:
		t := leaf("IF")
		attach(t, labeledBlock("cond", []ast.Statement{}, stmt.Cond))
		attach(t, labeledBlock("then", stmt.Then, nil))
		if stmt.Else != nil {
			attach(t, labeledBlock("else", stmt.Else, nil))
		}
		return t
	case *ast.While:
		t := leaf("WHILE")
		attach(t, labeledBlock("cond", nil, stmt.Cond))
		attach(t, labeledBlock("body", stmt.Body, nil))
		return t
	case *ast.For:
		t := leaf("FOR")
		if stmt.Init != nil {
			attach(t, clauseNode("init", stmt.Init))
		}
		attach(t, labeledBlock("cond", nil, stmt.Cond))
		if stmt.Incr != nil {
			attach(t, clauseNode("incr", stmt.Incr))
		}
		attach(t, labeledBlock("body", stmt.Body, nil))
		return t
	case *ast.Return:
		t := leaf("RETURN")
		attach(t, expressionNode(stmt.Value))
		return t
	default:
		return leaf(fmt.Sprintf("<unhandled %T>", s))
	}
}

// labeledBlock builds a node for a named sub-region of a statement — either
// a single expression (cond) or a list of statements (then/else/body).
func labeledBlock(label string, stmts []ast.Statement, expr ast.Expression) *tree.Tree {
	t := leaf(label)
	if expr != nil {
		attach(t, expressionNode(expr))
		return t
	}
	for _, s := range stmts {
		attach(t, statementNode(s))
	}
	return t
}

func clauseNode(label string, c *ast.ForClause) *tree.Tree {
	t := leaf(fmt.Sprintf("%s: %s =", label, c.Name))
	attach(t, expressionNode(c.Value))
	return t
}

func expressionNode(e ast.Expression) *tree.Tree {
	switch expr := e.(type) {
	case *ast.Literal:
		return leaf(expr.String())
	case *ast.Group:
		t := leaf("()")
		attach(t, expressionNode(expr.Inner))
		return t
	case *ast.Binary:
		t := leaf(expr.Op)
		attach(t, expressionNode(expr.Left))
		attach(t, expressionNode(expr.Right))
		return t
	case *ast.Access:
		t := leaf(expr.Name)
		if expr.Receiver != nil {
			attach(t, expressionNode(expr.Receiver))
		}
		return t
	case *ast.Call:
		t := leaf(expr.Name + "()")
		if expr.Receiver != nil {
			attach(t, labeledBlock("receiver", nil, expr.Receiver))
		}
		if len(expr.Args) > 0 {
			args := leaf("args")
			for _, a := range expr.Args {
				attach(args, expressionNode(a))
			}
			attach(t, args)
		}
		return t
	default:
		return leaf(fmt.Sprintf("<unhandled %T>", e))
	}
}

// Render is a convenience for callers that only want the printed form.
func Render(src *ast.Source) string {
	var b strings.Builder
	fmt.Fprint(&b, Draw(src))
	return b.String()
}
