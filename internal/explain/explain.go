// Package explain renders an AST as an indented tree, one node per line.
package explain

import (
	"fmt"
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
)

// Explain returns the tree output for a query.
func Explain(q *ast.Query) string {
	var sb strings.Builder
	Node(&sb, q, 0)
	return sb.String()
}

// Node writes the tree output for n at the given depth. Each line holds the
// node type, an optional detail and, for inner nodes, the child count.
func Node(sb *strings.Builder, n ast.Node, depth int) {
	indent := strings.Repeat(" ", depth)

	if o, ok := n.(*ast.OrderByClause); ok {
		explainOrderByClause(sb, o, indent)
		return
	}

	children := ast.Children(n)
	sb.WriteString(indent)
	sb.WriteString(n.NodeType())
	if d := detail(n); d != "" {
		sb.WriteString(" ")
		sb.WriteString(d)
	}
	if len(children) > 0 {
		fmt.Fprintf(sb, " (children %d)", len(children))
	}
	sb.WriteString("\n")

	for _, c := range children {
		Node(sb, c, depth+1)
	}
}

func detail(n ast.Node) string {
	switch n := n.(type) {
	case *ast.SelectItem:
		if n.Alias != "" {
			return "(alias " + n.Alias + ")"
		}
	case *ast.Table:
		if n.Alias != "" {
			return n.Name + " (alias " + n.Alias + ")"
		}
		return n.Name
	case *ast.JoinClause:
		return n.JoinType
	case *ast.Identifier:
		return n.Name
	case *ast.Literal:
		return n.Value
	case *ast.FunctionCall:
		return n.Name
	case *ast.Comparison:
		return n.Operator
	case *ast.LogicalOperation:
		return n.Operator
	case *ast.UnaryOperation:
		return n.Operator
	case *ast.IsNull:
		if n.Negated {
			return "NOT"
		}
	case *ast.Between:
		if n.Negated {
			return "NOT"
		}
	case *ast.InList:
		if n.Negated {
			return "NOT"
		}
	}
	return ""
}

// explainOrderByClause prints each sort key with its direction, if any.
func explainOrderByClause(sb *strings.Builder, o *ast.OrderByClause, indent string) {
	fmt.Fprintf(sb, "%sOrderByClause (children %d)\n", indent, len(o.Items))
	for i, id := range o.Items {
		fmt.Fprintf(sb, "%s Identifier %s", indent, id.Name)
		if dir := o.Direction(i); dir != "" {
			sb.WriteString(" ")
			sb.WriteString(dir)
		}
		sb.WriteString("\n")
	}
}
