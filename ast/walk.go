package ast

import "fmt"

// Children returns the direct child nodes of n in source order. Absent
// optional children are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if !isNil(c) {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Query:
		add(n.Select)
		add(n.From)
		for _, j := range n.Joins {
			add(j)
		}
		add(n.Where)
		add(n.GroupBy)
		add(n.Having)
		add(n.OrderBy)
	case *SelectClause:
		for _, it := range n.Items {
			add(it)
		}
	case *SelectItem:
		add(n.Expression)
	case *FromClause:
		add(n.Table)
	case *JoinClause:
		add(n.Table)
		add(n.Condition)
	case *WhereClause:
		add(n.Condition)
	case *GroupByClause:
		for _, id := range n.Items {
			add(id)
		}
	case *HavingClause:
		add(n.Condition)
	case *OrderByClause:
		for _, id := range n.Items {
			add(id)
		}
	case *FunctionCall:
		for _, a := range n.Arguments {
			add(a)
		}
	case *Comparison:
		add(n.Left)
		add(n.Right)
	case *LogicalOperation:
		add(n.Left)
		add(n.Right)
	case *UnaryOperation:
		add(n.Operand)
	case *IsNull:
		add(n.Expression)
	case *Between:
		add(n.Expression)
		add(n.Lower)
		add(n.Upper)
	case *InList:
		add(n.Expression)
		for _, v := range n.Values {
			add(v)
		}
	case *Table, *Identifier, *Literal, *Wildcard:
	default:
		panic(fmt.Sprintf("ast: unknown node %T", n))
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for each node. If f returns false the children of that node
// are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
