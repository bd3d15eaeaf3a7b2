package ast

import "fmt"

// Equal reports whether a and b are structurally equal: same node types,
// same field values and same child order. Identity is irrelevant.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.NodeType() != b.NodeType() {
		return false
	}
	switch x := a.(type) {
	case *Query:
		y := b.(*Query)
		if len(x.Joins) != len(y.Joins) {
			return false
		}
		for i := range x.Joins {
			if !Equal(x.Joins[i], y.Joins[i]) {
				return false
			}
		}
		return Equal(x.Select, y.Select) &&
			Equal(x.From, y.From) &&
			Equal(x.Where, y.Where) &&
			Equal(x.GroupBy, y.GroupBy) &&
			Equal(x.Having, y.Having) &&
			Equal(x.OrderBy, y.OrderBy)
	case *SelectClause:
		y := b.(*SelectClause)
		if len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *SelectItem:
		y := b.(*SelectItem)
		return x.Alias == y.Alias && x.Distinct == y.Distinct && Equal(x.Expression, y.Expression)
	case *FromClause:
		return Equal(x.Table, b.(*FromClause).Table)
	case *Table:
		y := b.(*Table)
		return x.Name == y.Name && x.Alias == y.Alias
	case *JoinClause:
		y := b.(*JoinClause)
		return x.JoinType == y.JoinType && Equal(x.Table, y.Table) && Equal(x.Condition, y.Condition)
	case *WhereClause:
		return Equal(x.Condition, b.(*WhereClause).Condition)
	case *GroupByClause:
		return equalIdentifiers(x.Items, b.(*GroupByClause).Items)
	case *HavingClause:
		return Equal(x.Condition, b.(*HavingClause).Condition)
	case *OrderByClause:
		y := b.(*OrderByClause)
		if !equalIdentifiers(x.Items, y.Items) {
			return false
		}
		for i := range x.Items {
			if x.Direction(i) != y.Direction(i) {
				return false
			}
		}
		return true
	case *Identifier:
		return x.Name == b.(*Identifier).Name
	case *Literal:
		return x.Value == b.(*Literal).Value
	case *Wildcard:
		return true
	case *FunctionCall:
		y := b.(*FunctionCall)
		return x.Name == y.Name && equalExpressions(x.Arguments, y.Arguments)
	case *Comparison:
		y := b.(*Comparison)
		return x.Operator == y.Operator && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *LogicalOperation:
		y := b.(*LogicalOperation)
		return x.Operator == y.Operator && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *UnaryOperation:
		y := b.(*UnaryOperation)
		return x.Operator == y.Operator && Equal(x.Operand, y.Operand)
	case *IsNull:
		y := b.(*IsNull)
		return x.Negated == y.Negated && Equal(x.Expression, y.Expression)
	case *Between:
		y := b.(*Between)
		return x.Negated == y.Negated &&
			Equal(x.Expression, y.Expression) &&
			Equal(x.Lower, y.Lower) &&
			Equal(x.Upper, y.Upper)
	case *InList:
		y := b.(*InList)
		return x.Negated == y.Negated &&
			Equal(x.Expression, y.Expression) &&
			equalExpressions(x.Values, y.Values)
	default:
		panic(fmt.Sprintf("ast: unknown node %T", a))
	}
}

func equalIdentifiers(a, b []*Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalExpressions(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Query:
		return n == nil
	case *SelectClause:
		return n == nil
	case *SelectItem:
		return n == nil
	case *FromClause:
		return n == nil
	case *Table:
		return n == nil
	case *JoinClause:
		return n == nil
	case *WhereClause:
		return n == nil
	case *GroupByClause:
		return n == nil
	case *HavingClause:
		return n == nil
	case *OrderByClause:
		return n == nil
	case *Identifier:
		return n == nil
	case *Literal:
		return n == nil
	case *Wildcard:
		return n == nil
	case *FunctionCall:
		return n == nil
	case *Comparison:
		return n == nil
	case *LogicalOperation:
		return n == nil
	case *UnaryOperation:
		return n == nil
	case *IsNull:
		return n == nil
	case *Between:
		return n == nil
	case *InList:
		return n == nil
	}
	return false
}
