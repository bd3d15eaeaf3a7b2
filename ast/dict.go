package ast

import (
	"encoding/json"
	"fmt"
)

// Dict returns the canonical structural form of n: a map from fixed field
// names to primitive values, nested maps and slices, with "node_type"
// always present. Absent optional fields map to nil. The form is what
// downstream stages consume and what fixtures are written in.
func Dict(n Node) map[string]any {
	switch n := n.(type) {
	case *Query:
		joins := make([]any, 0, len(n.Joins))
		for _, j := range n.Joins {
			joins = append(joins, Dict(j))
		}
		return map[string]any{
			"node_type": TypeQuery,
			"select":    optional(n.Select),
			"from":      optional(n.From),
			"joins":     joins,
			"where":     optional(n.Where),
			"group_by":  optional(n.GroupBy),
			"having":    optional(n.Having),
			"order_by":  optional(n.OrderBy),
		}
	case *SelectClause:
		items := make([]any, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, Dict(it))
		}
		return map[string]any{"node_type": TypeSelectClause, "items": items}
	case *SelectItem:
		return map[string]any{
			"node_type":  TypeSelectItem,
			"expression": expr(n.Expression),
			"alias":      optionalString(n.Alias),
			"distinct":   n.Distinct,
		}
	case *FromClause:
		return map[string]any{"node_type": TypeFromClause, "table": optional(n.Table)}
	case *Table:
		return map[string]any{
			"node_type": TypeTable,
			"name":      n.Name,
			"alias":     optionalString(n.Alias),
		}
	case *JoinClause:
		return map[string]any{
			"node_type": TypeJoinClause,
			"join_type": n.JoinType,
			"table":     optional(n.Table),
			"condition": optional(n.Condition),
		}
	case *WhereClause:
		return map[string]any{"node_type": TypeWhereClause, "condition": expr(n.Condition)}
	case *GroupByClause:
		return map[string]any{"node_type": TypeGroupByClause, "items": identifiers(n.Items)}
	case *HavingClause:
		return map[string]any{"node_type": TypeHavingClause, "condition": expr(n.Condition)}
	case *OrderByClause:
		d := map[string]any{"node_type": TypeOrderByClause, "items": identifiers(n.Items)}
		if hasDirection(n) {
			dirs := make([]any, len(n.Items))
			for i := range n.Items {
				dirs[i] = n.Direction(i)
			}
			d["directions"] = dirs
		}
		return d
	case *Identifier:
		return map[string]any{"node_type": TypeIdentifier, "name": n.Name}
	case *Literal:
		return map[string]any{"node_type": TypeLiteral, "value": n.Value}
	case *Wildcard:
		return map[string]any{"node_type": TypeWildcard, "value": "*"}
	case *FunctionCall:
		return map[string]any{
			"node_type": TypeFunctionCall,
			"name":      n.Name,
			"arguments": exprs(n.Arguments),
		}
	case *Comparison:
		return map[string]any{
			"node_type": TypeComparison,
			"left":      expr(n.Left),
			"operator":  n.Operator,
			"right":     expr(n.Right),
		}
	case *LogicalOperation:
		return map[string]any{
			"node_type": TypeLogicalOperation,
			"left":      expr(n.Left),
			"operator":  n.Operator,
			"right":     expr(n.Right),
		}
	case *UnaryOperation:
		return map[string]any{
			"node_type": TypeUnaryOperation,
			"operator":  n.Operator,
			"operand":   expr(n.Operand),
		}
	case *IsNull:
		return map[string]any{
			"node_type":  TypeIsNull,
			"expression": expr(n.Expression),
			"negated":    n.Negated,
		}
	case *Between:
		return map[string]any{
			"node_type":  TypeBetween,
			"expression": expr(n.Expression),
			"lower":      expr(n.Lower),
			"upper":      expr(n.Upper),
			"negated":    n.Negated,
		}
	case *InList:
		return map[string]any{
			"node_type":  TypeInList,
			"expression": expr(n.Expression),
			"values":     exprs(n.Values),
			"negated":    n.Negated,
		}
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("ast: unknown node %T", n))
	}
}

// MarshalJSON encodes the query in its structural form.
func (q *Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(Dict(q))
}

// MarshalYAML implements yaml.Marshaler with the structural form.
func (q *Query) MarshalYAML() (any, error) {
	return Dict(q), nil
}

func hasDirection(o *OrderByClause) bool {
	for _, d := range o.Directions {
		if d != "" {
			return true
		}
	}
	return false
}

// optional converts a possibly nil pointer node to its form or nil. The
// type parameter keeps a typed nil pointer from turning into a non-nil Node.
func optional[T interface {
	*E
	Node
}, E any](n T) any {
	if n == nil {
		return nil
	}
	return Dict(n)
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func expr(e Expression) any {
	if e == nil {
		return nil
	}
	return Dict(e)
}

func exprs(es []Expression) []any {
	out := make([]any, 0, len(es))
	for _, e := range es {
		out = append(out, expr(e))
	}
	return out
}

func identifiers(ids []*Identifier) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, optional(id))
	}
	return out
}
