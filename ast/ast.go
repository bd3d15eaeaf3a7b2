// Package ast defines the abstract syntax tree for the supported SQL subset.
package ast

// Node is the interface implemented by all AST nodes. The set of
// implementations is closed: only types in this package satisfy it.
type Node interface {
	NodeType() string
	node()
}

// Clause is the interface implemented by the clause nodes of a Query.
type Clause interface {
	Node
	clauseNode()
}

// Expression is the interface implemented by nodes that may appear inside
// select items and conditions.
type Expression interface {
	Node
	expressionNode()
}

// Node type tags, as they appear under "node_type" in the structural form.
const (
	TypeQuery            = "Query"
	TypeSelectClause     = "SelectClause"
	TypeSelectItem       = "SelectItem"
	TypeFromClause       = "FromClause"
	TypeTable            = "Table"
	TypeJoinClause       = "JoinClause"
	TypeWhereClause      = "WhereClause"
	TypeGroupByClause    = "GroupByClause"
	TypeHavingClause     = "HavingClause"
	TypeOrderByClause    = "OrderByClause"
	TypeIdentifier       = "Identifier"
	TypeLiteral          = "Literal"
	TypeWildcard         = "Wildcard"
	TypeFunctionCall     = "FunctionCall"
	TypeComparison       = "Comparison"
	TypeLogicalOperation = "LogicalOperation"
	TypeUnaryOperation   = "UnaryOperation"
	TypeIsNull           = "IsNull"
	TypeBetween          = "Between"
	TypeInList           = "InList"
)

// -----------------------------------------------------------------------------
// Query and clauses

// Query is the root of a parsed statement.
type Query struct {
	Select  *SelectClause
	From    *FromClause
	Joins   []*JoinClause
	Where   *WhereClause
	GroupBy *GroupByClause
	Having  *HavingClause
	OrderBy *OrderByClause
}

func (q *Query) NodeType() string { return TypeQuery }
func (q *Query) node()            {}

// SelectClause holds the select list in source order.
type SelectClause struct {
	Items []*SelectItem
}

func (s *SelectClause) NodeType() string { return TypeSelectClause }
func (s *SelectClause) node()            {}
func (s *SelectClause) clauseNode()      {}

// SelectItem is one entry of the select list.
type SelectItem struct {
	Expression Expression // *Identifier, *FunctionCall or *Wildcard
	Alias      string
	// Distinct is reserved; the grammar never sets it.
	Distinct bool
}

func (s *SelectItem) NodeType() string { return TypeSelectItem }
func (s *SelectItem) node()            {}

// FromClause names the single base table.
type FromClause struct {
	Table *Table
}

func (f *FromClause) NodeType() string { return TypeFromClause }
func (f *FromClause) node()            {}
func (f *FromClause) clauseNode()      {}

// Table is a table reference with an optional alias.
type Table struct {
	Name  string
	Alias string
}

func (t *Table) NodeType() string { return TypeTable }
func (t *Table) node()            {}

// JoinClause represents JOIN table ON condition.
type JoinClause struct {
	JoinType  string // upper-cased keyword, e.g. "INNER JOIN"
	Table     *Table
	Condition *Comparison
}

func (j *JoinClause) NodeType() string { return TypeJoinClause }
func (j *JoinClause) node()            {}
func (j *JoinClause) clauseNode()      {}

// WhereClause wraps the filter condition.
type WhereClause struct {
	Condition Expression
}

func (w *WhereClause) NodeType() string { return TypeWhereClause }
func (w *WhereClause) node()            {}
func (w *WhereClause) clauseNode()      {}

// GroupByClause lists the grouping columns.
type GroupByClause struct {
	Items []*Identifier
}

func (g *GroupByClause) NodeType() string { return TypeGroupByClause }
func (g *GroupByClause) node()            {}
func (g *GroupByClause) clauseNode()      {}

// HavingClause wraps the group filter condition.
type HavingClause struct {
	Condition Expression
}

func (h *HavingClause) NodeType() string { return TypeHavingClause }
func (h *HavingClause) node()            {}
func (h *HavingClause) clauseNode()      {}

// OrderByClause lists the sort columns. Directions is parallel to Items and
// holds "ASC", "DESC" or "" when the query gave none.
type OrderByClause struct {
	Items      []*Identifier
	Directions []string
}

func (o *OrderByClause) NodeType() string { return TypeOrderByClause }
func (o *OrderByClause) node()            {}
func (o *OrderByClause) clauseNode()      {}

// Direction returns the sort direction of item i.
func (o *OrderByClause) Direction(i int) string {
	if i < len(o.Directions) {
		return o.Directions[i]
	}
	return ""
}

// -----------------------------------------------------------------------------
// Expressions

// Identifier is a column or table name, possibly dotted ("a.id").
type Identifier struct {
	Name string
}

func (i *Identifier) NodeType() string { return TypeIdentifier }
func (i *Identifier) node()            {}
func (i *Identifier) expressionNode()  {}

// Literal holds the raw token text of a literal value. String literals keep
// their quotes.
type Literal struct {
	Value string
}

func (l *Literal) NodeType() string { return TypeLiteral }
func (l *Literal) node()            {}
func (l *Literal) expressionNode()  {}

// Wildcard is the bare * of SELECT *.
type Wildcard struct{}

func (w *Wildcard) NodeType() string { return TypeWildcard }
func (w *Wildcard) node()            {}
func (w *Wildcard) expressionNode()  {}

// FunctionCall is an aggregate call. A * argument is stored as Literal("*").
type FunctionCall struct {
	Name      string
	Arguments []Expression
}

func (f *FunctionCall) NodeType() string { return TypeFunctionCall }
func (f *FunctionCall) node()            {}
func (f *FunctionCall) expressionNode()  {}

// Comparison is left operator right, e.g. a.id = b.id or name LIKE 'x%'.
type Comparison struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (c *Comparison) NodeType() string { return TypeComparison }
func (c *Comparison) node()            {}
func (c *Comparison) expressionNode()  {}

// LogicalOperation joins two conditions with AND or OR. Chains fold to the
// left with no precedence between AND and OR. Right may be nil.
type LogicalOperation struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (l *LogicalOperation) NodeType() string { return TypeLogicalOperation }
func (l *LogicalOperation) node()            {}
func (l *LogicalOperation) expressionNode()  {}

// UnaryOperation is a prefix operator applied to a condition (NOT).
type UnaryOperation struct {
	Operator string
	Operand  Expression
}

func (u *UnaryOperation) NodeType() string { return TypeUnaryOperation }
func (u *UnaryOperation) node()            {}
func (u *UnaryOperation) expressionNode()  {}

// IsNull is expr IS [NOT] NULL.
type IsNull struct {
	Expression Expression
	Negated    bool
}

func (n *IsNull) NodeType() string { return TypeIsNull }
func (n *IsNull) node()            {}
func (n *IsNull) expressionNode()  {}

// Between is expr [NOT] BETWEEN lower AND upper.
type Between struct {
	Expression Expression
	Lower      Expression
	Upper      Expression
	Negated    bool
}

func (b *Between) NodeType() string { return TypeBetween }
func (b *Between) node()            {}
func (b *Between) expressionNode()  {}

// InList is expr [NOT] IN (v1, v2, ...).
type InList struct {
	Expression Expression
	Values     []Expression
	Negated    bool
}

func (i *InList) NodeType() string { return TypeInList }
func (i *InList) node()            {}
func (i *InList) expressionNode()  {}
