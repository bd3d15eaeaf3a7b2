// Package format renders an AST back to canonical SQL text.
package format

import (
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
)

// Format returns the SQL string representation of the query, terminated by
// a semicolon. Lexing and parsing the result yields an equal Query.
func Format(q *ast.Query) string {
	var sb strings.Builder
	Query(&sb, q)
	sb.WriteString(";")
	return sb.String()
}

// Node formats any node on its own, without a trailing semicolon.
func Node(n ast.Node) string {
	var sb strings.Builder
	switch n := n.(type) {
	case *ast.Query:
		Query(&sb, n)
	case *ast.SelectClause:
		formatSelectClause(&sb, n)
	case *ast.SelectItem:
		formatSelectItem(&sb, n)
	case *ast.FromClause:
		formatFromClause(&sb, n)
	case *ast.Table:
		formatTable(&sb, n)
	case *ast.JoinClause:
		formatJoinClause(&sb, n)
	case *ast.WhereClause:
		formatWhereClause(&sb, n)
	case *ast.GroupByClause:
		formatGroupByClause(&sb, n)
	case *ast.HavingClause:
		formatHavingClause(&sb, n)
	case *ast.OrderByClause:
		formatOrderByClause(&sb, n)
	case ast.Expression:
		Expression(&sb, n)
	}
	return sb.String()
}
