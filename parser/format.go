package parser

import (
	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/internal/format"
)

// Format returns the SQL string representation of the query.
func Format(q *ast.Query) string {
	return format.Format(q)
}
