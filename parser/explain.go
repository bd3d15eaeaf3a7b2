package parser

import (
	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/internal/explain"
)

// Explain returns the indented tree output for a query.
func Explain(q *ast.Query) string {
	return explain.Explain(q)
}
