package format

import (
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
)

// Query formats a query without the terminating semicolon.
func Query(sb *strings.Builder, q *ast.Query) {
	if q == nil {
		return
	}

	formatSelectClause(sb, q.Select)

	if q.From != nil {
		sb.WriteString(" ")
		formatFromClause(sb, q.From)
	}

	for _, j := range q.Joins {
		sb.WriteString(" ")
		formatJoinClause(sb, j)
	}

	if q.Where != nil {
		sb.WriteString(" ")
		formatWhereClause(sb, q.Where)
	}

	if q.GroupBy != nil {
		sb.WriteString(" ")
		formatGroupByClause(sb, q.GroupBy)
	}

	if q.Having != nil {
		sb.WriteString(" ")
		formatHavingClause(sb, q.Having)
	}

	if q.OrderBy != nil {
		sb.WriteString(" ")
		formatOrderByClause(sb, q.OrderBy)
	}
}

func formatSelectClause(sb *strings.Builder, s *ast.SelectClause) {
	sb.WriteString("SELECT ")
	if s == nil {
		return
	}
	for i, item := range s.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatSelectItem(sb, item)
	}
}

func formatSelectItem(sb *strings.Builder, item *ast.SelectItem) {
	Expression(sb, item.Expression)
	if item.Alias != "" {
		sb.WriteString(" AS ")
		formatName(sb, item.Alias)
	}
}

func formatFromClause(sb *strings.Builder, f *ast.FromClause) {
	sb.WriteString("FROM ")
	formatTable(sb, f.Table)
}

// formatTable formats a table reference with its alias.
func formatTable(sb *strings.Builder, t *ast.Table) {
	if t == nil {
		return
	}
	formatDotted(sb, t.Name)
	if t.Alias != "" {
		sb.WriteString(" ")
		formatName(sb, t.Alias)
	}
}

func formatJoinClause(sb *strings.Builder, j *ast.JoinClause) {
	sb.WriteString(j.JoinType)
	sb.WriteString(" ")
	formatTable(sb, j.Table)
	sb.WriteString(" ON ")
	if j.Condition != nil {
		Expression(sb, j.Condition)
	}
}

func formatWhereClause(sb *strings.Builder, w *ast.WhereClause) {
	sb.WriteString("WHERE ")
	Expression(sb, w.Condition)
}

func formatGroupByClause(sb *strings.Builder, g *ast.GroupByClause) {
	sb.WriteString("GROUP BY ")
	for i, id := range g.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, id)
	}
}

func formatHavingClause(sb *strings.Builder, h *ast.HavingClause) {
	sb.WriteString("HAVING ")
	Expression(sb, h.Condition)
}

func formatOrderByClause(sb *strings.Builder, o *ast.OrderByClause) {
	sb.WriteString("ORDER BY ")
	for i, id := range o.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, id)
		if dir := o.Direction(i); dir != "" {
			sb.WriteString(" ")
			sb.WriteString(dir)
		}
	}
}
