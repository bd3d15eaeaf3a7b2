package format_test

import (
	"context"
	"testing"

	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/internal/format"
	"github.com/miguelsiloli/sql2ra/parser"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "keywords upper-cased",
			sql:  "select id from users where name like 'a%'",
			want: "SELECT id FROM users WHERE name LIKE 'a%';",
		},
		{
			name: "table alias with AS",
			sql:  "SELECT u.id FROM users AS u",
			want: "SELECT u.id FROM users u;",
		},
		{
			name: "joins",
			sql:  "SELECT a.x FROM a left outer join b ON a.id=b.id join c on b.id=c.id",
			want: "SELECT a.x FROM a LEFT OUTER JOIN b ON a.id = b.id JOIN c ON b.id = c.id;",
		},
		{
			name: "grouping",
			sql:  "SELECT dept, MAX(salary) AS top FROM emp GROUP BY dept HAVING MAX(salary) >= 100 ORDER BY dept ASC",
			want: "SELECT dept, MAX(salary) AS top FROM emp GROUP BY dept HAVING MAX(salary) >= 100 ORDER BY dept ASC;",
		},
		{
			name: "parenthesised right operand",
			sql:  "SELECT id FROM t WHERE a = 1 AND (b = 2 OR c = 3)",
			want: "SELECT id FROM t WHERE a = 1 AND (b = 2 OR c = 3);",
		},
		{
			name: "redundant left parentheses dropped",
			sql:  "SELECT id FROM t WHERE (a = 1 AND b = 2) OR c = 3",
			want: "SELECT id FROM t WHERE a = 1 AND b = 2 OR c = 3;",
		},
		{
			name: "predicates",
			sql:  "SELECT id FROM t WHERE NOT x IS NOT NULL AND y NOT BETWEEN 1 AND 2 OR z IN (1, 2, 3)",
			want: "SELECT id FROM t WHERE NOT x IS NOT NULL AND y NOT BETWEEN 1 AND 2 OR z IN (1, 2, 3);",
		},
		{
			name: "quoted names",
			sql:  `SELECT "order".id AS "Total Count" FROM "order"`,
			want: `SELECT "order".id AS "Total Count" FROM "order";`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := parser.ParseString(context.Background(), tc.sql)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			got := format.Format(q)
			if got != tc.want {
				t.Errorf("Format mismatch\nwant: %s\ngot:  %s", tc.want, got)
			}

			again, err := parser.ParseString(context.Background(), got)
			if err != nil {
				t.Fatalf("Reparse error: %v", err)
			}
			if !ast.Equal(q, again) {
				t.Errorf("round trip changed the tree: %s", got)
			}
		})
	}
}

func TestFormatRightNestedLogic(t *testing.T) {
	cmp := func(name string) ast.Expression {
		return &ast.Comparison{Left: &ast.Identifier{Name: name}, Operator: "=", Right: &ast.Literal{Value: "1"}}
	}
	q := &ast.Query{
		Select: &ast.SelectClause{Items: []*ast.SelectItem{{Expression: &ast.Wildcard{}}}},
		From:   &ast.FromClause{Table: &ast.Table{Name: "t"}},
		Where: &ast.WhereClause{Condition: &ast.LogicalOperation{
			Left:     cmp("a"),
			Operator: "OR",
			Right:    &ast.LogicalOperation{Left: cmp("b"), Operator: "AND", Right: cmp("c")},
		}},
	}

	got := format.Format(q)
	want := "SELECT * FROM t WHERE a = 1 OR (b = 1 AND c = 1);"
	if got != want {
		t.Fatalf("Format mismatch\nwant: %s\ngot:  %s", want, got)
	}

	again, err := parser.ParseString(context.Background(), got)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(q, again) {
		t.Error("round trip changed the tree")
	}
}

func TestNode(t *testing.T) {
	got := format.Node(&ast.Between{
		Expression: &ast.Identifier{Name: "age"},
		Lower:      &ast.Literal{Value: "18"},
		Upper:      &ast.Literal{Value: "65"},
	})
	if got != "age BETWEEN 18 AND 65" {
		t.Errorf("unexpected %q", got)
	}
	if got := format.Node(&ast.Table{Name: "s.t", Alias: "x"}); got != "s.t x" {
		t.Errorf("unexpected %q", got)
	}
}
