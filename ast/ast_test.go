package ast_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/miguelsiloli/sql2ra/ast"
)

func sampleQuery() *ast.Query {
	return &ast.Query{
		Select: &ast.SelectClause{Items: []*ast.SelectItem{
			{Expression: &ast.Identifier{Name: "u.name"}},
			{Expression: &ast.FunctionCall{Name: "COUNT", Arguments: []ast.Expression{&ast.Literal{Value: "*"}}}, Alias: "n"},
		}},
		From: &ast.FromClause{Table: &ast.Table{Name: "users", Alias: "u"}},
		Joins: []*ast.JoinClause{{
			JoinType:  "INNER JOIN",
			Table:     &ast.Table{Name: "orders", Alias: "o"},
			Condition: &ast.Comparison{Left: &ast.Identifier{Name: "u.id"}, Operator: "=", Right: &ast.Identifier{Name: "o.user_id"}},
		}},
		Where: &ast.WhereClause{Condition: &ast.LogicalOperation{
			Left:     &ast.IsNull{Expression: &ast.Identifier{Name: "u.deleted_at"}},
			Operator: "AND",
			Right:    &ast.InList{Expression: &ast.Identifier{Name: "o.state"}, Values: []ast.Expression{&ast.Literal{Value: "'paid'"}}, Negated: true},
		}},
		GroupBy: &ast.GroupByClause{Items: []*ast.Identifier{{Name: "u.name"}}},
		OrderBy: &ast.OrderByClause{Items: []*ast.Identifier{{Name: "u.name"}}, Directions: []string{"DESC"}},
	}
}

func TestEqual(t *testing.T) {
	a, b := sampleQuery(), sampleQuery()
	if !ast.Equal(a, b) {
		t.Fatal("identical trees should be equal")
	}

	b.OrderBy.Directions = nil
	if ast.Equal(a, b) {
		t.Error("direction should matter")
	}

	b = sampleQuery()
	b.Select.Items[0], b.Select.Items[1] = b.Select.Items[1], b.Select.Items[0]
	if ast.Equal(a, b) {
		t.Error("item order should matter")
	}

	b = sampleQuery()
	b.Joins = nil
	if ast.Equal(a, b) {
		t.Error("joins should matter")
	}

	b = sampleQuery()
	b.Where.Condition.(*ast.LogicalOperation).Right.(*ast.InList).Negated = false
	if ast.Equal(a, b) {
		t.Error("negation should matter")
	}

	var nilQuery *ast.Query
	if !ast.Equal(nilQuery, nil) {
		t.Error("a typed nil should equal nil")
	}
	if ast.Equal(&ast.Identifier{Name: "x"}, &ast.Literal{Value: "x"}) {
		t.Error("different node types should differ")
	}
}

func TestOrderByDirection(t *testing.T) {
	o := &ast.OrderByClause{
		Items:      []*ast.Identifier{{Name: "a"}, {Name: "b"}},
		Directions: []string{"ASC"},
	}
	if o.Direction(0) != "ASC" || o.Direction(1) != "" || o.Direction(5) != "" {
		t.Errorf("unexpected directions %q %q", o.Direction(0), o.Direction(1))
	}

	a := &ast.OrderByClause{Items: []*ast.Identifier{{Name: "a"}}}
	b := &ast.OrderByClause{Items: []*ast.Identifier{{Name: "a"}}, Directions: []string{""}}
	if !ast.Equal(a, b) {
		t.Error("missing and empty directions should be equal")
	}
}

func TestDict(t *testing.T) {
	d := ast.Dict(&ast.Comparison{
		Left:     &ast.Identifier{Name: "a.id"},
		Operator: "=",
		Right:    &ast.Literal{Value: "1"},
	})
	want := map[string]any{
		"node_type": "Comparison",
		"left":      map[string]any{"node_type": "Identifier", "name": "a.id"},
		"operator":  "=",
		"right":     map[string]any{"node_type": "Literal", "value": "1"},
	}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("Dict mismatch\nwant: %v\ngot:  %v", want, d)
	}

	q := ast.Dict(&ast.Query{
		Select: &ast.SelectClause{Items: []*ast.SelectItem{{Expression: &ast.Wildcard{}}}},
		From:   &ast.FromClause{Table: &ast.Table{Name: "t"}},
	})
	for _, key := range []string{"where", "group_by", "having", "order_by"} {
		v, ok := q[key]
		if !ok || v != nil {
			t.Errorf("expected %s to be present and nil, got %v", key, v)
		}
	}
	if q["node_type"] != "Query" {
		t.Errorf("unexpected node_type %v", q["node_type"])
	}
}

func TestDictNodeTypeAlwaysPresent(t *testing.T) {
	ast.Inspect(sampleQuery(), func(n ast.Node) bool {
		if got := ast.Dict(n)["node_type"]; got != n.NodeType() {
			t.Errorf("%T: node_type = %v", n, got)
		}
		return true
	})
}

func TestMarshal(t *testing.T) {
	q := sampleQuery()

	j, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	y, err := yaml.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}

	var fromJSON, fromYAML map[string]any
	if err := json.Unmarshal(j, &fromJSON); err != nil {
		t.Fatal(err)
	}
	if err := yaml.Unmarshal(y, &fromYAML); err != nil {
		t.Fatal(err)
	}
	if fromJSON["node_type"] != "Query" || fromYAML["node_type"] != "Query" {
		t.Fatalf("missing node_type: %v / %v", fromJSON["node_type"], fromYAML["node_type"])
	}
	joins, ok := fromYAML["joins"].([]any)
	if !ok || len(joins) != 1 {
		t.Fatalf("unexpected joins in YAML: %#v", fromYAML["joins"])
	}
}

func TestChildren(t *testing.T) {
	q := sampleQuery()
	var types []string
	for _, c := range ast.Children(q) {
		types = append(types, c.NodeType())
	}
	want := []string{"SelectClause", "FromClause", "JoinClause", "WhereClause", "GroupByClause", "OrderByClause"}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("Children(Query) = %v, want %v", types, want)
	}

	var identifiers []string
	ast.Inspect(q, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			identifiers = append(identifiers, id.Name)
		}
		return true
	})
	wantIDs := []string{"u.name", "u.id", "o.user_id", "u.deleted_at", "o.state", "u.name", "u.name"}
	if !reflect.DeepEqual(identifiers, wantIDs) {
		t.Errorf("Inspect visited %v, want %v", identifiers, wantIDs)
	}
}
