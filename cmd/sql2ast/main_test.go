package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/miguelsiloli/sql2ra/parser"
)

const query = "SELECT id, COUNT(*) AS n FROM users u GROUP BY id;"

func TestRunOutputs(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), strings.NewReader(query), &out, "json", false); err != nil {
		t.Fatal(err)
	}
	var fromJSON map[string]any
	if err := json.Unmarshal(out.Bytes(), &fromJSON); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if fromJSON["node_type"] != "Query" {
		t.Errorf("unexpected JSON output: %s", out.String())
	}

	out.Reset()
	if err := run(context.Background(), strings.NewReader(query), &out, "yaml", false); err != nil {
		t.Fatal(err)
	}
	var fromYAML map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &fromYAML); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out.String())
	}
	if fromYAML["node_type"] != "Query" {
		t.Errorf("unexpected YAML output: %s", out.String())
	}

	out.Reset()
	if err := run(context.Background(), strings.NewReader(query), &out, "sql", false); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != query {
		t.Errorf("sql output = %q, want %q", got, query)
	}

	out.Reset()
	if err := run(context.Background(), strings.NewReader(query), &out, "explain", false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Query (children 3)\n") {
		t.Errorf("unexpected explain output:\n%s", out.String())
	}
}

func TestRunTokens(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), strings.NewReader("SELECT a FROM t"), &out, "json", true); err != nil {
		t.Fatal(err)
	}
	var toks []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(out.Bytes(), &toks); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(toks) != 4 || toks[0].Kind != "KEYWORD" || toks[3].Text != "t" {
		t.Errorf("unexpected tokens: %+v", toks)
	}

	out.Reset()
	if err := run(context.Background(), strings.NewReader("SELECT a FROM t"), &out, "text", true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `line 1, column 1	KEYWORD("SELECT")`) {
		t.Errorf("unexpected text tokens:\n%s", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), strings.NewReader("SELECT a"), &out, "json", false)
	if !errors.Is(err, parser.ErrMissingFromClause) {
		t.Errorf("expected ErrMissingFromClause, got %v", err)
	}
	if err := run(context.Background(), strings.NewReader(query), &out, "xml", false); err == nil {
		t.Error("expected error for unknown output format")
	}
}
