package lexer_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/miguelsiloli/sql2ra/lexer"
	"github.com/miguelsiloli/sql2ra/token"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []token.Token
	}{
		{
			name: "simple select",
			sql:  "select a.id, COUNT(*) from t;",
			want: []token.Token{
				token.New(token.KEYWORD, "SELECT"),
				token.New(token.IDENTIFIER, "a"),
				token.New(token.PUNCTUATION, "."),
				token.New(token.IDENTIFIER, "id"),
				token.New(token.PUNCTUATION, ","),
				token.New(token.KEYWORD, "COUNT"),
				token.New(token.PUNCTUATION, "("),
				token.New(token.WILDCARD, "*"),
				token.New(token.PUNCTUATION, ")"),
				token.New(token.KEYWORD, "FROM"),
				token.New(token.IDENTIFIER, "t"),
				token.New(token.PUNCTUATION, ";"),
			},
		},
		{
			name: "compound keywords",
			sql:  "inner join LEFT OUTER JOIN right join Group  By order\nby join",
			want: []token.Token{
				token.New(token.KEYWORD, "INNER JOIN"),
				token.New(token.KEYWORD, "LEFT OUTER JOIN"),
				token.New(token.KEYWORD, "RIGHT JOIN"),
				token.New(token.KEYWORD, "GROUP BY"),
				token.New(token.KEYWORD, "ORDER BY"),
				token.New(token.KEYWORD, "JOIN"),
			},
		},
		{
			name: "operators",
			sql:  "= != <> < <= > >= like",
			want: []token.Token{
				token.New(token.OPERATOR, "="),
				token.New(token.OPERATOR, "!="),
				token.New(token.OPERATOR, "<>"),
				token.New(token.OPERATOR, "<"),
				token.New(token.OPERATOR, "<="),
				token.New(token.OPERATOR, ">"),
				token.New(token.OPERATOR, ">="),
				token.New(token.OPERATOR, "LIKE"),
			},
		},
		{
			name: "literals",
			sql:  `42 -7 3.14 1e10 'it''s' 'a\'b' true NULL`,
			want: []token.Token{
				token.New(token.NUMBER, "42"),
				token.New(token.NUMBER, "-7"),
				token.New(token.NUMBER, "3.14"),
				token.New(token.NUMBER, "1e10"),
				token.New(token.STRING, "'it''s'"),
				token.New(token.STRING, `'a\'b'`),
				token.New(token.LITERAL, "TRUE"),
				token.New(token.KEYWORD, "NULL"),
			},
		},
		{
			name: "quoted identifiers",
			sql:  "\"Order Items\" `select` \"a\"\"b\"",
			want: []token.Token{
				token.New(token.IDENTIFIER, "Order Items"),
				token.New(token.IDENTIFIER, "select"),
				token.New(token.IDENTIFIER, `a"b`),
			},
		},
		{
			name: "comments",
			sql:  "-- leading\nSELECT /* inline */ x -- trailing",
			want: []token.Token{
				token.New(token.KEYWORD, "SELECT"),
				token.New(token.IDENTIFIER, "x"),
			},
		},
		{
			name: "modifier without join stays a keyword",
			sql:  "LEFT x",
			want: []token.Token{
				token.New(token.KEYWORD, "LEFT"),
				token.New(token.IDENTIFIER, "x"),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lexer.TokenizeString(tc.sql)
			if err != nil {
				t.Fatalf("Tokenize error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tc.want), len(got), got)
			}
			for i := range got {
				if got[i].Kind != tc.want[i].Kind || got[i].Text != tc.want[i].Text {
					t.Errorf("token %d: expected %s, got %s", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestPositions(t *testing.T) {
	toks, err := lexer.TokenizeString("SELECT id\n  FROM t")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Position{
		{Offset: 1, Line: 1, Column: 1},
		{Offset: 8, Line: 1, Column: 8},
		{Offset: 13, Line: 2, Column: 3},
		{Offset: 18, Line: 2, Column: 8},
	}
	for i, tok := range toks {
		if tok.Pos.Line != want[i].Line || tok.Pos.Column != want[i].Column {
			t.Errorf("token %s: expected %s, got %s", tok, want[i], tok.Pos)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	for _, sql := range []string{
		"'unterminated",
		`"unterminated`,
		"/* unterminated",
		"SELECT #",
	} {
		if _, err := lexer.TokenizeString(sql); err == nil {
			t.Errorf("expected error for %q", sql)
		}
	}
}

func TestNextReturnsEOF(t *testing.T) {
	l := lexer.New(strings.NewReader("  "))
	if _, err := l.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestTokenizeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lexer.Tokenize(ctx, strings.NewReader("SELECT 1")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
