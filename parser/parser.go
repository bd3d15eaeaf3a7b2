// Package parser implements a recursive-descent parser that turns a token
// stream for a single SELECT statement into an ast.Query.
package parser

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/lexer"
	"github.com/miguelsiloli/sql2ra/token"
)

// Parser parses one token sequence. It owns its Cursor; independent
// Parsers share nothing and may run concurrently.
type Parser struct {
	cur *Cursor
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{cur: NewCursor(tokens)}
}

// ParseTokens parses a complete query from tokens.
func ParseTokens(tokens []token.Token) (*ast.Query, error) {
	return New(tokens).ParseQuery()
}

// Parse lexes SQL text from r and parses it as a single query.
func Parse(ctx context.Context, r io.Reader) (*ast.Query, error) {
	tokens, err := lexer.Tokenize(ctx, r)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseString is a convenience wrapper around Parse.
func ParseString(ctx context.Context, sql string) (*ast.Query, error) {
	return Parse(ctx, strings.NewReader(sql))
}

// ParseFile parses the query stored in the named file.
func ParseFile(ctx context.Context, name string) (*ast.Query, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(ctx, f)
}

// ParseQuery runs the clause parsers in grammar order:
//
//	SELECT FROM JOIN* WHERE? GROUP BY? HAVING? ORDER BY? ;
//
// The terminating semicolon may be omitted at end of input.
func (p *Parser) ParseQuery() (*ast.Query, error) {
	q := &ast.Query{}
	var err error

	if q.Select, err = p.parseSelect(); err != nil {
		return nil, err
	}
	if q.From, err = p.parseFrom(); err != nil {
		return nil, err
	}
	for p.atJoin() {
		join, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		q.Joins = append(q.Joins, join)
	}
	if q.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	if q.GroupBy, err = p.parseGroupBy(); err != nil {
		return nil, err
	}
	if q.Having, err = p.parseHaving(); err != nil {
		return nil, err
	}
	if q.OrderBy, err = p.parseOrderBy(); err != nil {
		return nil, err
	}
	if err := p.parseTerminal(); err != nil {
		return nil, err
	}
	return q, nil
}

func (p *Parser) parseTerminal() error {
	if p.cur.AtEnd() {
		return nil
	}
	if _, err := p.cur.Consume(token.PUNCTUATION, ";"); err != nil {
		return err
	}
	if !p.cur.AtEnd() {
		return p.cur.errorf(ErrUnexpectedToken, "end of input", "")
	}
	return nil
}
