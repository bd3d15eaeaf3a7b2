package parser

import (
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/token"
)

// Each clause parser consumes exactly its clause's tokens. Optional clauses
// return nil without consuming anything when their keyword is absent.

func (p *Parser) parseSelect() (*ast.SelectClause, error) {
	if !p.cur.currentIs(token.KEYWORD, token.SELECT) {
		return nil, p.cur.errorf(ErrMissingSelectClause, token.SELECT, "")
	}
	p.cur.next()

	sel := &ast.SelectClause{}
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		sel.Items = append(sel.Items, item)

		tok, ok := p.cur.Current()
		switch {
		case !ok:
			return nil, p.cur.errorf(ErrMissingFromClause, token.FROM, "select list ended")
		case tok.IsPunct(","):
			p.cur.next()
		case tok.IsKeyword(token.FROM):
			return sel, nil
		case tok.Kind == token.KEYWORD && token.IsClauseKeyword(tok.Text), tok.IsPunct(";"):
			return nil, p.cur.errorf(ErrMissingFromClause, token.FROM, "select list ended")
		default:
			return nil, p.cur.errorf(ErrUnexpectedToken, `"," or FROM`, "")
		}
	}
}

func (p *Parser) parseSelectItem() (*ast.SelectItem, error) {
	tok, ok := p.cur.Current()
	if !ok {
		return nil, p.cur.errorf(ErrUnexpectedExpressionToken, "select item", "")
	}

	item := &ast.SelectItem{}
	switch {
	case tok.IsWildcard():
		p.cur.next()
		item.Expression = &ast.Wildcard{}
	case tok.Kind == token.IDENTIFIER:
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		item.Expression = id
	case tok.Kind == token.KEYWORD && token.IsAggregate(tok.Text):
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		item.Expression = fn
	default:
		return nil, p.cur.errorf(ErrUnexpectedExpressionToken, "select item", "")
	}

	if p.cur.currentIs(token.KEYWORD, token.AS) {
		p.cur.next()
		alias, err := p.cur.Consume(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		item.Alias = alias.Text
	}
	return item, nil
}

func (p *Parser) parseFrom() (*ast.FromClause, error) {
	if !p.cur.currentIs(token.KEYWORD, token.FROM) {
		return nil, p.cur.errorf(ErrMissingFromClause, token.FROM, "")
	}
	p.cur.next()

	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	return &ast.FromClause{Table: table}, nil
}

// parseTable parses name [[AS] alias]. Keywords never arrive as
// IDENTIFIER, so a following identifier is always an alias.
func (p *Parser) parseTable() (*ast.Table, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	table := &ast.Table{Name: name.Name}

	if p.cur.currentIs(token.KEYWORD, token.AS) {
		p.cur.next()
		alias, err := p.cur.Consume(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		table.Alias = alias.Text
	} else if tok, ok := p.cur.Current(); ok && tok.Kind == token.IDENTIFIER {
		p.cur.next()
		table.Alias = tok.Text
	}
	return table, nil
}

func (p *Parser) atJoin() bool {
	tok, ok := p.cur.Current()
	return ok && tok.Kind == token.KEYWORD && token.IsJoinKeyword(tok.Text)
}

func (p *Parser) parseJoin() (*ast.JoinClause, error) {
	kw := p.cur.next()

	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.Consume(token.KEYWORD, token.ON); err != nil {
		return nil, err
	}
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	return &ast.JoinClause{
		JoinType:  strings.ToUpper(kw.Text),
		Table:     table,
		Condition: cond,
	}, nil
}

func (p *Parser) parseWhere() (*ast.WhereClause, error) {
	if !p.cur.currentIs(token.KEYWORD, token.WHERE) {
		return nil, nil
	}
	p.cur.next()

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	return &ast.WhereClause{Condition: cond}, nil
}

func (p *Parser) parseGroupBy() (*ast.GroupByClause, error) {
	if !p.cur.currentIs(token.KEYWORD, token.GROUPBY) {
		return nil, nil
	}
	p.cur.next()

	items, err := p.parseIdentifierList(nil)
	if err != nil {
		return nil, err
	}
	return &ast.GroupByClause{Items: items}, nil
}

func (p *Parser) parseHaving() (*ast.HavingClause, error) {
	if !p.cur.currentIs(token.KEYWORD, token.HAVING) {
		return nil, nil
	}
	p.cur.next()

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	return &ast.HavingClause{Condition: cond}, nil
}

func (p *Parser) parseOrderBy() (*ast.OrderByClause, error) {
	if !p.cur.currentIs(token.KEYWORD, token.ORDERBY) {
		return nil, nil
	}
	p.cur.next()

	order := &ast.OrderByClause{}
	items, err := p.parseIdentifierList(func() {
		dir := ""
		if tok, ok := p.cur.Current(); ok && (tok.IsKeyword(token.ASC) || tok.IsKeyword(token.DESC)) {
			p.cur.next()
			dir = strings.ToUpper(tok.Text)
		}
		order.Directions = append(order.Directions, dir)
	})
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// parseIdentifierList parses id, id, ... calling after (if non-nil) once
// after each identifier.
func (p *Parser) parseIdentifierList(after func()) ([]*ast.Identifier, error) {
	var items []*ast.Identifier
	for {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		items = append(items, id)
		if after != nil {
			after()
		}
		if !p.cur.currentIs(token.PUNCTUATION, ",") {
			return items, nil
		}
		p.cur.next()
	}
}
