package parser

import (
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/token"
)

// parseExpression parses one identifier, aggregate call or literal.
func (p *Parser) parseExpression() (ast.Expression, error) {
	tok, ok := p.cur.Current()
	if !ok {
		return nil, p.cur.errorf(ErrUnexpectedExpressionToken, "expression", "")
	}

	switch {
	case tok.Kind == token.IDENTIFIER:
		return p.parseIdentifier()
	case tok.Kind == token.KEYWORD && token.IsAggregate(tok.Text):
		return p.parseFunction()
	case tok.Kind.IsLiteral():
		p.cur.next()
		return &ast.Literal{Value: tok.Text}, nil
	case tok.IsKeyword(token.NULL):
		p.cur.next()
		return &ast.Literal{Value: token.NULL}, nil
	default:
		return nil, p.cur.errorf(ErrUnexpectedExpressionToken, "expression", "")
	}
}

// parseIdentifier parses name or name.name..., folding the parts into one
// dotted Identifier.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok, err := p.cur.Consume(token.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	name := tok.Text
	for p.cur.currentIs(token.PUNCTUATION, ".") {
		p.cur.next()
		part, err := p.cur.Consume(token.IDENTIFIER, "")
		if err != nil {
			return nil, err
		}
		name += "." + part.Text
	}
	return &ast.Identifier{Name: name}, nil
}

// parseFunction parses NAME ( * ) or NAME ( expr ). Calls with more than
// one argument are rejected.
func (p *Parser) parseFunction() (*ast.FunctionCall, error) {
	name := p.cur.next()

	if !p.cur.currentIs(token.PUNCTUATION, "(") {
		return nil, p.malformed(`"("`, "missing opening parenthesis after "+name.Text)
	}
	p.cur.next()

	tok, ok := p.cur.Current()
	var arg ast.Expression
	switch {
	case !ok || tok.IsPunct(")"):
		return nil, p.malformed("argument", name.Text+" requires one argument or *")
	case tok.IsWildcard():
		p.cur.next()
		arg = &ast.Literal{Value: "*"}
	default:
		var err error
		if arg, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if p.cur.currentIs(token.PUNCTUATION, ",") {
		return nil, p.malformed(`")"`, name.Text+" takes a single argument")
	}
	if !p.cur.currentIs(token.PUNCTUATION, ")") {
		return nil, p.malformed(`")"`, "missing closing parenthesis")
	}
	p.cur.next()

	return &ast.FunctionCall{Name: name.Text, Arguments: []ast.Expression{arg}}, nil
}

func (p *Parser) malformed(expected, msg string) *Error {
	e := p.cur.errorf(ErrMalformedFunctionCall, expected, msg)
	e.Cause = ErrUnexpectedToken
	return e
}

// parseCondition parses predicates joined by AND/OR. The chain folds to the
// left and AND binds no tighter than OR: a AND b OR c AND d is
// ((a AND b) OR c) AND d.
func (p *Parser) parseCondition() (ast.Expression, error) {
	left, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.cur.Current()
		if !ok || !(tok.IsKeyword(token.AND) || tok.IsKeyword(token.OR)) {
			return left, nil
		}
		p.cur.next()
		right, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalOperation{Left: left, Operator: strings.ToUpper(tok.Text), Right: right}
	}
}

// parsePredicate parses one operand of an AND/OR chain: a comparison, a
// NOT, a parenthesised condition, IS [NOT] NULL, [NOT] BETWEEN, [NOT] IN,
// or a bare expression.
func (p *Parser) parsePredicate() (ast.Expression, error) {
	if p.cur.currentIs(token.KEYWORD, token.NOT) {
		p.cur.next()
		operand, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperation{Operator: token.NOT, Operand: operand}, nil
	}

	if p.cur.currentIs(token.PUNCTUATION, "(") {
		p.cur.next()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.cur.Consume(token.PUNCTUATION, ")"); err != nil {
			return nil, err
		}
		return cond, nil
	}

	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	tok, ok := p.cur.Current()
	if !ok {
		return left, nil
	}
	switch {
	case isComparisonOperator(tok):
		return p.parseComparisonRest(left)
	case tok.IsKeyword(token.IS):
		return p.parseIsNull(left)
	case tok.IsKeyword(token.BETWEEN):
		p.cur.next()
		return p.parseBetween(left, false)
	case tok.IsKeyword(token.IN):
		p.cur.next()
		return p.parseInList(left, false)
	case tok.IsKeyword(token.NOT):
		next, _ := p.cur.Peek(1)
		if next.IsKeyword(token.BETWEEN) {
			p.cur.next()
			p.cur.next()
			return p.parseBetween(left, true)
		}
		if next.IsKeyword(token.IN) {
			p.cur.next()
			p.cur.next()
			return p.parseInList(left, true)
		}
	}
	return left, nil
}

// parseComparison parses expr operator expr, as required after JOIN ... ON.
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	tok, ok := p.cur.Current()
	if !ok || !isComparisonOperator(tok) {
		return nil, p.cur.errorf(ErrUnexpectedToken, token.OPERATOR.String(), "")
	}
	return p.parseComparisonRest(left)
}

func (p *Parser) parseComparisonRest(left ast.Expression) (*ast.Comparison, error) {
	op := p.cur.next()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	operator := op.Text
	if strings.EqualFold(operator, token.LIKE) {
		operator = token.LIKE
	}
	return &ast.Comparison{Left: left, Operator: operator, Right: right}, nil
}

func isComparisonOperator(tok token.Token) bool {
	if tok.Kind == token.OPERATOR {
		return !tok.IsWildcard()
	}
	return tok.IsKeyword(token.LIKE)
}

func (p *Parser) parseIsNull(left ast.Expression) (*ast.IsNull, error) {
	p.cur.next() // IS
	negated := false
	if p.cur.currentIs(token.KEYWORD, token.NOT) {
		p.cur.next()
		negated = true
	}
	if _, err := p.cur.Consume(token.KEYWORD, token.NULL); err != nil {
		return nil, err
	}
	return &ast.IsNull{Expression: left, Negated: negated}, nil
}

// parseBetween parses the bounds after BETWEEN. The AND between the bounds
// belongs to BETWEEN, not to the condition chain.
func (p *Parser) parseBetween(left ast.Expression, negated bool) (*ast.Between, error) {
	lower, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.Consume(token.KEYWORD, token.AND); err != nil {
		return nil, err
	}
	upper, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Between{Expression: left, Lower: lower, Upper: upper, Negated: negated}, nil
}

func (p *Parser) parseInList(left ast.Expression, negated bool) (*ast.InList, error) {
	if _, err := p.cur.Consume(token.PUNCTUATION, "("); err != nil {
		return nil, err
	}
	in := &ast.InList{Expression: left, Negated: negated}
	for {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		in.Values = append(in.Values, v)
		if !p.cur.currentIs(token.PUNCTUATION, ",") {
			break
		}
		p.cur.next()
	}
	if _, err := p.cur.Consume(token.PUNCTUATION, ")"); err != nil {
		return nil, err
	}
	return in, nil
}
