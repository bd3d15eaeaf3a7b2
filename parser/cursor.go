package parser

import "github.com/miguelsiloli/sql2ra/token"

// Cursor owns a token sequence and a read position. The position never
// moves backwards, so a parse reads each token at most once. A Cursor
// belongs to a single parse and is not safe for concurrent use.
type Cursor struct {
	tokens []token.Token
	pos    int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Current returns the token at the read position. ok is false at end of
// input.
func (c *Cursor) Current() (tok token.Token, ok bool) {
	return c.Peek(0)
}

// Peek returns the token offset positions away from the read position
// without advancing. ok is false when that index is out of range.
func (c *Cursor) Peek(offset int) (tok token.Token, ok bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[i], true
}

// Consume returns the current token and advances past it. It fails with
// ErrUnexpectedToken at end of input or when the token is not of the given
// kind. When text is non-empty the token text must match too (keywords
// case-insensitively).
func (c *Cursor) Consume(kind token.Kind, text string) (token.Token, error) {
	tok, ok := c.Current()
	if !ok || !tok.Is(kind, text) {
		return tok, c.errorf(ErrUnexpectedToken, expectation(kind, text), "")
	}
	c.pos++
	return tok, nil
}

// Pos returns the read position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of tokens in the sequence.
func (c *Cursor) Len() int { return len(c.tokens) }

// AtEnd reports whether every token has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.tokens) }

// next advances unconditionally. Callers have already inspected Current.
func (c *Cursor) next() token.Token {
	tok := c.tokens[c.pos]
	c.pos++
	return tok
}

// currentIs reports whether the current token matches kind and text.
func (c *Cursor) currentIs(kind token.Kind, text string) bool {
	tok, ok := c.Current()
	return ok && tok.Is(kind, text)
}

// errorf builds an *Error describing the current token.
func (c *Cursor) errorf(kind error, expected, msg string) *Error {
	e := &Error{Kind: kind, Index: c.pos, Expected: expected, Msg: msg}
	if tok, ok := c.Current(); ok {
		e.Got = &tok
		e.Pos = tok.Pos
	}
	return e
}
