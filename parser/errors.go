package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miguelsiloli/sql2ra/token"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers can
// test with errors.Is.
var (
	ErrUnexpectedToken           = errors.New("unexpected token")
	ErrUnexpectedExpressionToken = errors.New("unexpected expression token")
	ErrMalformedFunctionCall     = errors.New("malformed function call")
	ErrMissingSelectClause       = errors.New("missing SELECT clause")
	ErrMissingFromClause         = errors.New("missing FROM clause")
)

// Error is a parse failure. Parsing stops at the first one; no partial AST
// is returned.
type Error struct {
	Kind     error          // one of the Err* sentinels
	Cause    error          // optional underlying kind, e.g. ErrUnexpectedToken
	Index    int            // token offset where parsing failed
	Pos      token.Position // source position of Got, when known
	Expected string         // what the grammar wanted
	Got      *token.Token   // nil at end of input
	Msg      string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, describe(e.Got))
	} else if e.Got != nil {
		fmt.Fprintf(&b, ": got %s", describe(e.Got))
	}
	if e.Pos.IsValid() {
		fmt.Fprintf(&b, " at %s", e.Pos)
	} else {
		fmt.Fprintf(&b, " at token %d", e.Index)
	}
	return b.String()
}

// Unwrap returns the error kind and, if set, the cause.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func describe(t *token.Token) string {
	if t == nil {
		return "end of input"
	}
	return t.String()
}

func expectation(kind token.Kind, text string) string {
	if text == "" {
		return kind.String()
	}
	return fmt.Sprintf("%s %q", kind, text)
}
