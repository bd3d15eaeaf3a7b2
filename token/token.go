// Package token defines the lexical tokens consumed by the SQL parser.
package token

import (
	"fmt"
	"strings"
)

// Kind classifies a token. The set is closed: the parser never re-derives
// meaning from raw characters, only from Kind and Text.
type Kind int

const (
	ILLEGAL Kind = iota

	KEYWORD
	IDENTIFIER
	PUNCTUATION
	OPERATOR
	LITERAL

	// Lexer refinements. NUMBER and STRING are accepted wherever LITERAL is,
	// WILDCARD is the bare * token.
	NUMBER
	STRING
	WILDCARD

	kind_end
)

var kinds = [...]string{
	ILLEGAL:     "ILLEGAL",
	KEYWORD:     "KEYWORD",
	IDENTIFIER:  "IDENTIFIER",
	PUNCTUATION: "PUNCTUATION",
	OPERATOR:    "OPERATOR",
	LITERAL:     "LITERAL",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	WILDCARD:    "WILDCARD",
}

func (k Kind) String() string {
	if k >= 0 && k < kind_end {
		return kinds[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLiteral reports whether k denotes a literal value.
func (k Kind) IsLiteral() bool {
	return k == LITERAL || k == NUMBER || k == STRING
}

// LookupKind maps a kind name such as "KEYWORD" back to its Kind.
func LookupKind(name string) (Kind, bool) {
	name = strings.ToUpper(name)
	for k := ILLEGAL + 1; k < kind_end; k++ {
		if kinds[k] == name {
			return k, true
		}
	}
	return ILLEGAL, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, ok := LookupKind(string(b))
	if !ok {
		return fmt.Errorf("unknown token kind %q", string(b))
	}
	*k = v
	return nil
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset
	Line   int // line number (1-based)
	Column int // column number (1-based)
}

// IsValid reports whether the position carries source information.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is a single lexical unit. Tokens are immutable once produced.
type Token struct {
	Kind Kind     `json:"kind" yaml:"kind"`
	Text string   `json:"text" yaml:"text"`
	Pos  Position `json:"-" yaml:"-"`
}

// New returns a token without position information.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Is reports whether t has the given kind and, when text is non-empty, the
// given text. Keyword text is compared case-insensitively, everything else
// exactly.
func (t Token) Is(kind Kind, text string) bool {
	if t.Kind != kind {
		return false
	}
	if text == "" {
		return true
	}
	if kind == KEYWORD {
		return strings.EqualFold(t.Text, text)
	}
	return t.Text == text
}

// IsKeyword reports whether t is the keyword kw.
func (t Token) IsKeyword(kw string) bool {
	return t.Is(KEYWORD, kw)
}

// IsPunct reports whether t is the punctuation p.
func (t Token) IsPunct(p string) bool {
	return t.Is(PUNCTUATION, p)
}

// IsWildcard reports whether t is a bare *, whatever kind the lexer gave it.
func (t Token) IsWildcard() bool {
	switch t.Kind {
	case WILDCARD:
		return true
	case OPERATOR, PUNCTUATION:
		return t.Text == "*"
	}
	return false
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
