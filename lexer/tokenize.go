package lexer

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/miguelsiloli/sql2ra/token"
)

// joinModifiers may precede JOIN (optionally followed by OUTER).
var joinModifiers = map[string]bool{
	"INNER": true,
	"LEFT":  true,
	"RIGHT": true,
	"FULL":  true,
	"CROSS": true,
}

// Tokenize reads all of r and returns its tokens with compound keywords
// (INNER JOIN, LEFT OUTER JOIN, GROUP BY, ORDER BY, ...) merged into single
// KEYWORD tokens. ctx is checked between tokens.
func Tokenize(ctx context.Context, r io.Reader) ([]token.Token, error) {
	l := New(r)
	var raw []token.Token
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := l.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		raw = append(raw, tok)
	}
	return mergeKeywords(raw), nil
}

// TokenizeString is a convenience wrapper around Tokenize.
func TokenizeString(sql string) ([]token.Token, error) {
	return Tokenize(context.Background(), strings.NewReader(sql))
}

func mergeKeywords(raw []token.Token) []token.Token {
	out := make([]token.Token, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if tok.Kind != token.KEYWORD {
			out = append(out, tok)
			continue
		}

		switch {
		case (tok.Text == "GROUP" || tok.Text == "ORDER") && keywordAt(raw, i+1, "BY"):
			tok.Text += " BY"
			i++
		case joinModifiers[tok.Text]:
			j := i + 1
			words := []string{tok.Text}
			if tok.Text != "INNER" && tok.Text != "CROSS" && keywordAt(raw, j, "OUTER") {
				words = append(words, "OUTER")
				j++
			}
			if keywordAt(raw, j, token.JOIN) {
				tok.Text = strings.Join(append(words, token.JOIN), " ")
				i = j
			}
		}
		out = append(out, tok)
	}
	return out
}

func keywordAt(toks []token.Token, i int, kw string) bool {
	return i < len(toks) && toks[i].IsKeyword(kw)
}
