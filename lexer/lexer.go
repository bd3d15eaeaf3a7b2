// Package lexer turns SQL text into the token stream the parser consumes.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/miguelsiloli/sql2ra/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	reader *bufio.Reader
	ch     rune // current character
	pos    token.Position
	eof    bool
	upper  cases.Caser
}

// New creates a new Lexer from an io.Reader.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		reader: bufio.NewReader(r),
		pos:    token.Position{Offset: 0, Line: 1, Column: 0},
		upper:  cases.Upper(language.Und),
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.eof {
		l.ch = 0
		return
	}

	r, size, err := l.reader.ReadRune()
	if err != nil {
		l.ch = 0
		l.eof = true
		return
	}

	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset += size
	l.ch = r
}

func (l *Lexer) peekChar() rune {
	if l.eof {
		return 0
	}
	bytes, _ := l.reader.Peek(utf8.UTFMax)
	if len(bytes) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(bytes)
	return r
}

func (l *Lexer) skipWhitespace() {
	// Skip whitespace and BOM (byte order mark U+FEFF)
	for unicode.IsSpace(l.ch) || l.ch == '\uFEFF' {
		l.readChar()
	}
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted. Comments and whitespace are skipped. Keywords are returned one
// word at a time; Tokenize merges compound keywords.
func (l *Lexer) Next() (token.Token, error) {
	for {
		l.skipWhitespace()
		if l.eof || l.ch == 0 {
			return token.Token{}, io.EOF
		}
		if l.ch == '-' && l.peekChar() == '-' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			if err := l.skipBlockComment(); err != nil {
				return token.Token{}, err
			}
			continue
		}
		break
	}

	pos := l.pos
	tok := func(kind token.Kind, text string) (token.Token, error) {
		return token.Token{Kind: kind, Text: text, Pos: pos}, nil
	}

	switch l.ch {
	case ',', '.', '(', ')', ';':
		ch := l.ch
		l.readChar()
		return tok(token.PUNCTUATION, string(ch))
	case '*':
		l.readChar()
		return tok(token.WILDCARD, "*")
	case '=':
		l.readChar()
		return tok(token.OPERATOR, "=")
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(token.OPERATOR, "!=")
		}
	case '<':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return tok(token.OPERATOR, "<=")
		case '>':
			l.readChar()
			return tok(token.OPERATOR, "<>")
		}
		return tok(token.OPERATOR, "<")
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return tok(token.OPERATOR, ">=")
		}
		return tok(token.OPERATOR, ">")
	case '\'':
		text, err := l.readString()
		if err != nil {
			return token.Token{}, err
		}
		return tok(token.STRING, text)
	case '"', '`':
		text, err := l.readQuotedIdentifier()
		if err != nil {
			return token.Token{}, err
		}
		return tok(token.IDENTIFIER, text)
	case '-':
		if isDigit(l.peekChar()) {
			l.readChar()
			return tok(token.NUMBER, "-"+l.readNumber())
		}
	}

	if isDigit(l.ch) {
		return tok(token.NUMBER, l.readNumber())
	}
	if isIdentStart(l.ch) {
		return l.classifyWord(l.readWord(), pos), nil
	}

	ch := l.ch
	l.readChar()
	return token.Token{}, fmt.Errorf("lexer: unexpected character %q at %s", ch, pos)
}

// classifyWord decides between keyword, operator, literal and identifier.
func (l *Lexer) classifyWord(word string, pos token.Position) token.Token {
	upper := l.upper.String(word)
	switch {
	case upper == token.LIKE:
		return token.Token{Kind: token.OPERATOR, Text: upper, Pos: pos}
	case upper == "TRUE" || upper == "FALSE":
		return token.Token{Kind: token.LITERAL, Text: upper, Pos: pos}
	case token.Keywords[upper]:
		return token.Token{Kind: token.KEYWORD, Text: upper, Pos: pos}
	}
	return token.Token{Kind: token.IDENTIFIER, Text: word, Pos: pos}
}

func (l *Lexer) skipLineComment() {
	for !l.eof && l.ch != '\n' {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment() error {
	start := l.pos
	l.readChar() // /
	l.readChar() // *
	for !l.eof {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return nil
		}
		l.readChar()
	}
	return fmt.Errorf("lexer: unterminated block comment starting at %s", start)
}

// readString reads a single-quoted string and returns it with its quotes.
// A doubled quote or a backslash escapes the next character.
func (l *Lexer) readString() (string, error) {
	start := l.pos
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar()
	for !l.eof {
		switch {
		case l.ch == '\\':
			sb.WriteRune(l.ch)
			l.readChar()
			if !l.eof {
				sb.WriteRune(l.ch)
				l.readChar()
			}
		case l.ch == '\'' && l.peekChar() == '\'':
			sb.WriteString("''")
			l.readChar()
			l.readChar()
		case l.ch == '\'':
			sb.WriteRune(l.ch)
			l.readChar()
			return sb.String(), nil
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
	return "", fmt.Errorf("lexer: unterminated string literal starting at %s", start)
}

// readQuotedIdentifier reads a "..." or `...` identifier and strips the
// quotes. A doubled quote character stands for itself.
func (l *Lexer) readQuotedIdentifier() (string, error) {
	start := l.pos
	quote := l.ch
	var sb strings.Builder
	l.readChar()
	for !l.eof {
		if l.ch == quote {
			if l.peekChar() == quote {
				sb.WriteRune(quote)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			return sb.String(), nil
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return "", fmt.Errorf("lexer: unterminated quoted identifier starting at %s", start)
}

func (l *Lexer) readNumber() string {
	var sb strings.Builder
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		sb.WriteRune(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			sb.WriteRune(l.ch)
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				sb.WriteRune(l.ch)
				l.readChar()
			}
			for isDigit(l.ch) {
				sb.WriteRune(l.ch)
				l.readChar()
			}
		}
	}
	return sb.String()
}

func (l *Lexer) readWord() string {
	var sb strings.Builder
	for isIdentStart(l.ch) || isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return sb.String()
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
