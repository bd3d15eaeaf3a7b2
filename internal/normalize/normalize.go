// Package normalize provides SQL normalization functions for comparing
// semantically equivalent SQL statements that may differ syntactically.
package normalize

import (
	"regexp"
	"strings"
)

// Pre-compiled regexes for performance
var (
	whitespaceRegex        = regexp.MustCompile(`\s+`)
	operatorSpaceRegex     = regexp.MustCompile(`\s*([=<>!]+)\s*`)
	backtickIdentRegex     = regexp.MustCompile("`([^`]+)`")
	doubleQuotedIdentRegex = regexp.MustCompile(`([\s,.(])"([^"]+)"`)
	keywordRegex           = regexp.MustCompile(`(?i)\b(select|from|where|group\s+by|having|order\s+by|as|and|or|not|is|null|in|between|like|asc|desc|on|(?:inner|left|right|full|cross)(?:\s+outer)?\s+join|join)\b`)
	ascRegex               = regexp.MustCompile(`\s+ASC\b`)
	isNotNullParenRegex    = regexp.MustCompile(`\(([\w.]+)\s+IS\s+NOT\s+NULL\)`)
	isNullParenRegex       = regexp.MustCompile(`\(([\w.]+)\s+IS\s+NULL\)`)
)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// EscapesInStrings normalizes escape sequences within string literals:
//   - \' -> '' (backslash-escaped quote to SQL-standard)
//   - \\ -> \ (double backslash to single backslash)
//
// This allows comparing strings with different escape styles.
func EscapesInStrings(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '\'' {
			// Start of a single-quoted string
			result.WriteByte(ch)
			i++
			for i < len(s) {
				ch = s[i]
				if ch == '\\' && i+1 < len(s) && s[i+1] == '\'' {
					// Backslash-escaped quote -> convert to SQL-standard ''
					result.WriteString("''")
					i += 2
				} else if ch == '\\' && i+1 < len(s) && s[i+1] == '\\' {
					// Escaped backslash \\ -> single backslash \
					result.WriteByte('\\')
					i += 2
				} else if ch == '\'' {
					// Either end of string or escaped quote
					result.WriteByte(ch)
					i++
					if i < len(s) && s[i] == '\'' {
						// Escaped quote ''
						result.WriteByte(s[i])
						i++
					} else {
						// End of string
						break
					}
				} else {
					result.WriteByte(ch)
					i++
				}
			}
		} else {
			result.WriteByte(ch)
			i++
		}
	}
	return result.String()
}

// CommasOutsideStrings removes spaces after commas that are outside of string literals.
func CommasOutsideStrings(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	inString := false
	stringChar := byte(0)
	i := 0
	for i < len(s) {
		ch := s[i]
		if !inString {
			if ch == '\'' || ch == '"' {
				inString = true
				stringChar = ch
				result.WriteByte(ch)
				i++
			} else if ch == ',' && i+1 < len(s) && s[i+1] == ' ' {
				// Skip space after comma outside of strings
				result.WriteByte(ch)
				i += 2
			} else {
				result.WriteByte(ch)
				i++
			}
		} else {
			// Inside string
			if ch == stringChar {
				// Check for escaped quote ('' or "")
				if i+1 < len(s) && s[i+1] == stringChar {
					result.WriteByte(ch)
					result.WriteByte(s[i+1])
					i += 2
				} else {
					inString = false
					result.WriteByte(ch)
					i++
				}
			} else if ch == '\\' && i+1 < len(s) {
				// Escaped character - keep both
				result.WriteByte(ch)
				result.WriteByte(s[i+1])
				i += 2
			} else {
				result.WriteByte(ch)
				i++
			}
		}
	}
	return result.String()
}

// Keywords upper-cases SQL keywords and collapses the whitespace inside
// compound keywords such as GROUP BY and LEFT OUTER JOIN.
func Keywords(s string) string {
	return keywordRegex.ReplaceAllStringFunc(s, func(kw string) string {
		return strings.ToUpper(whitespaceRegex.ReplaceAllString(kw, " "))
	})
}

// ForFormat normalizes SQL for format comparison by applying various
// normalizations that make semantically equivalent SQL statements match.
// This includes whitespace normalization, operator spacing, escape sequences,
// and keyword case.
func ForFormat(s string) string {
	normalized := Whitespace(StripComments(s))
	// Normalize spaces around operators (remove spaces)
	normalized = operatorSpaceRegex.ReplaceAllString(normalized, "$1")
	// Normalize commas: remove spaces after commas outside of strings
	normalized = CommasOutsideStrings(normalized)
	// Normalize backslash-escaped quotes to SQL-standard (\' -> '')
	normalized = EscapesInStrings(normalized)
	// Normalize quoted identifiers to unquoted
	normalized = backtickIdentRegex.ReplaceAllString(normalized, "$1")
	normalized = doubleQuotedIdentRegex.ReplaceAllString(normalized, "$1$2")
	normalized = Keywords(normalized)
	// Normalize "ORDER BY x ASC" to "ORDER BY x"
	normalized = ascRegex.ReplaceAllString(normalized, "")
	// Normalize parentheses around IS NULL and IS NOT NULL expressions
	normalized = isNotNullParenRegex.ReplaceAllString(normalized, "$1 IS NOT NULL")
	normalized = isNullParenRegex.ReplaceAllString(normalized, "$1 IS NULL")
	// Re-normalize whitespace after replacements
	normalized = Whitespace(normalized)
	// Strip trailing semicolon and any spaces before it
	normalized = strings.TrimSuffix(strings.TrimSpace(normalized), ";")
	return strings.TrimSpace(normalized)
}

// StripComments removes SQL comments from a query string.
// It handles:
//   - Line comments: -- to end of line
//   - Block comments: /* ... */ with nesting support
func StripComments(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		// Check for line comment: --
		if i+1 < len(s) && s[i] == '-' && s[i+1] == '-' {
			// Skip until end of line
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}

		// Check for block comment: /* ... */
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			depth := 1
			i += 2
			for i < len(s) && depth > 0 {
				if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
					depth++
					i += 2
				} else if i+1 < len(s) && s[i] == '*' && s[i+1] == '/' {
					depth--
					i += 2
				} else {
					i++
				}
			}
			continue
		}

		// Check for string literal - don't strip comments inside strings
		if s[i] == '\'' {
			result.WriteByte(s[i])
			i++
			for i < len(s) {
				if s[i] == '\'' {
					result.WriteByte(s[i])
					i++
					// Check for escaped quote ''
					if i < len(s) && s[i] == '\'' {
						result.WriteByte(s[i])
						i++
						continue
					}
					break
				}
				result.WriteByte(s[i])
				i++
			}
			continue
		}

		result.WriteByte(s[i])
		i++
	}

	return result.String()
}
