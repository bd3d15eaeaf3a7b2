package token

import "strings"

// Clause keywords. Compound keywords arrive from the lexer as a single
// KEYWORD token.
const (
	SELECT  = "SELECT"
	FROM    = "FROM"
	JOIN    = "JOIN"
	ON      = "ON"
	WHERE   = "WHERE"
	GROUPBY = "GROUP BY"
	HAVING  = "HAVING"
	ORDERBY = "ORDER BY"

	AS      = "AS"
	AND     = "AND"
	OR      = "OR"
	NOT     = "NOT"
	IS      = "IS"
	IN      = "IN"
	BETWEEN = "BETWEEN"
	LIKE    = "LIKE"
	NULL    = "NULL"
	ASC     = "ASC"
	DESC    = "DESC"
)

// Aggregates is the set of function names the expression grammar accepts.
var Aggregates = map[string]bool{
	"COUNT": true,
	"SUM":   true,
	"AVG":   true,
	"MIN":   true,
	"MAX":   true,
}

// IsAggregate reports whether name is a supported aggregate function.
func IsAggregate(name string) bool {
	return Aggregates[strings.ToUpper(name)]
}

// Keywords is the set of single-word keywords known to the lexer.
var Keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "HAVING": true,
	"JOIN": true, "INNER": true, "LEFT": true, "RIGHT": true, "FULL": true,
	"OUTER": true, "CROSS": true, "ON": true,
	"GROUP": true, "ORDER": true, "BY": true,
	"AS": true, "AND": true, "OR": true, "NOT": true,
	"IS": true, "IN": true, "BETWEEN": true, "NULL": true,
	"ASC": true, "DESC": true, "DISTINCT": true, "LIMIT": true,
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
}

// IsJoinKeyword reports whether kw introduces a join: JOIN itself or any
// compound ending in " JOIN".
func IsJoinKeyword(kw string) bool {
	kw = strings.ToUpper(kw)
	return kw == JOIN || strings.HasSuffix(kw, " "+JOIN)
}

// IsClauseKeyword reports whether kw starts a clause of the query.
func IsClauseKeyword(kw string) bool {
	switch strings.ToUpper(kw) {
	case SELECT, FROM, WHERE, GROUPBY, HAVING, ORDERBY:
		return true
	}
	return IsJoinKeyword(kw)
}
