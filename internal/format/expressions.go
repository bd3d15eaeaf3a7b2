package format

import (
	"fmt"
	"strings"

	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/token"
)

// Expression formats an expression.
func Expression(sb *strings.Builder, expr ast.Expression) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *ast.Identifier:
		formatDotted(sb, e.Name)
	case *ast.Literal:
		sb.WriteString(e.Value)
	case *ast.Wildcard:
		sb.WriteString("*")
	case *ast.FunctionCall:
		formatFunctionCall(sb, e)
	case *ast.Comparison:
		Expression(sb, e.Left)
		sb.WriteString(" ")
		sb.WriteString(e.Operator)
		sb.WriteString(" ")
		Expression(sb, e.Right)
	case *ast.LogicalOperation:
		formatLogicalOperation(sb, e)
	case *ast.UnaryOperation:
		sb.WriteString(e.Operator)
		sb.WriteString(" ")
		formatOperand(sb, e.Operand)
	case *ast.IsNull:
		Expression(sb, e.Expression)
		if e.Negated {
			sb.WriteString(" IS NOT NULL")
		} else {
			sb.WriteString(" IS NULL")
		}
	case *ast.Between:
		Expression(sb, e.Expression)
		if e.Negated {
			sb.WriteString(" NOT")
		}
		sb.WriteString(" BETWEEN ")
		Expression(sb, e.Lower)
		sb.WriteString(" AND ")
		Expression(sb, e.Upper)
	case *ast.InList:
		Expression(sb, e.Expression)
		if e.Negated {
			sb.WriteString(" NOT")
		}
		sb.WriteString(" IN (")
		for i, v := range e.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			Expression(sb, v)
		}
		sb.WriteString(")")
	default:
		// Fallback for unhandled expressions
		sb.WriteString(fmt.Sprintf("%v", expr))
	}
}

// formatFunctionCall formats a function call.
func formatFunctionCall(sb *strings.Builder, fn *ast.FunctionCall) {
	sb.WriteString(fn.Name)
	sb.WriteString("(")
	for i, arg := range fn.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, arg)
	}
	sb.WriteString(")")
}

// formatLogicalOperation writes left op right. Chains fold to the left, so
// only a logical operation on the right needs parentheses.
func formatLogicalOperation(sb *strings.Builder, op *ast.LogicalOperation) {
	Expression(sb, op.Left)
	sb.WriteString(" ")
	sb.WriteString(op.Operator)
	if op.Right == nil {
		return
	}
	sb.WriteString(" ")
	formatOperand(sb, op.Right)
}

func formatOperand(sb *strings.Builder, e ast.Expression) {
	if _, ok := e.(*ast.LogicalOperation); ok {
		sb.WriteString("(")
		Expression(sb, e)
		sb.WriteString(")")
		return
	}
	Expression(sb, e)
}

// formatDotted writes a possibly dotted name, quoting parts that would not
// lex back as plain identifiers.
func formatDotted(sb *strings.Builder, name string) {
	for i, part := range strings.Split(name, ".") {
		if i > 0 {
			sb.WriteString(".")
		}
		formatName(sb, part)
	}
}

func formatName(sb *strings.Builder, name string) {
	if isPlainName(name) {
		sb.WriteString(name)
		return
	}
	sb.WriteString(`"`)
	sb.WriteString(strings.ReplaceAll(name, `"`, `""`))
	sb.WriteString(`"`)
}

func isPlainName(name string) bool {
	if name == "" {
		return false
	}
	upper := strings.ToUpper(name)
	if token.Keywords[upper] || upper == token.LIKE || upper == "TRUE" || upper == "FALSE" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
