// Command sql2ast parses a SELECT statement and prints its syntax tree.
//
// Usage:
//
//	sql2ast [-o json|yaml|explain|sql] [-tokens] [file.sql]
//
// The query is read from the named file, or from stdin when no file is given.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/miguelsiloli/sql2ra/ast"
	"github.com/miguelsiloli/sql2ra/lexer"
	"github.com/miguelsiloli/sql2ra/parser"
	"github.com/miguelsiloli/sql2ra/token"
)

func main() {
	output := flag.String("o", "json", "Output format: json, yaml, explain or sql")
	tokens := flag.Bool("tokens", false, "Print the token stream instead of the tree")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(context.Background(), in, os.Stdout, *output, *tokens); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, output string, showTokens bool) error {
	toks, err := lexer.Tokenize(ctx, in)
	if err != nil {
		return err
	}

	if showTokens {
		return writeTokens(out, toks, output)
	}

	q, err := parser.ParseTokens(toks)
	if err != nil {
		return err
	}
	return writeQuery(out, q, output)
}

func writeQuery(out io.Writer, q *ast.Query, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(q); err != nil {
			return err
		}
		return enc.Close()
	case "explain":
		_, err := io.WriteString(out, parser.Explain(q))
		return err
	case "sql":
		_, err := fmt.Fprintln(out, parser.Format(q))
		return err
	}
	return fmt.Errorf("unknown output format %q", output)
}

func writeTokens(out io.Writer, toks []token.Token, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	case "yaml":
		return yaml.NewEncoder(out).Encode(toks)
	}
	for _, tok := range toks {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok); err != nil {
			return err
		}
	}
	return nil
}
