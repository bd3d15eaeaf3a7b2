package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/miguelsiloli/sql2ra/parser"
)

type testMetadata struct {
	Todo       bool   `json:"todo,omitempty"`
	ParseError string `json:"parse_error,omitempty"`
}

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	testdataDir := flag.String("testdata", "parser/testdata", "Directory holding the test cases")
	dryRun := flag.Bool("dry-run", false, "Print what would be done without making changes")
	flag.Parse()

	if *testName != "" {
		if err := processTest(filepath.Join(*testdataDir, *testName), *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *testName, err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(*testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var processed, skipped, errors int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		testDir := filepath.Join(*testdataDir, entry.Name())
		if skip(testDir) {
			skipped++
			continue
		}
		if err := processTest(testDir, *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", entry.Name(), err)
			errors++
		} else {
			processed++
		}
	}

	fmt.Printf("\nProcessed: %d, Skipped: %d, Errors: %d\n", processed, skipped, errors)
	if errors > 0 {
		os.Exit(1)
	}
}

// skip reports whether the case is expected to fail or is not yet supported.
func skip(testDir string) bool {
	metadataBytes, err := os.ReadFile(filepath.Join(testDir, "metadata.json"))
	if err != nil {
		return false
	}
	var metadata testMetadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return false
	}
	return metadata.Todo || metadata.ParseError != ""
}

// processTest parses query.sql and writes ast.json and explain.txt next to it.
func processTest(testDir string, dryRun bool) error {
	queryBytes, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
	if err != nil {
		return fmt.Errorf("reading query.sql: %w", err)
	}

	q, err := parser.ParseString(context.Background(), string(queryBytes))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	testName := filepath.Base(testDir)
	if dryRun {
		fmt.Printf("Would write %s/ast.json and %s/explain.txt\n", testName, testName)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}
	if err := os.WriteFile(filepath.Join(testDir, "ast.json"), append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("writing ast.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(testDir, "explain.txt"), []byte(parser.Explain(q)), 0644); err != nil {
		return fmt.Errorf("writing explain.txt: %w", err)
	}

	fmt.Printf("%s: OK\n", testName)
	return nil
}
