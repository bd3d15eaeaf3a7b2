package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/miguelsiloli/sql2ra/parser"
)

type testMetadata struct {
	Todo       bool   `json:"todo,omitempty"`
	ParseError string `json:"parse_error,omitempty"`
}

type todoTest struct {
	name      string
	query     string
	querySize int
}

func main() {
	testdataDir := flag.String("testdata", "parser/testdata", "Directory holding the test cases")
	flag.Parse()

	entries, err := os.ReadDir(*testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var todoTests []todoTest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		testDir := filepath.Join(*testdataDir, entry.Name())
		metadataBytes, err := os.ReadFile(filepath.Join(testDir, "metadata.json"))
		if err != nil {
			continue
		}

		var metadata testMetadata
		if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
			continue
		}
		if !metadata.Todo || metadata.ParseError != "" {
			continue
		}

		queryBytes, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
		if err != nil {
			continue
		}

		todoTests = append(todoTests, todoTest{
			name:      entry.Name(),
			query:     string(queryBytes),
			querySize: len(queryBytes),
		})
	}

	if len(todoTests) == 0 {
		fmt.Printf("No todo tests found!\n")
		return
	}

	// Shortest first
	sort.Slice(todoTests, func(i, j int) bool {
		return todoTests[i].querySize < todoTests[j].querySize
	})

	next := todoTests[0]
	fmt.Printf("Next todo test: %s\n\n", next.name)
	fmt.Printf("Query (%d bytes):\n%s\n", next.querySize, next.query)

	if _, err := parser.ParseString(context.Background(), next.query); err != nil {
		fmt.Printf("\nCurrent parse error:\n%v\n", err)
	} else {
		fmt.Printf("\nQuery now parses; remove todo from metadata.json and run regenerate-ast.\n")
	}

	fmt.Printf("\nRemaining todo tests: %d\n", len(todoTests))
}
