// Command spellbook reads a spells.json file mapping D&D class names to
// spell name lists, validates it, and prints each class with its spells.
//
// Usage:
//
//	spellbook path_to_spells.json
//
// Exit codes:
//
//	0  Document is valid; every class and its spells were printed
//	1  Document is valid JSON but has the wrong shape (schema errors)
//	2  Usage, file access, or JSON parse error
package main

import (
	"fmt"
	"os"

	"github.com/khasizadaj/dnd-spell-scraper/internal/report"
	"github.com/khasizadaj/dnd-spell-scraper/internal/schema"
	"github.com/khasizadaj/dnd-spell-scraper/internal/spellbook"
)

// usageMessage is the documented external contract for bad invocations
// and must be preserved verbatim.
const usageMessage = "Usage: python dnd_spell_scraper.py [path_to_spells.json]"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usageMessage)
		return 2
	}
	path := args[0]

	// Verify the file is accessible before attempting validation.
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access file: %v\n", err)
		return 2
	}

	v, err := schema.NewValidator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// --- Phase 1: JSON Schema validation ---
	schemaErrors := v.Validate(path)
	if len(schemaErrors) > 0 {
		for _, se := range schemaErrors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, se)
		}
		if hasParseError(schemaErrors) {
			return 2
		}
		return 1
	}

	// --- Phase 2: Ordered decode ---
	doc, err := spellbook.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// --- Phase 3: Print ---
	r := report.New(path, doc)
	fmt.Print(report.FormatText(r))
	return 0
}

// hasParseError returns true if any schema error is a read or JSON
// syntax failure rather than a shape violation.
func hasParseError(errs []schema.SchemaError) bool {
	for _, e := range errs {
		if e.ParseError {
			return true
		}
	}
	return false
}
