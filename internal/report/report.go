// Package report builds the printable representation of a spell list
// document: one section per class plus aggregate counts.
package report

import "github.com/khasizadaj/dnd-spell-scraper/internal/spellbook"

// ClassSection is one class heading and its spell names, in input order.
type ClassSection struct {
	Name   string
	Spells []string
}

// Summary holds aggregate counts for a report.
type Summary struct {
	ClassCount       int
	SpellCount       int
	UniqueSpellCount int
}

// Report is the printable view of a single spell list file.
type Report struct {
	File     string
	Sections []ClassSection
	Summary  Summary
}

// New builds a Report for the given file from a parsed document.
// The document is not mutated and section order follows document order.
func New(file string, doc *spellbook.Document) *Report {
	r := &Report{
		File:     file,
		Sections: make([]ClassSection, 0, len(doc.Classes)),
	}
	for _, c := range doc.Classes {
		r.Sections = append(r.Sections, ClassSection{Name: c.Name, Spells: c.Spells})
	}
	r.Summary = Summary{
		ClassCount:       len(doc.Classes),
		SpellCount:       doc.SpellCount(),
		UniqueSpellCount: len(doc.UniqueSpells()),
	}
	return r
}
