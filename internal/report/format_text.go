package report

import (
	"fmt"
	"strings"
)

// FormatText returns a human-readable string representation of the report.
// Each class is a section listing its spells in input order, followed by
// a summary line at the end.
func FormatText(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s\n", r.File)

	for _, s := range r.Sections {
		writeSection(&b, s)
	}

	fmt.Fprintf(&b, "\n%d classes, %d spells, %d unique\n",
		r.Summary.ClassCount, r.Summary.SpellCount, r.Summary.UniqueSpellCount)
	return b.String()
}

func writeSection(b *strings.Builder, s ClassSection) {
	fmt.Fprintf(b, "\n%s (%d spells):\n", s.Name, len(s.Spells))
	for _, spell := range s.Spells {
		fmt.Fprintf(b, "  %s\n", spell)
	}
}
