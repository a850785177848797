package report

import (
	"strings"
	"testing"

	"github.com/khasizadaj/dnd-spell-scraper/internal/spellbook"
)

func TestFormatText(t *testing.T) {
	r := New("spells.json", sampleDocument())
	out := FormatText(r)

	if !strings.HasPrefix(out, "File: spells.json\n") {
		t.Errorf("output does not start with file header:\n%s", out)
	}

	artificer := strings.Index(out, "artificer (3 spells):")
	druid := strings.Index(out, "druid (3 spells):")
	if artificer < 0 || druid < 0 {
		t.Fatalf("missing class section headers:\n%s", out)
	}
	if artificer > druid {
		t.Errorf("artificer section should precede druid:\n%s", out)
	}

	// Spells are listed under their class in input order.
	section := out[artificer:druid]
	faerie := strings.Index(section, "faerie-fire")
	vortex := strings.Index(section, "vortex-warp")
	if faerie < 0 || vortex < 0 || faerie > vortex {
		t.Errorf("artificer spells missing or out of order:\n%s", section)
	}

	if !strings.Contains(out, "2 classes, 6 spells, 6 unique") {
		t.Errorf("missing summary line:\n%s", out)
	}
}

func TestFormatText_Deterministic(t *testing.T) {
	r := New("spells.json", sampleDocument())
	if FormatText(r) != FormatText(r) {
		t.Error("FormatText output differs across calls")
	}
}

func TestFormatText_EmptyDocument(t *testing.T) {
	r := New("spells.json", &spellbook.Document{})
	out := FormatText(r)
	if !strings.Contains(out, "0 classes, 0 spells, 0 unique") {
		t.Errorf("missing zero summary line:\n%s", out)
	}
}
