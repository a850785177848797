// Package spellbook defines the spell list document model: D&D class
// names mapped to ordered lists of spell names, as produced by the
// dnd5e.wikidot.com spell list JSON.
package spellbook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ClassSpells is one class and its spell names, in source order.
type ClassSpells struct {
	Name   string
	Spells []string
}

// Document is a parsed spell list document. Classes appear in the order
// they appear in the source file, and spell name text is kept verbatim.
type Document struct {
	Classes []ClassSpells
}

// UnmarshalJSON decodes the top-level class→spells object with a token
// walk so that class order matches the source document. encoding/json's
// map decoding would lose key order.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("top-level value must be an object, got %v", tok)
	}

	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		// Inside an object, the next token is always the key string.
		name := keyTok.(string)

		spells, err := decodeSpellList(dec)
		if err != nil {
			return fmt.Errorf("class %q: %w", name, err)
		}

		// Duplicate keys keep the first position and the last value,
		// matching JSON object semantics.
		if i, ok := index[name]; ok {
			d.Classes[i].Spells = spells
			continue
		}
		index[name] = len(d.Classes)
		d.Classes = append(d.Classes, ClassSpells{Name: name, Spells: spells})
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeSpellList reads one spell list value from the decoder. Anything
// other than an array of strings — including null and null elements,
// which encoding/json would otherwise decode as no-ops — is an error.
func decodeSpellList(dec *json.Decoder) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("spell list must be an array of strings, got %v", tok)
	}

	spells := []string{}
	for dec.More() {
		elemTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		s, ok := elemTok.(string)
		if !ok {
			return nil, fmt.Errorf("spell list must be an array of strings, got element %v", elemTok)
		}
		spells = append(spells, s)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return spells, nil
}

// SpellCount returns the total number of spell entries across all
// classes, counting duplicates.
func (d *Document) SpellCount() int {
	n := 0
	for _, c := range d.Classes {
		n += len(c.Spells)
	}
	return n
}

// UniqueSpells returns the distinct spell names across every class, in
// first-seen order. A spell listed by several classes appears once.
func (d *Document) UniqueSpells() []string {
	seen := make(map[string]bool)
	var spells []string
	for _, c := range d.Classes {
		for _, s := range c.Spells {
			if !seen[s] {
				seen[s] = true
				spells = append(spells, s)
			}
		}
	}
	return spells
}
