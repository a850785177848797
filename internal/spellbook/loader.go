package spellbook

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses a spell list JSON file into a Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spells file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse spells JSON: %w", err)
	}

	return &doc, nil
}
