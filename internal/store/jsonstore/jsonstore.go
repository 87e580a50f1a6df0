package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Read-only JSON seed file. Items are imported once at startup and never
// written back; the list itself lives only in memory.

// Seed is one entry of a seed file.
type Seed struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Load reads a seed file. Two shapes are accepted:
//
//	["buy milk", "walk dog"]
//	[{"text": "buy milk", "done": true}]
func Load(path string) ([]Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) ([]Seed, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return []Seed{}, nil
	}

	var texts []string
	if err := json.Unmarshal(b, &texts); err == nil {
		out := make([]Seed, 0, len(texts))
		for _, t := range texts {
			out = append(out, Seed{Text: t})
		}
		return out, nil
	}

	var seeds []Seed
	if err := json.Unmarshal(b, &seeds); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return seeds, nil
}
