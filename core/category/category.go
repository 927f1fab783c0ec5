// ABOUTME: Category canonicalization maps free-form source labels onto a closed key set
// ABOUTME: The table is YAML so the key set can evolve without a rebuild

package category

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key is a canonical category identifier
type Key string

// Canonical keys shipped with the default table
const (
	All           Key = "all"
	Politics      Key = "politics"
	Military      Key = "military"
	Economy       Key = "economy"
	Society       Key = "society"
	Entertainment Key = "entertainment"
	Sports        Key = "sports"
	Other         Key = "other"
)

//go:embed categories.yaml
var defaultTableYAML []byte

type tableFile struct {
	Categories []struct {
		Key    string   `yaml:"key"`
		Labels []string `yaml:"labels"`
	} `yaml:"categories"`
}

// Table maps source labels to canonical keys
type Table struct {
	keys   []Key
	labels map[string]Key
}

// DefaultTable returns the embedded table. It panics only if the embedded
// document is broken, which the package tests guard against.
func DefaultTable() *Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic(fmt.Sprintf("category: embedded table: %v", err))
	}
	return t
}

// LoadTable reads a replacement table from disk
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category table: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("parsing category table %s: %w", path, err)
	}
	return t, nil
}

// ParseTable builds a table from its YAML form. A table without an
// "other" entry gets one appended.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Categories) == 0 {
		return nil, errors.New("no categories defined")
	}

	t := &Table{labels: make(map[string]Key)}
	seen := make(map[Key]bool)
	for i, c := range f.Categories {
		key := Key(normalizeKey(c.Key))
		if key == "" {
			return nil, fmt.Errorf("category %d: key is required", i)
		}
		if key == All {
			return nil, fmt.Errorf("category %d: %q is reserved", i, All)
		}
		if seen[key] {
			return nil, fmt.Errorf("category %q defined twice", key)
		}
		seen[key] = true
		t.keys = append(t.keys, key)
		t.labels[string(key)] = key
		for _, label := range c.Labels {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			t.labels[label] = key
		}
	}
	if !seen[Other] {
		t.keys = append(t.keys, Other)
		t.labels[string(Other)] = Other
	}
	return t, nil
}

// Canonicalize maps a source label to its canonical key.
// Empty and unmapped labels fall back to Other.
func (t *Table) Canonicalize(label string) Key {
	label = strings.TrimSpace(label)
	if label == "" {
		return Other
	}
	if key, ok := t.labels[label]; ok {
		return key
	}
	if key, ok := t.labels[normalizeKey(label)]; ok {
		return key
	}
	return Other
}

// Keys returns the canonical keys in table order, without the wildcard
func (t *Table) Keys() []Key {
	out := make([]Key, len(t.keys))
	copy(out, t.keys)
	return out
}

// IsKnown reports whether key is a canonical key or the wildcard
func (t *Table) IsKnown(key Key) bool {
	if key == All {
		return true
	}
	for _, k := range t.keys {
		if k == key {
			return true
		}
	}
	return false
}

// NormalizeFilter turns user input into a filter key; empty means All
func NormalizeFilter(raw string) Key {
	key := normalizeKey(raw)
	if key == "" {
		return All
	}
	return Key(key)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
