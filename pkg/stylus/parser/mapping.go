package parser

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColumnMap resolves raw header spellings onto the three fixed portfolio
// columns. Matching is case-insensitive on trimmed headers.
type ColumnMap struct {
	ID    []string `yaml:"id"`
	Label []string `yaml:"label"`
	DBID  []string `yaml:"dbid"`
}

// DefaultColumnMap returns the built-in header spellings.
func DefaultColumnMap() *ColumnMap {
	return &ColumnMap{
		ID:    []string{"ID"},
		Label: []string{"Label"},
		DBID:  []string{"DBID"},
	}
}

// LoadColumnMap reads a column-alias file in YAML form. Aliases left
// empty in the file fall back to the defaults.
func LoadColumnMap(path string) (*ColumnMap, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}
	m := &ColumnMap{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse mapping %s: %w", path, err)
	}
	def := DefaultColumnMap()
	if len(m.ID) == 0 {
		m.ID = def.ID
	}
	if len(m.Label) == 0 {
		m.Label = def.Label
	}
	if len(m.DBID) == 0 {
		m.DBID = def.DBID
	}
	return m, nil
}

// IsID reports whether header names the ID column.
func (m *ColumnMap) IsID(header string) bool { return matches(m.ID, header) }

// IsLabel reports whether header names the Label column.
func (m *ColumnMap) IsLabel(header string) bool { return matches(m.Label, header) }

// IsDBID reports whether header names the DBID column.
func (m *ColumnMap) IsDBID(header string) bool { return matches(m.DBID, header) }

func matches(aliases []string, header string) bool {
	header = strings.TrimSpace(header)
	for _, a := range aliases {
		if strings.EqualFold(a, header) {
			return true
		}
	}
	return false
}
