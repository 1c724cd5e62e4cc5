package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultColumnMap(t *testing.T) {
	m := DefaultColumnMap()

	if !m.IsID("ID") || !m.IsID("id") || !m.IsID(" ID ") {
		t.Error("default map should match ID case-insensitively and trimmed")
	}
	if !m.IsLabel("Label") || !m.IsDBID("dbid") {
		t.Error("default map should match Label and DBID")
	}
	if m.IsID("Label") || m.IsID("Fund ID") {
		t.Error("default map matched a non-ID header")
	}
}

func TestLoadColumnMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	content := "id: [\"Fund ID\", \"AssetId\"]\nlabel: [\"Name\"]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write mapping file: %v", err)
	}

	m, err := LoadColumnMap(path)
	if err != nil {
		t.Fatalf("LoadColumnMap failed: %v", err)
	}
	if !m.IsID("fund id") || !m.IsID("AssetId") {
		t.Error("aliases from the file not matched")
	}
	if !m.IsLabel("Name") {
		t.Error("label alias from the file not matched")
	}
	// dbid was omitted and falls back to the default.
	if !m.IsDBID("DBID") {
		t.Error("omitted dbid aliases should fall back to defaults")
	}
}

func TestLoadColumnMapMissingFile(t *testing.T) {
	_, err := LoadColumnMap(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadColumnMapBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	if err := os.WriteFile(path, []byte("id: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write mapping file: %v", err)
	}
	if _, err := LoadColumnMap(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
