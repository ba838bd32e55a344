package plugins

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePalette = `id: night-shift
version: 1.0.0
name: Night Shift
rules:
  - prefix: "Night "
    category: Lighting
  - team: Security Team
    category: Other
`

func TestParseDefinitionYAML(t *testing.T) {
	def, err := ParseDefinitionYAML([]byte(samplePalette))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.ID != "night-shift" || len(def.Rules) != 2 {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if def.Rules[0].Prefix != "Night " {
		t.Fatalf("prefix whitespace must survive normalization: %q", def.Rules[0].Prefix)
	}
}

func TestParseDefinitionYAMLErrors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"missing id", "version: 1.0.0\nrules:\n  - team: X\n    category: Other\n"},
		{"missing rules", "id: p\nversion: 1.0.0\n"},
		{"prefix and team", "id: p\nversion: 1.0.0\nrules:\n  - prefix: \"A \"\n    team: B\n    category: Other\n"},
		{"bad category", "id: p\nversion: 1.0.0\nrules:\n  - team: B\n    category: Plumbing\n"},
	}
	for _, tc := range cases {
		if _, err := ParseDefinitionYAML([]byte(tc.payload)); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadDefinitionDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "palette.yaml")
	if err := os.WriteFile(path, []byte(samplePalette), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	defs, err := LoadDefinitionDir(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Path != path {
		t.Fatalf("expected path %s, got %s", path, defs[0].Path)
	}
	if defs[0].Definition.ID != "night-shift" {
		t.Fatalf("unexpected id: %+v", defs[0].Definition)
	}
}

func TestLoadDefinitionDirMissing(t *testing.T) {
	defs, err := LoadDefinitionDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if defs != nil {
		t.Fatalf("expected nil slice for missing dir, got %v", defs)
	}
}

func TestLoadDefinitionDirSkipsNonYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("not a palette"), 0644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	defs, err := LoadDefinitionDir(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if defs != nil {
		t.Fatalf("expected nil for dir without palettes, got %v", defs)
	}
}
