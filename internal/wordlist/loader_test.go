package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goodListJSON = `{
  "name": "user-list",
  "definitions": {
    "CANDOR": "honest openness — Example: Her candor surprised the panel."
  },
  "questions": [
    {
      "number": 1,
      "word": "CANDOR",
      "choices": {"A": "honest openness", "B": "bitterness", "C": "speed", "D": "silence"},
      "answer": "A"
    }
  ]
}`

func writeList(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBuiltinRegistry(t *testing.T) {
	reg, err := BuiltinRegistry()
	if err != nil {
		t.Fatalf("BuiltinRegistry: %v", err)
	}
	ds, err := reg.Resolve("isee-core")
	if err != nil {
		t.Fatalf("Resolve(isee-core): %v", err)
	}
	if len(ds.Questions) == 0 {
		t.Fatal("builtin list has no questions")
	}
	// Every builtin question's word carries a definition for review.
	for _, q := range ds.Questions {
		if _, ok := ds.LookupDefinition(q.Word); !ok {
			t.Errorf("question %d: no definition for %q", q.Number, q.Word)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "user.json", goodListJSON)

	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if ds.Name != "user-list" {
		t.Errorf("Name = %q, want %q", ds.Name, "user-list")
	}
	if len(ds.Questions) != 1 {
		t.Errorf("len(Questions) = %d, want 1", len(ds.Questions))
	}
}

func TestLoadFileRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not JSON", `{nope`, "invalid JSON"},
		{"missing name", `{"questions": []}`, "schema validation failed"},
		{
			"bad choice label",
			`{"name": "x", "questions": [{"number": 1, "word": "W",
			  "choices": {"A": "1", "B": "2", "C": "3", "E": "4"}, "answer": "A"}]}`,
			"schema validation failed",
		},
		{
			"answer outside A-D",
			`{"name": "x", "questions": [{"number": 1, "word": "W",
			  "choices": {"A": "1", "B": "2", "C": "3", "D": "4"}, "answer": "E"}]}`,
			"schema validation failed",
		},
		{
			"duplicate numbers pass schema but fail validation",
			`{"name": "x", "questions": [
			  {"number": 1, "word": "W", "choices": {"A": "1", "B": "2", "C": "3", "D": "4"}, "answer": "A"},
			  {"number": 1, "word": "V", "choices": {"A": "1", "B": "2", "C": "3", "D": "4"}, "answer": "B"}]}`,
			"duplicate question number",
		},
	}
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeList(t, dir, "bad.json", tt.body)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("LoadFile = nil error, want failure")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "user.json", goodListJSON)
	writeList(t, dir, "notes.txt", "not a list")

	reg := NewRegistry()
	if err := LoadDir(reg, dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if _, err := reg.Resolve("user-list"); err != nil {
		t.Errorf("Resolve(user-list): %v", err)
	}
	if got := len(reg.Names()); got != 1 {
		t.Errorf("loaded %d lists, want 1 (non-JSON files skipped)", got)
	}
}

func TestLoadDirMissing(t *testing.T) {
	reg := NewRegistry()
	if err := LoadDir(reg, filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("LoadDir on missing dir: %v", err)
	}
}
