package wordlist

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/*.json
var builtinFS embed.FS

// BuiltinRegistry returns a registry populated with the word lists
// shipped inside the binary. The embedded lists are trusted but still
// validated so a bad data edit fails loudly at startup.
func BuiltinRegistry() (*Registry, error) {
	reg := NewRegistry()

	entries, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read builtin lists: %w", err)
	}
	for _, entry := range entries {
		raw, err := builtinFS.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin list %s: %w", entry.Name(), err)
		}
		ds, err := decodeDataset(raw)
		if err != nil {
			return nil, fmt.Errorf("builtin list %s: %w", entry.Name(), err)
		}
		reg.Add(ds)
	}
	return reg, nil
}

// LoadFile parses and validates a single word list document.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	ds, err := decodeDataset(raw)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", filepath.Base(path), err)
	}
	return ds, nil
}

// LoadDir adds every .json word list in dir to the registry. A missing
// directory is not an error; a malformed list is.
func LoadDir(reg *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read lists dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ds, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		reg.Add(ds)
	}
	return nil
}

// decodeDataset validates raw JSON against the dataset schema, decodes
// it, and runs the structural checks the schema cannot express.
func decodeDataset(raw []byte) (*Dataset, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if ds.Definitions == nil {
		ds.Definitions = make(map[string]string)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}
