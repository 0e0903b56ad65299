package snapshots

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// writeJSONAtomic marshals payload as indented JSON and writes it via a temp
// file and rename, so readers never observe a partial file. Returns false
// without touching anything when the target already holds identical bytes.
func writeJSONAtomic(path string, payload any) (bool, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return false, err
	}

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, path); err != nil {
		return false, err
	}
	return true, nil
}
