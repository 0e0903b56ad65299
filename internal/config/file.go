package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// mergeFile layers a JSON5 config file over cfg. A sibling <name>.local.<ext>
// file, when present, is merged on top so machine-specific overrides stay out
// of version control. A missing primary file is not an error.
func mergeFile(cfg *Config, path string) error {
	loaded := false

	for _, candidate := range []string{path, localPath(path)} {
		raw, err := os.ReadFile(candidate)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}

		var layer Config
		if err := json5.Unmarshal(raw, &layer); err != nil {
			return fmt.Errorf("parse %s: %w", candidate, err)
		}
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return fmt.Errorf("merge %s: %w", candidate, err)
		}
		loaded = true
	}

	if !loaded {
		return fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
	}
	return nil
}

func localPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+".local"+ext)
}
