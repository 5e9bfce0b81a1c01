package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// overrideExtensions are tried in order inside every search path directory.
var overrideExtensions = []string{".json", ".yaml", ".yml"}

// overrideDocument is a decoded override file: setting name to raw JSON value.
type overrideDocument struct {
	path   string
	values map[string]json.RawMessage
}

// findOverride returns the first override file on the search path. The
// boolean is false when none of the directories holds one.
func findOverride(dirs []string) (string, bool) {
	for _, dir := range dirs {
		for _, ext := range overrideExtensions {
			path := filepath.Join(dir, overrideModuleName+ext)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}

			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
			return path, true
		}
	}

	return "", false
}

func readOverride(path string) (*overrideDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading override file: %w", err)
	}

	doc := &overrideDocument{path: path}

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &doc.values); err != nil {
			return nil, fmt.Errorf("error decoding override %s: %w", path, err)
		}
	case ".yaml", ".yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("error decoding override %s: %w", path, err)
		}

		doc.values = make(map[string]json.RawMessage, len(raw))
		for name, value := range raw {
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("error converting override value %s: %w", name, err)
			}
			doc.values[name] = encoded
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrOverrideFormat, path)
	}

	return doc, nil
}

// apply returns a copy of s in which every name defined by the document
// replaces the assembled value wholesale. Names Settings does not know are
// kept in Extra.
func (d *overrideDocument) apply(s *Settings) (*Settings, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &merged); err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}

	extra := maps.Clone(s.Extra)
	for name, value := range d.values {
		if _, known := merged[name]; known {
			merged[name] = value
			continue
		}

		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, fmt.Errorf("error decoding override value %s: %w", name, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[name] = v
	}

	encoded, err = json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}

	result := new(Settings)
	if err := json.Unmarshal(encoded, result); err != nil {
		return nil, fmt.Errorf("error applying override %s: %w", d.path, err)
	}
	result.Extra = extra

	return result, nil
}
