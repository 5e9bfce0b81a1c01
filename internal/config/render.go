package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of [Render].
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Render encodes the full settings surface, Extra names included, in the
// order the settings are declared. Extra names follow in lexical order.
func Render(s *Settings, format Format) ([]byte, error) {
	doc, err := encodeDocument(s)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON, "":
		var out bytes.Buffer
		if err := json.Indent(&out, doc, "", "  "); err != nil {
			return nil, fmt.Errorf("error indenting settings: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	case FormatYAML:
		return jsonToYAML(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrRenderFormat, format)
	}
}

// encodeDocument marshals s and splices Extra into the top-level object.
func encodeDocument(s *Settings) ([]byte, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}
	if len(s.Extra) == 0 {
		return encoded, nil
	}

	var buf bytes.Buffer
	buf.Write(encoded[:len(encoded)-1])
	for _, name := range slices.Sorted(maps.Keys(s.Extra)) {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("error encoding setting name %s: %w", name, err)
		}
		value, err := json.Marshal(s.Extra[name])
		if err != nil {
			return nil, fmt.Errorf("error encoding setting %s: %w", name, err)
		}

		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// jsonToYAML re-encodes a JSON document as block-style YAML, keeping key order.
func jsonToYAML(doc []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return nil, fmt.Errorf("error converting settings to yaml: %w", err)
	}
	blockStyle(&node)

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("error encoding settings as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding settings as yaml: %w", err)
	}

	return out.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, child := range n.Content {
		blockStyle(child)
	}
}
