// Package output renders generated schemas as JSON or YAML, applies jq
// filters to them, and writes them to disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/usestring/wpjson-seven/internal/query"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Extension returns the file suffix used by WriteFile.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".schema.yaml"
	}
	return ".schema.json"
}

// Marshal encodes v in the given format. JSON uses 4-space indentation and
// leaves HTML characters unescaped; YAML keeps the key order of the JSON form.
func Marshal(v any, format Format) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	if format != FormatYAML {
		return buf.Bytes(), nil
	}
	return jsonToYAML(buf.Bytes())
}

// jsonToYAML re-renders a JSON document as block-style YAML. Decoding into a
// yaml.Node keeps mapping order, which a map round trip would lose.
func jsonToYAML(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON as YAML: %w", err)
	}
	clearStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles inherited from JSON syntax.
// The encoder still quotes strings that would otherwise change type.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// Filter runs a jq expression over the JSON form of v and returns every
// value it produces.
func Filter(v any, expression string) ([]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	result, err := query.NewEngine().Query(data, expression, false, 0)
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("jq: %s", strings.Join(result.Errors, "; "))
	}
	return result.Values, nil
}

// Path returns the file WriteFile writes for entity.
func Path(dir, entity string, format Format) string {
	return filepath.Join(dir, entity+format.Extension())
}

// WriteFile writes v to <dir>/<entity>.schema.<ext>, creating dir as needed.
// The document is written to a temporary file and renamed into place, so a
// failed write never leaves a truncated schema behind.
func WriteFile(dir, entity string, v any, format Format) (string, error) {
	data, err := Marshal(v, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := Path(dir, entity, format)
	tmp, err := os.CreateTemp(dir, "."+entity+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ReadFile reads a schema written by WriteFile back into generic JSON values
// (map[string]any, []any, float64, string, bool, nil).
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		// Normalize YAML scalars (int, map[string]any) through JSON.
		data, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	var out map[string]any
	if err := gojson.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return out, nil
}
