package wpschema

import (
	"bytes"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Parse decodes a discovery document from raw JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding discovery document: %w", err)
	}
	return &doc, nil
}

// Decode reads and decodes a discovery document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding discovery document: %w", err)
	}
	return &doc, nil
}

// ReadFile reads a discovery document from a local file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// IsEmptyPayload reports whether data holds no usable JSON value: nothing,
// null, an empty object or an empty array.
func IsEmptyPayload(data []byte) bool {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return len(bytes.TrimSpace(data)) == 0
	}
	switch buf.String() {
	case "", "null", "{}", "[]":
		return true
	}
	return false
}
