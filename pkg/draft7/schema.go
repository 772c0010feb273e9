// Package draft7 holds the JSON Schema draft-07 document model produced by
// the converter. Only the keywords the converter emits are modelled.
package draft7

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SchemaURI is the $schema value of every generated root document.
const SchemaURI = "http://json-schema.org/draft-07/schema#"

// Primitive type names.
const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNull    = "null"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
)

// AllTypes is the union of every draft-07 primitive type, in the order the
// converter emits it.
var AllTypes = TypeSet{TypeArray, TypeBoolean, TypeInteger, TypeNull, TypeNumber, TypeObject, TypeString}

// Properties maps names to schemas, keeping insertion order.
type Properties struct {
	*orderedmap.OrderedMap[string, *Schema]
}

// NewProperties returns an empty ordered property map.
func NewProperties() *Properties {
	return &Properties{OrderedMap: orderedmap.New[string, *Schema]()}
}

// MarshalJSON writes the pairs in insertion order. Strings are not
// HTML-escaped here; an enclosing json.Marshal still escapes them, while an
// Encoder with SetEscapeHTML(false) leaves them as they are.
func (p *Properties) MarshalJSON() ([]byte, error) {
	if p == nil || p.OrderedMap == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		// Encode terminates every value with a newline.
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for pair, first := p.Oldest(), true; pair != nil; pair, first = pair.Next(), false {
		if !first {
			buf.WriteByte(',')
		}
		if err := encode(pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(pair.Value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping its key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	p.OrderedMap = orderedmap.New[string, *Schema]()
	return p.OrderedMap.UnmarshalJSON(data)
}

// Schema is a draft-07 schema node. The root document uses the same type.
// Field order is the JSON output order.
type Schema struct {
	ID          string      `json:"$id,omitempty"`
	Schema      string      `json:"$schema,omitempty"`
	Ref         string      `json:"$ref,omitempty"`
	Type        TypeSet     `json:"type,omitempty"`
	Format      string      `json:"format,omitempty"`
	Description string      `json:"description,omitempty"`
	Default     any         `json:"default,omitempty"`
	Enum        []any       `json:"enum,omitzero"`
	ReadOnly    *bool       `json:"readOnly,omitempty"`
	Items       *Schema     `json:"items,omitempty"`
	Properties  *Properties `json:"properties,omitempty"`
	Required    []string    `json:"required,omitempty"`
	Definitions *Properties `json:"definitions,omitempty"`
}

// DefinitionRef returns the $ref pointing at definitions[name].
func DefinitionRef(name string) string {
	return "#/definitions/" + name
}

// Property returns the named property, or nil.
func (s *Schema) Property(name string) *Schema {
	if s == nil || s.Properties == nil {
		return nil
	}
	p, _ := s.Properties.Get(name)
	return p
}

// Definition returns the named definition, or nil.
func (s *Schema) Definition(name string) *Schema {
	if s == nil || s.Definitions == nil {
		return nil
	}
	d, _ := s.Definitions.Get(name)
	return d
}

// TypeSet is the value of the "type" keyword: a single name, or a union.
type TypeSet []string

// MarshalJSON writes a single name as a string and a union as an array.
func (t TypeSet) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts a string or an array of strings.
func (t *TypeSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = nil
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = TypeSet{s}
		return nil
	}
	var names []string
	if err := json.Unmarshal(trimmed, &names); err != nil {
		return fmt.Errorf("decoding type: %w", err)
	}
	*t = TypeSet(names)
	return nil
}
