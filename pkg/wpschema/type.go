package wpschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies the declared type of a field.
type Kind int

const (
	KindMixed Kind = iota
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindDateTime
	KindTime
	KindDate
	// KindPassthrough covers tokens outside the known set and multi-token
	// unions. They are carried verbatim.
	KindPassthrough
)

var kindTokens = map[string]Kind{
	"mixed":     KindMixed,
	"string":    KindString,
	"integer":   KindInteger,
	"number":    KindNumber,
	"boolean":   KindBoolean,
	"array":     KindArray,
	"object":    KindObject,
	"date-time": KindDateTime,
	"time":      KindTime,
	"date":      KindDate,
}

func (k Kind) String() string {
	for token, kind := range kindTokens {
		if kind == k {
			return token
		}
	}
	return "passthrough"
}

// Type is the declared type of a field: no token (mixed), a single token, or
// a list of tokens as some plugins emit.
type Type []string

// TypeOf builds a Type from tokens.
func TypeOf(tokens ...string) Type {
	return Type(tokens)
}

// Kind returns the classification of t.
func (t Type) Kind() Kind {
	switch len(t) {
	case 0:
		return KindMixed
	case 1:
		if t[0] == "" {
			return KindMixed
		}
		if k, ok := kindTokens[t[0]]; ok {
			return k
		}
	}
	return KindPassthrough
}

// Is reports whether t classifies as k.
func (t Type) Is(k Kind) bool {
	return t.Kind() == k
}

func (t Type) String() string {
	if len(t) == 0 {
		return "mixed"
	}
	return strings.Join(t, "|")
}

// UnmarshalJSON accepts null, a string or an array of strings. An empty
// string is treated as absent.
func (t *Type) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = nil
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if s == "" {
			*t = nil
			return nil
		}
		*t = Type{s}
		return nil
	case '[':
		var tokens []string
		if err := json.Unmarshal(trimmed, &tokens); err != nil {
			return fmt.Errorf("decoding type list: %w", err)
		}
		*t = Type(tokens)
		return nil
	default:
		return fmt.Errorf("unsupported type value %s", trimmed)
	}
}

// MarshalJSON writes a single token as a string and several as an array.
func (t Type) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}
