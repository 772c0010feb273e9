package wpschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a JSON object that remembers key insertion order.
// An empty JSON array or null decodes to an empty map.
type Map[V any] struct {
	*orderedmap.OrderedMap[string, V]
}

// NewMap returns an empty Map ready for use.
func NewMap[V any]() Map[V] {
	return Map[V]{OrderedMap: orderedmap.New[string, V]()}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	m.OrderedMap = orderedmap.New[string, V]()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		if len(list) > 0 {
			return fmt.Errorf("expected object, got array of %d elements", len(list))
		}
		return nil
	}
	return m.OrderedMap.UnmarshalJSON(trimmed)
}

// MarshalJSON implements json.Marshaler.
func (m Map[V]) MarshalJSON() ([]byte, error) {
	if m.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return m.OrderedMap.MarshalJSON()
}

// Len returns the number of entries. It is safe on a zero Map.
func (m Map[V]) Len() int {
	if m.OrderedMap == nil {
		return 0
	}
	return m.OrderedMap.Len()
}

// Get returns the value stored under key. It is safe on a zero Map.
func (m Map[V]) Get(key string) (V, bool) {
	if m.OrderedMap == nil {
		var zero V
		return zero, false
	}
	return m.OrderedMap.Get(key)
}

// Keys returns the keys in insertion order.
func (m Map[V]) Keys() []string {
	keys := make([]string, 0, m.Len())
	if m.OrderedMap == nil {
		return keys
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order and stops at the first
// error, which it returns.
func (m Map[V]) Each(fn func(key string, value V) error) error {
	if m.OrderedMap == nil {
		return nil
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
