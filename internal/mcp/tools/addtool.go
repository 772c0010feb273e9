// Package tools contains the MCP tool implementations for wpjson-seven.
package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool registers a tool after checking that the zero value of its output
// type passes the schema the SDK infers for it. A nil slice serializes as
// null while the inferred schema says "array", and that mismatch would
// otherwise only show up on the first call that returns nothing.
//
// Panics if the check fails.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	if err := CheckOutputSchema[Out](); err != nil {
		panic(fmt.Sprintf("AddTool %q: %v", t.Name, err))
	}
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutputSchema reports whether the zero value of T fails the JSON
// schema inferred from T, or whether T contains json.RawMessage fields
// (inferred as arrays of integers but serialized as arbitrary JSON).
// It returns nil for the untyped any and when inference itself fails; the
// SDK reports the latter on registration.
func CheckOutputSchema[T any]() error {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return nil
	}
	elem := rt
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	if paths := rawMessageFields(elem, nil, make(map[reflect.Type]bool)); len(paths) > 0 {
		return fmt.Errorf("output type %s contains json.RawMessage at %s; use any and decode the raw JSON into it",
			elem, strings.Join(paths, ", "))
	}

	schema, err := jsonschema.ForType(elem, &jsonschema.ForOptions{})
	if err != nil {
		return nil
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return nil
	}

	data, err := json.Marshal(reflect.Zero(elem).Interface())
	if err != nil {
		return nil
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	if err := resolved.Validate(&v); err != nil {
		return fmt.Errorf("zero value of output type %s fails schema validation: %w (JSON: %s); "+
			"add `omitzero` to nil-defaulting slice fields or initialize them", elem, err, data)
	}
	return nil
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// rawMessageFields walks t and returns the dotted paths of json.RawMessage
// fields, slice elements and map values.
func rawMessageFields(t reflect.Type, path []string, visited map[reflect.Type]bool) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == rawMessageType {
		return []string{strings.Join(path, ".")}
	}
	if visited[t] {
		return nil
	}
	visited[t] = true
	defer delete(visited, t)

	var found []string
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			found = append(found, rawMessageFields(f.Type, append(path, f.Name), visited)...)
		}
	case reflect.Slice, reflect.Array:
		found = append(found, rawMessageFields(t.Elem(), append(path, "[]"), visited)...)
	case reflect.Map:
		found = append(found, rawMessageFields(t.Elem(), append(path, "[value]"), visited)...)
	}
	return found
}
