package wpschema

import (
	"bytes"
	"slices"
	"strings"
)

// Document is the root of a discovery document.
type Document struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	Home        string      `json:"home,omitempty"`
	Namespaces  []string    `json:"namespaces,omitempty"`
	Routes      Map[*Route] `json:"routes"`
}

// Route describes one route pattern, e.g. "/wc/v3/products/(?P<id>[\d]+)".
type Route struct {
	Namespace string     `json:"namespace,omitempty"`
	Methods   []string   `json:"methods"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Supports reports whether the route answers any of the given methods.
func (r *Route) Supports(methods ...string) bool {
	return intersects(r.Methods, methods)
}

// Endpoint is one method-specific variant of a route.
type Endpoint struct {
	Methods []string `json:"methods"`
	Args    Fields   `json:"args"`
}

// Supports reports whether the endpoint answers any of the given methods.
func (e *Endpoint) Supports(methods ...string) bool {
	return intersects(e.Methods, methods)
}

// Fields maps argument names to their descriptors in declaration order.
type Fields = Map[*Field]

// Field describes a single request argument.
type Field struct {
	Type        Type     `json:"type,omitempty"`
	Required    Flag     `json:"required,omitempty"`
	Description string   `json:"description,omitempty"`
	Default     any      `json:"default,omitempty"`
	Enum        []any    `json:"enum,omitempty"`
	Context     []string `json:"context,omitempty"`
	ReadOnly    *bool    `json:"readonly,omitempty"`
	Items       *Field   `json:"items,omitempty"`
	Properties  Fields   `json:"properties,omitzero"`
}

// Flag is a lenient boolean. Any JSON value other than true decodes to false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

// NormalizeMethods upper-cases, trims and de-duplicates HTTP method tokens.
// An empty result defaults to POST.
func NormalizeMethods(methods ...string) []string {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" || slices.Contains(out, m) {
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		out = append(out, "POST")
	}
	return out
}

func intersects(declared, requested []string) bool {
	for _, m := range declared {
		for _, r := range requested {
			if strings.EqualFold(strings.TrimSpace(m), strings.TrimSpace(r)) {
				return true
			}
		}
	}
	return false
}
