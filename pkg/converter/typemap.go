package converter

import (
	"slices"

	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// MapType maps a declared source type to a draft-07 type and format.
// Unknown tokens are passed through unchanged; MapType never fails.
func MapType(t wpschema.Type) (draft7.TypeSet, string) {
	switch t.Kind() {
	case wpschema.KindMixed:
		return slices.Clone(draft7.AllTypes), ""
	case wpschema.KindDateTime, wpschema.KindTime, wpschema.KindDate:
		return draft7.TypeSet{draft7.TypeString}, t[0]
	default:
		return draft7.TypeSet(slices.Clone(t)), ""
	}
}

// typedNode returns a fresh node carrying the mapped type of t.
func typedNode(t wpschema.Type) *draft7.Schema {
	types, format := MapType(t)
	return &draft7.Schema{Type: types, Format: format}
}
