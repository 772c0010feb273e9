package converter

import (
	"fmt"
	"slices"

	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// Definition is a schema hoisted into the root document's definitions.
type Definition struct {
	Name   string
	Schema *draft7.Schema
}

// FieldSchema is the translation of a single field.
type FieldSchema struct {
	Name   string
	Schema *draft7.Schema
	// Required is set when the field must be listed in the enclosing
	// object's "required".
	Required bool
	// Definitions holds every definition the field produced, its own first,
	// then those hoisted out of nested items.
	Definitions []Definition
}

// TranslateField converts one field with the default options.
func TranslateField(name string, field *wpschema.Field) (*FieldSchema, error) {
	return New().TranslateField(name, field)
}

// TranslateField converts one field into a property schema plus the
// definitions it needs. The input is not modified.
func (c *Converter) TranslateField(name string, field *wpschema.Field) (*FieldSchema, error) {
	return c.translateField(name, field, 0)
}

func (c *Converter) translateField(name string, field *wpschema.Field, depth int) (*FieldSchema, error) {
	if field == nil {
		field = &wpschema.Field{}
	}

	node := typedNode(field.Type)
	node.Description = field.Description
	if field.Default != nil {
		node.Default = field.Default
	}
	if field.ReadOnly != nil {
		readOnly := *field.ReadOnly
		node.ReadOnly = &readOnly
	}
	if field.Enum != nil {
		node.Enum = slices.Clone(field.Enum)
		// enums imply a default by position
		if node.Default == nil && len(node.Enum) > 0 && node.Enum[0] != nil {
			node.Default = node.Enum[0]
		}
	}

	out := &FieldSchema{
		Name:     name,
		Schema:   node,
		Required: bool(field.Required),
	}

	if field.Items == nil {
		return out, nil
	}

	if field.Items.Type.Is(wpschema.KindObject) && field.Type.Is(wpschema.KindArray) {
		item, err := c.translateObject(field.Items.Type, field.Items.Properties, depth+1)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out.Definitions = append(out.Definitions, Definition{Name: name, Schema: item.schema})
		out.Definitions = append(out.Definitions, item.definitions...)
		node.Items = &draft7.Schema{Ref: draft7.DefinitionRef(name)}
		return out, nil
	}

	node.Items = typedNode(field.Items.Type)
	return out, nil
}

type objectSchema struct {
	schema      *draft7.Schema
	definitions []Definition
}

// translateObject builds the schema of an object from its field map as if it
// were a document of its own. Definitions found below are returned rather
// than kept on the object.
func (c *Converter) translateObject(t wpschema.Type, fields wpschema.Fields, depth int) (*objectSchema, error) {
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrMaxDepth, c.maxDepth)
	}

	out := &objectSchema{schema: typedNode(t)}
	if fields.Len() == 0 {
		return out, nil
	}

	out.schema.Properties = draft7.NewProperties()
	err := fields.Each(func(name string, field *wpschema.Field) error {
		fs, err := c.translateField(name, field, depth)
		if err != nil {
			return err
		}
		out.schema.Properties.Set(name, fs.Schema)
		if fs.Required {
			out.schema.Required = append(out.schema.Required, name)
		}
		out.definitions = append(out.definitions, fs.Definitions...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
