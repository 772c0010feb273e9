package converter

import (
	"bytes"
	"encoding/json"

	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// DefaultMaxDepth bounds how deeply array items may nest object properties.
const DefaultMaxDepth = 64

// Converter generates draft-07 schemas. The zero value is not usable; call New.
type Converter struct {
	maxDepth    int
	onCollision func(name string)
}

// Option configures a Converter.
type Option func(*Converter)

// WithMaxDepth sets the nesting limit for array-of-object items.
// Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(c *Converter) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithCollisionHandler registers fn to be told about a definition that was
// dropped because an earlier, different definition already used its name.
// The first definition written under a name always wins.
func WithCollisionHandler(fn func(name string)) Option {
	return func(c *Converter) {
		c.onCollision = fn
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate converts the arguments of route/method with the default options.
func Generate(doc *wpschema.Document, route, method, entityName string) (*draft7.Schema, error) {
	return New().Generate(doc, route, method, entityName)
}

// Generate builds the draft-07 document for the request body of route when
// called with method (POST when empty). entityName names the schema; when
// empty it is derived from the route with NameFromRoute.
func (c *Converter) Generate(doc *wpschema.Document, route, method, entityName string) (*draft7.Schema, error) {
	if entityName == "" {
		name, ok := NameFromRoute(route)
		if !ok {
			return nil, &RouteError{Route: route, Err: ErrEntityName}
		}
		entityName = name
	}

	methods := wpschema.NormalizeMethods(method)
	args, ok, err := ResolveRoute(doc, route, methods...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RouteError{Route: route, Methods: methods, Err: ErrNoRouteArgs}
	}

	return c.GenerateFromFields(args, entityName)
}

// GenerateFromFields builds the draft-07 document for an argument map that
// was already resolved.
func (c *Converter) GenerateFromFields(args wpschema.Fields, entityName string) (*draft7.Schema, error) {
	if entityName == "" {
		return nil, ErrEntityName
	}

	root := &draft7.Schema{
		ID:         entityName + ".schema.json",
		Schema:     draft7.SchemaURI,
		Type:       draft7.TypeSet{draft7.TypeObject},
		Properties: draft7.NewProperties(),
	}

	var definitions []Definition
	err := args.Each(func(name string, field *wpschema.Field) error {
		fs, err := c.translateField(name, field, 0)
		if err != nil {
			return err
		}
		root.Properties.Set(name, fs.Schema)
		if fs.Required {
			root.Required = append(root.Required, name)
		}
		definitions = append(definitions, fs.Definitions...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	root.Definitions = c.mergeDefinitions(definitions)
	return root, nil
}

func (c *Converter) mergeDefinitions(definitions []Definition) *draft7.Properties {
	if len(definitions) == 0 {
		return nil
	}

	merged := draft7.NewProperties()
	for _, def := range definitions {
		existing, ok := merged.Get(def.Name)
		if !ok {
			merged.Set(def.Name, def.Schema)
			continue
		}
		if c.onCollision != nil && !sameSchema(existing, def.Schema) {
			c.onCollision(def.Name)
		}
	}
	return merged
}

func sameSchema(a, b *draft7.Schema) bool {
	left, err := json.Marshal(a)
	if err != nil {
		return false
	}
	right, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}
