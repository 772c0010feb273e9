package tools

import (
	"context"

	"github.com/usestring/wpjson-seven/internal/cache"
	"github.com/usestring/wpjson-seven/internal/config"
	"github.com/usestring/wpjson-seven/internal/source"
	"github.com/usestring/wpjson-seven/internal/validate"
	"github.com/usestring/wpjson-seven/pkg/converter"
	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Loader     *source.Loader
	Config     *config.Config
	Validators *cache.ValidatorCache // optional
}

// NewConverter creates a converter honoring the configured depth limit.
// onCollision may be nil.
func (d *Deps) NewConverter(onCollision func(name string)) *converter.Converter {
	opts := []converter.Option{converter.WithCollisionHandler(onCollision)}
	if d.Config != nil {
		opts = append(opts, converter.WithMaxDepth(d.Config.MaxDepth))
	}
	return converter.New(opts...)
}

// LoadDocument loads the discovery document named by src, falling back to
// the configured default site when src is empty.
func (d *Deps) LoadDocument(ctx context.Context, src string) (*wpschema.Document, error) {
	var fallback string
	if d.Config != nil {
		fallback = d.Config.SchemaSite
	}
	resource, err := source.Pick(src, fallback)
	if err != nil {
		return nil, ErrInvalidInput("source is required (no default site configured)")
	}

	doc, err := d.Loader.Load(ctx, resource)
	if err != nil {
		return nil, WrapError(err)
	}
	return doc, nil
}

// Validator returns a validator for schema, from the cache when one is set.
func (d *Deps) Validator(schema *draft7.Schema) (*validate.Validator, error) {
	if d.Validators != nil {
		return d.Validators.Get(schema)
	}
	return validate.New(schema)
}
