package mcpsrv

import (
	"github.com/usestring/wpjson-seven/internal/config"
	"github.com/usestring/wpjson-seven/internal/source"
	"github.com/usestring/wpjson-seven/pkg/client"
	"github.com/usestring/wpjson-seven/pkg/converter"
)

// Deps contains the dependencies available to custom tools.
type Deps struct {
	Client *client.Client
	Loader *source.Loader
	Config *config.Config
}

// Converter returns a converter honoring the configured depth limit.
func (d *Deps) Converter() *converter.Converter {
	return converter.New(converter.WithMaxDepth(d.Config.MaxDepth))
}
