package tools

import (
	"context"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wpjson-seven/internal/output"
)

// ConvertInput is the input for wpjson_convert.
type ConvertInput struct {
	Source     string `json:"source,omitempty" jsonschema:"Discovery document: site URL or local file path (default: configured site)"`
	Route      string `json:"route" jsonschema:"Route to convert, e.g. /wc/v3/products"`
	Method     string `json:"method,omitempty" jsonschema:"Request method: GET, POST, PUT, PATCH or DELETE (default: POST)"`
	EntityName string `json:"entity_name,omitempty" jsonschema:"Entity name for $id (default: derived from the route)"`
	JQ         string `json:"jq,omitempty" jsonschema:"Optional jq expression applied to the generated schema"`
}

// ConvertOutput is the output for wpjson_convert.
type ConvertOutput struct {
	Entity     string   `json:"entity"`
	Schema     any      `json:"schema,omitempty"`
	Values     []any    `json:"values,omitzero"`
	Collisions []string `json:"collisions,omitzero"`
}

// ToolConvert converts the arguments of a route into a draft-07 schema.
func ToolConvert(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ConvertInput) (*sdkmcp.CallToolResult, ConvertOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ConvertInput) (*sdkmcp.CallToolResult, ConvertOutput, error) {
		if strings.TrimSpace(input.Route) == "" {
			return nil, ConvertOutput{}, ErrInvalidInput("route is required")
		}

		doc, err := d.LoadDocument(ctx, input.Source)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		var out ConvertOutput
		conv := d.NewConverter(func(name string) {
			out.Collisions = append(out.Collisions, name)
		})

		schema, err := conv.Generate(doc, input.Route, input.Method, input.EntityName)
		if err != nil {
			return nil, ConvertOutput{}, WrapError(err)
		}
		out.Entity = strings.TrimSuffix(schema.ID, ".schema.json")

		if input.JQ == "" {
			out.Schema = schema
			return nil, out, nil
		}

		values, err := output.Filter(schema, input.JQ)
		if err != nil {
			slog.Debug("jq filter failed",
				slog.String("route", input.Route),
				slog.String("error", err.Error()),
			)
			return nil, ConvertOutput{}, ErrInvalidInput(err.Error())
		}
		out.Values = values
		return nil, out, nil
	}
}
