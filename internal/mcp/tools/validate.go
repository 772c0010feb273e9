package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateInput is the input for wpjson_validate.
type ValidateInput struct {
	Source  string `json:"source,omitempty" jsonschema:"Discovery document: site URL or local file path (default: configured site)"`
	Route   string `json:"route" jsonschema:"Route whose request body is validated, e.g. /wc/v3/products"`
	Method  string `json:"method,omitempty" jsonschema:"Request method (default: POST)"`
	Payload any    `json:"payload" jsonschema:"JSON request body to validate"`
}

// ValidateOutput is the output for wpjson_validate.
type ValidateOutput struct {
	Entity string   `json:"entity"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitzero"`
}

// ToolValidate validates a request payload against the schema generated
// for a route.
func ToolValidate(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateInput) (*sdkmcp.CallToolResult, ValidateOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateInput) (*sdkmcp.CallToolResult, ValidateOutput, error) {
		if strings.TrimSpace(input.Route) == "" {
			return nil, ValidateOutput{}, ErrInvalidInput("route is required")
		}

		doc, err := d.LoadDocument(ctx, input.Source)
		if err != nil {
			return nil, ValidateOutput{}, err
		}

		schema, err := d.NewConverter(nil).Generate(doc, input.Route, input.Method, "")
		if err != nil {
			return nil, ValidateOutput{}, WrapError(err)
		}

		v, err := d.Validator(schema)
		if err != nil {
			return nil, ValidateOutput{}, ErrInvalidInput(err.Error())
		}

		result := v.ValidateValue(input.Payload)
		return nil, ValidateOutput{
			Entity: strings.TrimSuffix(schema.ID, ".schema.json"),
			Valid:  result.Valid,
			Errors: result.Errors,
		}, nil
	}
}
