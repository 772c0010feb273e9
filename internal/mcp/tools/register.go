package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "wpjson_list_routes",
		Description: "List the routes of a WordPress REST discovery document (/wp-json/) with their methods and derived entity names. Use the route values with wpjson_convert or wpjson_validate.",
	}, ToolListRoutes(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "wpjson_convert",
		Description: "Convert the arguments a route accepts for a method into a JSON Schema draft-07 document. Nested object arrays become definitions referenced with $ref. Pass jq to extract parts of the schema instead of returning it whole.",
	}, ToolConvert(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "wpjson_validate",
		Description: "Validate a JSON request body against the draft-07 schema generated for a route and method. Returns valid plus one error per failing location.",
	}, ToolValidate(d))
}
