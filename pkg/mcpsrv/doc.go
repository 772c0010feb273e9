// Package mcpsrv provides an embeddable MCP server exposing the wpjson
// schema tools.
//
// # Basic Usage
//
//	server, err := mcpsrv.NewServer(client.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Tools that need the discovery loader or converter settings get them
// through Deps:
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "count_required", Description: "Count required arguments of a route"},
//	    func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, in CountInput) (*mcp.CallToolResult, CountOutput, error) {
//	        return func(ctx context.Context, req *mcp.CallToolRequest, in CountInput) (*mcp.CallToolResult, CountOutput, error) {
//	            doc, err := d.Loader.Load(ctx, in.Source)
//	            if err != nil {
//	                return nil, CountOutput{}, err
//	            }
//	            schema, err := d.Converter().Generate(doc, in.Route, in.Method, "")
//	            if err != nil {
//	                return nil, CountOutput{}, err
//	            }
//	            return nil, CountOutput{Required: len(schema.Required)}, nil
//	        }
//	    },
//	)
//
// # Configuration
//
// Configuration defaults to the environment (see WP_SCHEMA_SITE, MAX_DEPTH,
// LOG_LEVEL); WithConfig replaces it. Logging is only installed when
// WithLogLevel or WithLogFile is given, so an embedding program keeps its own.
package mcpsrv
