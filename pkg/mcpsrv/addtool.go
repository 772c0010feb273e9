package mcpsrv

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wpjson-seven/internal/mcp/tools"
)

// AddTool registers a tool with the server, panicking at registration time
// when the zero value of Out would fail the output schema the SDK infers
// (typically a nil slice without omitzero).
//
// Use this instead of [sdkmcp.AddTool] to get the additional check.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools.AddTool(srv, t, h)
}
