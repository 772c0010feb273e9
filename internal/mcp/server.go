// Package mcp serves the schema tools over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wpjson-seven/internal/mcp/tools"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "wpjson-seven"

// Server wraps the MCP server with the wpjson tools.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps

	version            string
	enableBuiltinTools bool

	// Custom extension registration callbacks
	customRegistrations []func(*sdkmcp.Server)
}

// ServerOption is a functional option for configuring the Server.
type ServerOption func(*Server)

// WithBuiltinTools enables the wpjson_* tools.
func WithBuiltinTools() ServerOption {
	return func(s *Server) {
		s.enableBuiltinTools = true
	}
}

// WithVersion sets the implementation version reported to clients.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// WithCustomRegistration adds a custom registration callback.
// The callback receives the underlying MCP server and can register
// tools, prompts, or resources directly.
func WithCustomRegistration(fn func(*sdkmcp.Server)) ServerOption {
	return func(s *Server) {
		s.customRegistrations = append(s.customRegistrations, fn)
	}
}

// NewServer creates a new MCP server with the provided dependencies and options.
func NewServer(deps *tools.Deps, opts ...ServerOption) (*Server, error) {
	if deps == nil {
		return nil, fmt.Errorf("deps is required")
	}
	if deps.Loader == nil {
		return nil, fmt.Errorf("deps.Loader is required")
	}

	s := &Server{deps: deps, version: "dev"}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    ServerName,
			Version: s.version,
		},
		nil,
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())

	if s.enableBuiltinTools {
		tools.Register(s.mcpServer, deps)
	}

	for _, fn := range s.customRegistrations {
		fn(s.mcpServer)
	}

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
