package mcpsrv

import (
	"context"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wpjson-seven/internal/config"
)

// serverConfig holds configuration built from options.
type serverConfig struct {
	config  *config.Config
	version string

	// Logging overrides
	logLevel string
	logFile  string

	disableBuiltinTools bool

	// Registration callbacks that preserve generic type info
	registrations []func(*mcp.Server)

	// Deferred tool registrations that need access to Deps
	deferredToolRegistrations []func(*mcp.Server, *Deps)
}

// Option configures the server.
type Option func(*serverConfig)

// WithConfig replaces the configuration loaded from the environment.
func WithConfig(c *config.Config) Option {
	return func(cfg *serverConfig) {
		cfg.config = c
	}
}

// WithVersion sets the version reported to MCP clients.
func WithVersion(version string) Option {
	return func(cfg *serverConfig) {
		cfg.version = version
	}
}

// WithLogLevel sets the log level (debug, info, warn, error) and installs
// the server's logger.
func WithLogLevel(level string) Option {
	return func(cfg *serverConfig) {
		cfg.logLevel = level
	}
}

// WithLogFile sets the log file path and installs the server's logger.
func WithLogFile(path string) Option {
	return func(cfg *serverConfig) {
		cfg.logFile = path
	}
}

// WithoutBuiltinTools disables the wpjson_* tools.
func WithoutBuiltinTools() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinTools = true
	}
}

// WithTool registers a custom tool with the server.
//
// The handler signature must match the MCP SDK pattern:
//
//	func(ctx context.Context, req *mcp.CallToolRequest, input T) (*mcp.CallToolResult, Out, error)
func WithTool[In, Out any](tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *mcp.Server) {
			AddTool(srv, tool, handler)
		})
	}
}

// WithDepsTool registers a custom tool whose handler is built from Deps.
func WithDepsTool[In, Out any](tool *mcp.Tool, builder func(*Deps) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.deferredToolRegistrations = append(cfg.deferredToolRegistrations, func(srv *mcp.Server, deps *Deps) {
			AddTool(srv, tool, builder(deps))
		})
	}
}

// WithPrompt registers a custom prompt with the server.
func WithPrompt(prompt *mcp.Prompt, handler func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *mcp.Server) {
			srv.AddPrompt(prompt, handler)
		})
	}
}
