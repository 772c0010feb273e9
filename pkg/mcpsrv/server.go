package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wpjson-seven/internal/cache"
	"github.com/usestring/wpjson-seven/internal/config"
	"github.com/usestring/wpjson-seven/internal/logging"
	"github.com/usestring/wpjson-seven/internal/mcp"
	"github.com/usestring/wpjson-seven/internal/mcp/tools"
	"github.com/usestring/wpjson-seven/internal/source"
	"github.com/usestring/wpjson-seven/pkg/client"
)

// Server is the wpjson MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server that loads discovery documents with c.
func NewServer(c *client.Client, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}

	cfg := &serverConfig{version: "dev"}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Load()
	}

	var logCleanup func() error
	if cfg.logLevel != "" || cfg.logFile != "" {
		logCfg := logging.Config{
			Level:      cfg.config.LogLevel,
			FilePath:   cfg.config.LogFile,
			MaxSizeMB:  cfg.config.LogMaxSizeMB,
			MaxBackups: cfg.config.LogMaxBackups,
			MaxAgeDays: cfg.config.LogMaxAgeDays,
			Compress:   cfg.config.LogCompress,
		}
		if cfg.logLevel != "" {
			logCfg.Level = cfg.logLevel
		}
		if cfg.logFile != "" {
			logCfg.FilePath = cfg.logFile
		}
		cleanup, err := logging.Setup(logCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to setup logging: %w", err)
		}
		logCleanup = cleanup
	}

	loader := source.NewLoader(c)
	deps := &Deps{
		Client: c,
		Loader: loader,
		Config: cfg.config,
	}

	var internalOpts []mcp.ServerOption
	internalOpts = append(internalOpts, mcp.WithVersion(cfg.version))
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	for _, fn := range cfg.registrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	toolDeps := &tools.Deps{Loader: loader, Config: cfg.config}
	if cfg.config.ValidatorCacheSize > 0 {
		validators, err := cache.NewValidatorCache(cfg.config.ValidatorCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create validator cache: %w", err)
		}
		toolDeps.Validators = validators
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		if logCleanup != nil {
			_ = logCleanup()
		}
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run serves on stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}

// MCPServer returns the underlying MCP server, e.g. to connect it to an
// in-memory transport in tests.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.internal.MCPServer()
}
