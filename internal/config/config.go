// Package config provides configuration loading from environment variables
// and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Defaults
const (
	DefaultHTTPClientTimeoutMs = 30000
	DefaultMaxDepth            = 64
	DefaultBatchWorkers        = 8
	DefaultValidatorCacheSize  = 64
)

// Config holds all configuration for the command line tool.
// Values are resolved once at startup and passed down explicitly.
type Config struct {
	SchemaSite        string        // WP_SCHEMA_SITE, default source when no argument is given
	SchemaInsecure    *bool         // WP_SCHEMA_INSECURE, nil when unset
	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 30000ms
	UserAgent         string        // WP_USER_AGENT, default "" (client default)
	MaxDepth          int           // MAX_DEPTH, default 64
	BatchWorkers      int           // BATCH_WORKERS, default 8

	// ValidatorCacheSize bounds the compiled validators kept by the MCP server.
	ValidatorCacheSize int // VALIDATOR_CACHE_SIZE, default 64

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "warn"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Insecure reports whether TLS verification should be skipped.
func (c *Config) Insecure() bool {
	return c.SchemaInsecure != nil && *c.SchemaInsecure
}

// Load reads configuration from the process environment, falling back to
// entries of ./.env. Process variables take precedence.
func Load() *Config {
	env := map[string]string{}
	if dotenv, err := godotenv.Read(DotEnvFile); err == nil {
		for k, v := range dotenv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return LoadFrom(env)
}

// LoadFrom builds a Config from an explicit variable map. Keys are matched
// as given and in lower case, so `wp_schema_site=` in a .env file works.
func LoadFrom(env map[string]string) *Config {
	s := source(env)
	return &Config{
		SchemaSite:        s.getString("WP_SCHEMA_SITE", ""),
		SchemaInsecure:    s.getOptionalBool("WP_SCHEMA_INSECURE"),
		HTTPClientTimeout: s.getDurationMs("HTTP_CLIENT_TIMEOUT_MS", DefaultHTTPClientTimeoutMs),
		UserAgent:         s.getString("WP_USER_AGENT", ""),
		MaxDepth:          s.getInt("MAX_DEPTH", DefaultMaxDepth),
		BatchWorkers:      s.getInt("BATCH_WORKERS", DefaultBatchWorkers),

		ValidatorCacheSize: s.getInt("VALIDATOR_CACHE_SIZE", DefaultValidatorCacheSize),

		LogLevel:      s.getString("LOG_LEVEL", "warn"),
		LogFile:       s.getString("LOG_FILE", ""),
		LogMaxSizeMB:  s.getInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: s.getInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: s.getInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   s.getBool("LOG_COMPRESS", true),
	}
}

type source map[string]string

func (s source) lookup(key string) string {
	if v := s[key]; v != "" {
		return v
	}
	return s[strings.ToLower(key)]
}

func (s source) getOptionalBool(key string) *bool {
	switch strings.ToLower(s.lookup(key)) {
	case "1", "true", "yes", "on":
		v := true
		return &v
	case "0", "false", "no", "off":
		v := false
		return &v
	}
	return nil
}

func (s source) getBool(key string, defaultVal bool) bool {
	if v := s.getOptionalBool(key); v != nil {
		return *v
	}
	return defaultVal
}

func (s source) getString(key, defaultVal string) string {
	if v := s.lookup(key); v != "" {
		return v
	}
	return defaultVal
}

func (s source) getInt(key string, defaultVal int) int {
	if v := s.lookup(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func (s source) getDurationMs(key string, defaultMs int) time.Duration {
	ms := s.getInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
