// Package cache provides caching utilities for the MCP server.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/wpjson-seven/internal/validate"
	"github.com/usestring/wpjson-seven/pkg/draft7"
)

// ValidatorCache provides thread-safe LRU caching of compiled validators,
// keyed by the content of the schema they were compiled from.
type ValidatorCache struct {
	cache *lru.Cache[string, *validate.Validator]
}

// NewValidatorCache creates a new LRU cache with the specified maximum number of items.
func NewValidatorCache(maxItems int) (*ValidatorCache, error) {
	c, err := lru.New[string, *validate.Validator](maxItems)
	if err != nil {
		return nil, err
	}
	return &ValidatorCache{cache: c}, nil
}

// Get returns the validator for schema, compiling and caching it on a miss.
func (c *ValidatorCache) Get(schema *draft7.Schema) (*validate.Validator, error) {
	key, err := Key(schema)
	if err != nil {
		return nil, err
	}
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}

	v, err := validate.New(schema)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, v)
	return v, nil
}

// Len returns the current number of items in the cache.
func (c *ValidatorCache) Len() int {
	return c.cache.Len()
}

// Key returns the SHA-256 of the schema's JSON encoding. Schemas generated
// from the same arguments produce the same key.
func Key(schema *draft7.Schema) (string, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("hashing schema: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
