// Package source resolves a user-supplied resource, a local file or a site
// URL, into a discovery document.
package source

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"github.com/usestring/wpjson-seven/pkg/client"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// ErrNoSource is returned when neither an argument nor WP_SCHEMA_SITE names
// a resource.
var ErrNoSource = errors.New(`specify resource as argument, otherwise use ".env" file with the entry "wp_schema_site=http://example.com/wp-json/"`)

var remotePattern = regexp.MustCompile(`^https?:`)

// IsRemote reports whether resource is fetched over HTTP.
func IsRemote(resource string) bool {
	return remotePattern.MatchString(resource)
}

// Pick returns the first non-empty resource, or ErrNoSource.
func Pick(resource, fallback string) (string, error) {
	if resource != "" {
		return resource, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrNoSource
}

// Loader loads discovery documents.
type Loader struct {
	client *client.Client
}

// NewLoader creates a Loader that fetches remote documents with c.
func NewLoader(c *client.Client) *Loader {
	return &Loader{client: c}
}

// Load fetches resource when it is an http(s) URL and reads it from disk
// otherwise. Failures are returned as *client.RetrievalError.
func (l *Loader) Load(ctx context.Context, resource string) (*wpschema.Document, error) {
	start := time.Now()

	var doc *wpschema.Document
	var err error
	if IsRemote(resource) {
		doc, err = l.client.FetchDocument(ctx, resource)
	} else {
		doc, err = wpschema.ReadFile(resource)
		if err != nil {
			err = &client.RetrievalError{Source: resource, Err: err}
		}
	}
	if err != nil {
		return nil, err
	}

	slog.Info("loaded discovery document",
		slog.String("source", resource),
		slog.Int("routes", doc.Routes.Len()),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return doc, nil
}
