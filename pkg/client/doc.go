// Package client retrieves WordPress REST API discovery documents.
//
// A WordPress site publishes an index of every REST route at /wp-json/. The
// client appends that path when the given URL lacks it, sends a browser-like
// User-Agent, and decodes the answer into a wpschema.Document.
//
// # Quick Start
//
//	c := client.New()
//	doc, err := c.FetchDocument(ctx, "https://shop.example.com")
//
// Use custom configuration:
//
//	c := client.New(
//	    client.WithTimeout(10*time.Second),
//	    client.WithInsecureTLS(true), // self-signed staging certificate
//	)
//
// # Errors
//
// FetchDocument returns a *RetrievalError for every failure. HTTP error
// statuses surface as a wrapped *APIError carrying the WordPress error code,
// and an empty document as ErrNoData:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
//	    // not a WordPress site, or the REST API is disabled
//	}
package client
