// Package wpschema models the WordPress REST API discovery document, the
// index served at /wp-json/ (or returned by an OPTIONS request) that
// describes every route, the HTTP methods it answers and the arguments each
// endpoint accepts.
//
// The model is deliberately lenient. WordPress is written in PHP, so empty
// associative arrays arrive as [] instead of {}, "type" may be a single token
// or a list of tokens, and plugins declare types outside the core set. All of
// those decode without error; interpretation is left to the converter.
//
// Object-valued members keep their JSON key order so that generated output
// is deterministic and mirrors the source document:
//
//	doc, err := wpschema.ReadFile("wp-json.json")
//	route, ok := doc.Routes.Get("/wc/v3/products")
package wpschema
