package converter

import (
	"fmt"

	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// ResolveRoute finds the arguments of the first endpoint of route that
// answers any of methods (POST when none are given).
//
// A document without routes, or without the named route, is malformed and
// yields an error wrapping ErrMalformedDocument. A route that exists but does
// not answer the methods, at route or endpoint level, is not an error: ok is
// false.
func ResolveRoute(doc *wpschema.Document, route string, methods ...string) (args wpschema.Fields, ok bool, err error) {
	if doc == nil || doc.Routes.Len() == 0 {
		return wpschema.Fields{}, false, &RouteError{
			Route: route,
			Err:   fmt.Errorf("%w: no routes table", ErrMalformedDocument),
		}
	}

	r, found := doc.Routes.Get(route)
	if !found || r == nil {
		return wpschema.Fields{}, false, &RouteError{
			Route: route,
			Err:   fmt.Errorf("%w: route is not found", ErrMalformedDocument),
		}
	}

	requested := wpschema.NormalizeMethods(methods...)
	if !r.Supports(requested...) {
		return wpschema.Fields{}, false, nil
	}

	for i := range r.Endpoints {
		if r.Endpoints[i].Supports(requested...) {
			return r.Endpoints[i].Args, true, nil
		}
	}
	return wpschema.Fields{}, false, nil
}
