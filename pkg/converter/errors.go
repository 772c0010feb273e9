package converter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedDocument means the discovery document has no routes table
	// or lacks the requested route entirely.
	ErrMalformedDocument = errors.New("malformed discovery document")

	// ErrNoRouteArgs means the route exists but neither it nor any of its
	// endpoints answers the requested methods.
	ErrNoRouteArgs = errors.New("no route args found")

	// ErrEntityName means no entity name could be derived from the route and
	// none was supplied.
	ErrEntityName = errors.New("could not retrieve route name")

	// ErrMaxDepth means nested item properties exceed the configured depth.
	ErrMaxDepth = errors.New("nesting exceeds maximum depth")
)

// RouteError ties a conversion failure to the route and methods requested.
type RouteError struct {
	Route   string
	Methods []string
	Err     error
}

func (e *RouteError) Error() string {
	if len(e.Methods) == 0 {
		return fmt.Sprintf("route %s: %v", e.Route, e.Err)
	}
	return fmt.Sprintf("route %s [%s]: %v", e.Route, strings.Join(e.Methods, ","), e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}
