// Package batch converts many routes of one discovery document concurrently
// and writes one schema file per entity.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/usestring/wpjson-seven/internal/output"
	"github.com/usestring/wpjson-seven/pkg/converter"
	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// DefaultWorkers is used when Options.Workers is not positive.
const DefaultWorkers = 8

// Options configures a batch run.
type Options struct {
	Dir     string        // output directory
	Method  string        // request method, POST when empty
	Routes  []string      // routes to convert; every route supporting Method when empty
	Workers int           // concurrent conversions
	Format  output.Format // file format
}

// Written records a schema file that was produced.
type Written struct {
	Route  string `json:"route"`
	Entity string `json:"entity"`
	Path   string `json:"path"`
}

// Skipped records a route that produced no file.
type Skipped struct {
	Route  string `json:"route"`
	Reason string `json:"reason"`
}

// Report summarizes a batch run in route order.
type Report struct {
	Written []Written `json:"written"`
	Skipped []Skipped `json:"skipped,omitempty"`
}

type outcome struct {
	entity  string
	schema  *draft7.Schema
	written *Written
	skipped *Skipped
}

// Run converts the selected routes with conv and writes them to opts.Dir.
// Routes without matching arguments are skipped and reported. Entity names
// are claimed in route order by routes that converted successfully; a later
// route sharing a claimed name is skipped. Conversion and write failures do
// not stop other routes; they are returned together as a *multierror.Error
// alongside the partial report.
func Run(ctx context.Context, conv *converter.Converter, doc *wpschema.Document, opts Options) (*Report, error) {
	if doc == nil || doc.Routes.Len() == 0 {
		return nil, fmt.Errorf("%w: no routes table", converter.ErrMalformedDocument)
	}

	methods := wpschema.NormalizeMethods(opts.Method)
	routes := opts.Routes
	if len(routes) == 0 {
		routes = SupportingRoutes(doc, methods...)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	start := time.Now()
	outcomes := make([]outcome, len(routes))
	named := make([]int, 0, len(routes))
	for i, route := range routes {
		entity, ok := converter.NameFromRoute(route)
		if !ok {
			outcomes[i].skipped = &Skipped{Route: route, Reason: converter.ErrEntityName.Error()}
			continue
		}
		outcomes[i].entity = entity
		named = append(named, i)
	}

	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	fail := func(err error) {
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}

	forEach(ctx, workers, named, routes, fail, func(i int, route string) error {
		schema, err := conv.Generate(doc, route, methods[0], outcomes[i].entity)
		if errors.Is(err, converter.ErrNoRouteArgs) {
			outcomes[i].skipped = &Skipped{Route: route, Reason: converter.ErrNoRouteArgs.Error()}
			return nil
		}
		if err != nil {
			return err
		}
		outcomes[i].schema = schema
		return nil
	})

	owners := make(map[string]string, len(routes))
	owned := make([]int, 0, len(named))
	for _, i := range named {
		o, route := &outcomes[i], routes[i]
		if o.schema == nil {
			continue
		}
		if owner, taken := owners[o.entity]; taken {
			o.schema = nil
			o.skipped = &Skipped{
				Route:  route,
				Reason: fmt.Sprintf("entity %q already produced by %s", o.entity, owner),
			}
			continue
		}
		owners[o.entity] = route
		owned = append(owned, i)
	}

	forEach(ctx, workers, owned, routes, fail, func(i int, route string) error {
		o := &outcomes[i]
		path, err := output.WriteFile(opts.Dir, o.entity, o.schema, opts.Format)
		if err != nil {
			return err
		}
		o.written = &Written{Route: route, Entity: o.entity, Path: path}
		slog.Debug("schema written",
			slog.String("route", route),
			slog.String("path", path),
		)
		return nil
	})

	report := &Report{Written: []Written{}}
	for _, o := range outcomes {
		switch {
		case o.written != nil:
			report.Written = append(report.Written, *o.written)
		case o.skipped != nil:
			report.Skipped = append(report.Skipped, *o.skipped)
		}
	}

	slog.Info("batch conversion finished",
		slog.Int("routes", len(routes)),
		slog.Int("written", len(report.Written)),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return report, result.ErrorOrNil()
}

// forEach runs fn for the routes at the given indexes, at most workers at a
// time. Errors, including cancellation, go to fail.
func forEach(ctx context.Context, workers int, indexes []int, routes []string, fail func(error), fn func(int, string) error) {
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, i := range indexes {
		route := routes[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				fail(fmt.Errorf("%s: %w", route, err))
				return nil
			}
			if err := fn(i, route); err != nil {
				slog.Debug("route conversion failed",
					slog.String("route", route),
					slog.String("error", err.Error()),
				)
				fail(err)
			}
			return nil
		})
	}

	// Workers never return errors; failures are collected by fail.
	_ = g.Wait()
}

// SupportingRoutes lists, in document order, the routes that declare at
// least one of methods.
func SupportingRoutes(doc *wpschema.Document, methods ...string) []string {
	var routes []string
	_ = doc.Routes.Each(func(path string, route *wpschema.Route) error {
		if route != nil && route.Supports(methods...) {
			routes = append(routes, path)
		}
		return nil
	})
	return routes
}
