package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wpjson-seven/pkg/converter"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// ListRoutesInput is the input for wpjson_list_routes.
type ListRoutesInput struct {
	Source    string `json:"source,omitempty" jsonschema:"Discovery document: site URL or local file path (default: configured site)"`
	Namespace string `json:"namespace,omitempty" jsonschema:"Only list routes in this namespace, e.g. wc/v3"`
	Method    string `json:"method,omitempty" jsonschema:"Only list routes declaring this method"`
}

// RouteInfo describes one route of the discovery document.
type RouteInfo struct {
	Route     string   `json:"route"`
	Namespace string   `json:"namespace,omitempty"`
	Methods   []string `json:"methods,omitzero"`
	Entity    string   `json:"entity,omitempty"`
}

// ListRoutesOutput is the output for wpjson_list_routes.
type ListRoutesOutput struct {
	Routes []RouteInfo `json:"routes,omitzero"`
	Total  int         `json:"total"`
}

// ListRoutes returns the routes of doc in document order, optionally
// restricted to a namespace and a method.
func ListRoutes(doc *wpschema.Document, namespace, method string) []RouteInfo {
	namespace = strings.Trim(namespace, "/")

	var routes []RouteInfo
	_ = doc.Routes.Each(func(path string, route *wpschema.Route) error {
		if route == nil {
			return nil
		}
		if namespace != "" && strings.Trim(route.Namespace, "/") != namespace {
			return nil
		}
		if method != "" && !route.Supports(method) {
			return nil
		}
		entity, _ := converter.NameFromRoute(path)
		routes = append(routes, RouteInfo{
			Route:     path,
			Namespace: route.Namespace,
			Methods:   route.Methods,
			Entity:    entity,
		})
		return nil
	})
	return routes
}

// ToolListRoutes lists the routes of a discovery document.
func ToolListRoutes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListRoutesInput) (*sdkmcp.CallToolResult, ListRoutesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListRoutesInput) (*sdkmcp.CallToolResult, ListRoutesOutput, error) {
		doc, err := d.LoadDocument(ctx, input.Source)
		if err != nil {
			return nil, ListRoutesOutput{}, err
		}

		routes := ListRoutes(doc, input.Namespace, input.Method)
		if len(routes) == 0 && input.Namespace != "" {
			return nil, ListRoutesOutput{}, ErrNotFound("namespace", input.Namespace)
		}

		return nil, ListRoutesOutput{Routes: routes, Total: len(routes)}, nil
	}
}
