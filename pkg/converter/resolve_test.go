package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

func TestResolveRoute(t *testing.T) {
	doc := loadFixture(t)

	tests := []struct {
		name     string
		route    string
		methods  []string
		wantOK   bool
		wantArgs []string
	}{
		{"get collection", productsRoute, []string{"GET"}, true, []string{"context", "page", "after"}},
		{"lower case method", productsRoute, []string{"get"}, true, []string{"context", "page", "after"}},
		{"defaults to POST", productsRoute, nil, true, []string{"name", "status", "featured", "date_on_sale_from", "sku", "price", "meta", "tags", "categories", "attributes", "downloads", "dimensions"}},
		{"unsupported verb", productsRoute, []string{"DELETE"}, false, nil},
		{"method set", productsRoute, []string{"DELETE", "GET"}, true, []string{"context", "page", "after"}},
		{"first matching endpoint", productRoute, []string{"PATCH"}, true, []string{"id", "name"}},
		{"delete endpoint", productRoute, []string{"DELETE"}, true, []string{"force"}},
		{"no endpoint answers", "/wc/v3/orphans", []string{"GET"}, false, nil},
		{"route declares no such method", "/wc/v3/orphans", []string{"POST"}, false, nil},
		{"empty args", "/wc/v3", []string{"GET"}, true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, ok, err := ResolveRoute(doc, tt.route, tt.methods...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantArgs, args.Keys())
			} else {
				assert.Zero(t, args.Len())
			}
		})
	}
}

func TestResolveRoute_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  *wpschema.Document
	}{
		{"nil document", nil},
		{"no routes", &wpschema.Document{}},
		{"empty routes", &wpschema.Document{Routes: wpschema.NewMap[*wpschema.Route]()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ResolveRoute(tt.doc, productsRoute, "GET")
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}

	t.Run("missing route", func(t *testing.T) {
		_, _, err := ResolveRoute(loadFixture(t), "/wc/v3/coupons", "GET")
		assert.ErrorIs(t, err, ErrMalformedDocument)
		assert.Contains(t, err.Error(), "/wc/v3/coupons")
	})
}
