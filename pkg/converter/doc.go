// Package converter turns WordPress REST discovery documents into JSON Schema
// draft-07 documents describing one route's request body.
//
// Conversion is pure: the package performs no I/O, reads no environment and
// keeps no state between calls, so a single Converter may be shared by any
// number of goroutines as long as each call works on its own document.
//
//	doc, _ := wpschema.ReadFile("wp-json.json")
//	schema, err := converter.New().Generate(doc, "/wc/v3/products", "POST", "")
//	if errors.Is(err, converter.ErrNoRouteArgs) {
//	    // route exists but does not answer POST
//	}
package converter
