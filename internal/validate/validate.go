// Package validate checks request payloads against generated draft-07 schemas.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/wpjson-seven/pkg/draft7"
)

// defaultResource names schemas that carry no $id.
const defaultResource = "schema.json"

// wpDateTime matches the date-times the REST API accepts: RFC 3339 with the
// zone offset optional and a space allowed as separator.
var wpDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[Tt ](\d{2}:\d{2}:\d{2})(\.\d+)?([Zz]|[+-]\d{2}(:?\d{2})?)?$`)

// dateTimeFormat replaces the strict RFC 3339 "date-time" check, which
// rejects timezone-less values such as "2024-01-01T00:00:00".
var dateTimeFormat = &jsonschema.Format{
	Name: "date-time",
	Validate: func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		m := wpDateTime.FindStringSubmatch(s)
		if m == nil {
			return fmt.Errorf("%q is not a date-time", s)
		}
		if _, err := time.Parse(time.DateTime, m[1]+" "+m[2]); err != nil {
			return fmt.Errorf("%q is not a date-time: %w", s, err)
		}
		return nil
	},
}

// Result contains the result of validating a single payload.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validator validates JSON payloads against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles schema into a Validator.
func New(schema *draft7.Schema) (*Validator, error) {
	if schema == nil {
		return nil, errors.New("schema is nil")
	}

	// Round trip through JSON to get the generic value form the compiler wants.
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	schemaValue, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	resource := schema.ID
	if resource == "" {
		resource = defaultResource
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft7)
	compiler.RegisterFormat(dateTimeFormat)
	if err := compiler.AddResource(resource, schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate validates raw JSON data.
func (v *Validator) Validate(data []byte) *Result {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &Result{
			Valid:  false,
			Errors: []string{fmt.Sprintf("invalid JSON: %s", err.Error())},
		}
	}
	return v.ValidateValue(value)
}

// ValidateValue validates an already-decoded value. Numbers should be
// json.Number or float64.
func (v *Validator) ValidateValue(value any) *Result {
	err := v.schema.Validate(value)
	if err == nil {
		return &Result{Valid: true}
	}

	return &Result{
		Valid:  false,
		Errors: extractValidationErrors(err),
	}
}

// extractValidationErrors extracts human-readable error messages from a validation error.
func extractValidationErrors(err error) []string {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return extractDetailedErrors(validationErr)
	}
	return []string{err.Error()}
}

// printer is a default English printer for localized error messages.
var printer = message.NewPrinter(language.English)

// extractDetailedErrors flattens a ValidationError tree into sorted,
// de-duplicated "path: message" lines.
func extractDetailedErrors(err *jsonschema.ValidationError) []string {
	errorsByPath := make(map[string][]string)
	collectErrors(err, errorsByPath)

	var result []string
	for path, msgs := range errorsByPath {
		seen := make(map[string]bool)
		for _, msg := range msgs {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			if path != "" {
				result = append(result, fmt.Sprintf("%s: %s", path, msg))
			} else {
				result = append(result, msg)
			}
		}
	}

	sort.Strings(result)
	return result
}

// collectErrors recursively collects leaf errors (those without causes).
func collectErrors(err *jsonschema.ValidationError, errorsByPath map[string][]string) {
	instancePath := ""
	if len(err.InstanceLocation) > 0 {
		instancePath = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		errMsg := err.ErrorKind.LocalizedString(printer)
		// $ref wrappers carry no information of their own.
		if !strings.HasPrefix(errMsg, "$ref ") && !strings.HasPrefix(errMsg, "doesn't validate with") {
			errorsByPath[instancePath] = append(errorsByPath[instancePath], errMsg)
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errorsByPath)
	}
}
