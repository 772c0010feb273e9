// Package query provides JQ-based querying over generated schema documents.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes JQ queries against JSON data.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// QueryResult contains the results of a JQ query.
type QueryResult struct {
	Values   []any    `json:"values"`           // Extracted values
	Errors   []string `json:"errors,omitempty"` // Runtime errors (e.g., type mismatch)
	RawCount int      `json:"raw_count"`        // Count before deduplication
}

// Query executes a JQ expression against JSON data.
// maxResults <= 0 means no limit.
func (e *Engine) Query(data []byte, expression string, deduplicate bool, maxResults int) (*QueryResult, error) {
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("invalid JSON data: %w", err)
	}
	return e.QueryValue(input, expression, deduplicate, maxResults)
}

// QueryValue executes a JQ expression against an already-decoded value.
// The value must consist of the types produced by encoding/json.
func (e *Engine) QueryValue(input any, expression string, deduplicate bool, maxResults int) (*QueryResult, error) {
	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	result := &QueryResult{
		Values: make([]any, 0),
	}

	seen := make(map[string]bool)
	iter := code.Run(input)

	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			result.Errors = append(result.Errors, formatJQError("query", err))
			continue
		}

		result.RawCount++

		if deduplicate {
			key := valueKey(v)
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		result.Values = append(result.Values, v)

		if maxResults > 0 && len(result.Values) >= maxResults {
			break
		}
	}

	return result, nil
}

func compile(expression string) (*gojq.Code, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// formatJQError creates a helpful error message for JQ execution errors.
//
// Runtime JQ errors (like "cannot iterate over: null") are plain errors
// without typed wrappers in gojq, so hints are picked by string matching.
func formatJQError(label string, err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return fmt.Sprintf("%s: query halted", label)
		}
		return fmt.Sprintf("%s: query halted with: %v", label, haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this schema)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (keyword not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return fmt.Sprintf("%s: %s%s", label, errStr, hint)
}

// valueKey creates a string key for deduplication.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case float64:
		return fmt.Sprintf("n:%v", val)
	case bool:
		return fmt.Sprintf("b:%v", val)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("?:%v", val)
		}
		return "j:" + string(b)
	}
}

// ValidateExpression checks if a JQ expression is valid without executing it.
func (e *Engine) ValidateExpression(expression string) error {
	_, err := compile(expression)
	return err
}
