// Package tools serves the tool discovery listing: a static description of
// every Zuglang endpoint, with URLs derived from the configured base URL.
package tools

import (
	"net/http"
	"strings"

	"zuglang-api/internal/handlers"
)

// Property describes a single request parameter.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Parameters is a JSON-schema-shaped description of a tool's request body.
type Parameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Descriptor describes one tool endpoint.
type Descriptor struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Method      string     `json:"method"`
	Path        string     `json:"path"`
	URL         string     `json:"url"`
	Parameters  Parameters `json:"parameters"`
}

// Listing is the JSON response for GET /tools.
type Listing struct {
	Service string       `json:"service"`
	Tools   []Descriptor `json:"tools"`
}

// descriptors is the static tool catalogue. URLs are filled in per request
// from the configured base URL; nothing here mutates after init.
var descriptors = []Descriptor{
	{
		Name:        "zuglang_translate",
		Description: "Translates a Zuglang phrase into natural language using the fixed dictionary.",
		Method:      http.MethodPost,
		Path:        "/zuglang/translate",
		Parameters: Parameters{
			Type: "object",
			Properties: map[string]Property{
				"phrase": {Type: "string", Description: "The Zuglang phrase to translate, e.g. 'zug zug'."},
			},
			Required: []string{"phrase"},
		},
	},
	{
		Name:        "zuglang_calculator",
		Description: "Performs arithmetic (+ - * /) over two Zuglang numerals and returns the result in both notations.",
		Method:      http.MethodPost,
		Path:        "/zuglang/calculator",
		Parameters: Parameters{
			Type: "object",
			Properties: map[string]Property{
				"a":  {Type: "string", Description: "First operand as a Zuglang numeral, e.g. 'BC'."},
				"b":  {Type: "string", Description: "Second operand as a Zuglang numeral, e.g. 'CF'."},
				"op": {Type: "string", Description: "Operator: one of '+', '-', '*', '/'."},
			},
			Required: []string{"a", "b", "op"},
		},
	},
	{
		Name:        "zuglang_to_decimal",
		Description: "Converts a Zuglang numeral (letters A-J as digits 0-9) to its decimal value.",
		Method:      http.MethodPost,
		Path:        "/zuglang/to-decimal",
		Parameters: Parameters{
			Type: "object",
			Properties: map[string]Property{
				"numeral": {Type: "string", Description: "The Zuglang numeral to convert, e.g. 'BC'."},
			},
			Required: []string{"numeral"},
		},
	},
	{
		Name:        "zuglang_from_decimal",
		Description: "Converts a decimal integer to its Zuglang numeral representation.",
		Method:      http.MethodPost,
		Path:        "/zuglang/from-decimal",
		Parameters: Parameters{
			Type: "object",
			Properties: map[string]Property{
				"decimal": {Type: "integer", Description: "The decimal integer to convert, e.g. 12."},
			},
			Required: []string{"decimal"},
		},
	},
}

// List builds the discovery listing with endpoint URLs joined onto baseURL.
func List(baseURL string) Listing {
	base := strings.TrimRight(baseURL, "/")

	out := make([]Descriptor, len(descriptors))
	for i, d := range descriptors {
		d.URL = base + d.Path
		out[i] = d
	}

	return Listing{
		Service: "zuglang-api",
		Tools:   out,
	}
}

// Handler serves GET /tools.
func Handler(baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, List(baseURL))
	}
}
