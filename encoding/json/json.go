//go:build !stdjson

// Package json is the JSON codec used across the connector. The default build
// is backed by goccy/go-json; build with the stdjson tag to fall back to the
// standard library.
package json

import (
	stdjson "encoding/json"

	json "github.com/goccy/go-json"
)

// Implementation is the name of the backing JSON implementation
const Implementation = "goccy/go-json"

// RawMessage is a raw encoded JSON value
type RawMessage = stdjson.RawMessage

// Marshal returns the JSON encoding of v
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent is like Marshal but applies indentation to the output
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses the JSON-encoded data and stores the result in the value
// pointed to by v
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Valid reports whether data is a valid JSON encoding
func Valid(data []byte) bool {
	return json.Valid(data)
}
