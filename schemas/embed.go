// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// Seed is the JSON Schema for the seed dataset document.
//
//go:embed seed.schema.json
var Seed string
